package commands

import (
	"fmt"
	"strings"

	"github.com/TimurManjosov/rulechain/internal/cli"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the reference two-case rule",
	Long: `Run a rule with two cases and print the actions that fired:

  If(10).Target(5).GreaterThen(A)
  If(10).Target(10).Then(B)

Both cases match, so A and B fire in that order.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fired, err := cli.Demo(cfg.RecoverPanics, ruleOptions("demo")...)
		if err != nil {
			return fmt.Errorf("demo failed: %w", err)
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "fired: %s\n", strings.Join(fired, ", "))
		}
		return printMetrics(cmd)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
