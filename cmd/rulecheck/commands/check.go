package commands

import (
	"fmt"

	"github.com/TimurManjosov/rulechain/internal/cli"
	"github.com/TimurManjosov/rulechain/internal/logging"
	"github.com/spf13/cobra"
)

var checkOps []string

var checkCmd = &cobra.Command{
	Use:   "check <value> <target>",
	Short: "Compare a value with a target using every offered operator",
	Long: `Build a rule comparing value with target and apply it once.

Without --op every operator offered for the pair is appended: all five
comparisons when both sides are numbers, equality only otherwise.

Examples:
  rulecheck check 10 5
  rulecheck check premium premium
  rulecheck check 10 5 --op gt --op "<="`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.GetLogger("check")
		done := logging.LogOperationStart(logger, "check")
		defer done()

		results, err := cli.Check(cli.InferValue(args[0]), cli.InferValue(args[1]), cli.CheckOptions{
			Operators:     checkOps,
			RecoverPanics: cfg.RecoverPanics,
			RuleOptions:   ruleOptions("check"),
		})
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}

		if !quiet {
			if err := cli.PrintResults(cmd.OutOrStdout(), results, cli.OutputFormat(cfg.OutputFormat)); err != nil {
				return err
			}
		}
		return printMetrics(cmd)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringArrayVar(&checkOps, "op", nil, "Operator to append (eq, gte, lte, gt, lt or a symbol); repeatable")
}
