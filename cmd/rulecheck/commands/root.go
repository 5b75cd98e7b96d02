package commands

import (
	"fmt"

	"github.com/TimurManjosov/rulechain/internal/cli"
	"github.com/TimurManjosov/rulechain/internal/config"
	"github.com/TimurManjosov/rulechain/internal/logging"
	"github.com/TimurManjosov/rulechain/internal/telemetry"
	"github.com/TimurManjosov/rulechain/pkg/rule"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	format      string
	verbose     int
	quiet       bool
	showMetrics bool

	// Populated by PersistentPreRunE
	cfg      *config.Config
	registry *prometheus.Registry
	metrics  *telemetry.Metrics
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "rulecheck",
	Short: "Evaluate if/target/then rules from the command line",
	Long: `Rulecheck builds rules with the rulechain library and applies them.

Values are inferred from arguments: true/false are booleans, numeric
literals are numbers, everything else is text. Quote a literal to force
text, e.g. "'10'".

Examples:
  rulecheck check 10 5
  rulecheck check 5 "'5'"
  rulecheck check 3 7 --op lt --op gte
  rulecheck demo --format json --metrics`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "Output format (table, json, yaml); overrides RULECHECK_OUTPUT_FORMAT")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "Suppress output")
	rootCmd.PersistentFlags().BoolVar(&showMetrics, "metrics", false, "Print collected rule metrics after the run")
}

func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	if format != "" {
		loaded.OutputFormat = format
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	level := logging.LevelForVerbosity(cfg.LogLevel, verbose)
	if err := logging.SetupLogger(cmd.ErrOrStderr(), level, cfg.LogFormat); err != nil {
		return err
	}

	registry = prometheus.NewRegistry()
	metrics, err = telemetry.NewMetrics(registry)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}
	return nil
}

func ruleOptions(component string) []rule.Option {
	return []rule.Option{
		rule.WithName(cfg.RuleName),
		rule.WithLogger(logging.GetLogger(component)),
		rule.WithObserver(metrics),
	}
}

func printMetrics(cmd *cobra.Command) error {
	if !showMetrics || quiet {
		return nil
	}
	samples, err := telemetry.Summarize(registry)
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	return cli.PrintSamples(cmd.OutOrStdout(), samples, cli.OutputFormat(cfg.OutputFormat))
}
