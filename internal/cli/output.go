package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/TimurManjosov/rulechain/internal/telemetry"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// OutputFormat specifies the output format for CLI commands
type OutputFormat string

const (
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
)

// CaseResult describes one case of a checked rule.
type CaseResult struct {
	Index      int    `json:"index" yaml:"index"`
	Value      string `json:"value" yaml:"value"`
	ValueKind  string `json:"valueKind" yaml:"valueKind"`
	Operator   string `json:"operator" yaml:"operator"`
	Target     string `json:"target" yaml:"target"`
	TargetKind string `json:"targetKind" yaml:"targetKind"`
	Set        string `json:"set" yaml:"set"`
	Fired      bool   `json:"fired" yaml:"fired"`
}

// PrintResults writes results in the specified format.
func PrintResults(w io.Writer, results []CaseResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return printJSON(w, map[string][]CaseResult{"cases": results})
	case FormatYAML:
		return printYAML(w, map[string][]CaseResult{"cases": results})
	case FormatTable:
		return printResultTable(w, results)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// PrintSamples writes gathered metric samples in the specified format.
func PrintSamples(w io.Writer, samples []telemetry.Sample, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return printJSON(w, map[string][]telemetry.Sample{"metrics": samples})
	case FormatYAML:
		return printYAML(w, map[string][]telemetry.Sample{"metrics": samples})
	case FormatTable:
		table := tablewriter.NewWriter(w)
		table.Header("Metric", "Value")
		for _, s := range samples {
			table.Append(s.Name, fmt.Sprintf("%g", s.Value))
		}
		return table.Render()
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func printJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func printYAML(w io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	encoder.SetIndent(2)
	return encoder.Encode(data)
}

func printResultTable(w io.Writer, results []CaseResult) error {
	table := tablewriter.NewWriter(w)
	table.Header("#", "Value", "Operator", "Target", "Set", "Fired")

	for _, r := range results {
		fired := "no"
		if r.Fired {
			fired = "yes"
		}
		table.Append(
			fmt.Sprintf("%d", r.Index),
			fmt.Sprintf("%s (%s)", r.Value, r.ValueKind),
			r.Operator,
			fmt.Sprintf("%s (%s)", r.Target, r.TargetKind),
			r.Set,
			fired,
		)
	}

	return table.Render()
}
