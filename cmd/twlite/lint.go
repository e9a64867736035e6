package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/twlite"
	"github.com/yacobolo/twlite/internal/report"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Report utility classes that produce no rule",
	Long: `Scan the sources like generate does, but write nothing. Every class name
that no synthesis pass recognizes is reported at its first occurrence,
followed by coverage statistics depending on --output-format.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runLint()
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("source", twlite.DefaultSources, "Source files or glob patterns to scan")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.Float64("threshold", 0.0, "Minimum coverage percentage for strict mode")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Int("max-issues", 0, "Max issues to show (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
}

// runLint is shared between `twlite lint` and `twlite generate --lint`.
func runLint() error {
	lintConfig := buildLintConfig()

	result, err := twlite.Lint(lintConfig)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	format := report.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		err := report.WriteOutput(os.Stdout, result, format, report.Options{
			PrintIssuedLines: getBoolWithFallback("print-lines", "lint.print-lines", true),
			PrintLinterName:  true,
			UseColors:        getBoolWithFallback("color", "color", false),
		})
		if err != nil {
			return fmt.Errorf("writing lint output: %w", err)
		}
	}

	strict := getBoolWithFallback("strict", "lint.strict", false)
	threshold := getFloat64WithFallback("threshold", "lint.threshold", 0.0)
	if failed, reason := lintGate(result, strict, threshold); failed {
		if !quiet && reason != "" {
			fmt.Fprintf(os.Stderr, "\n%s\n", reason)
		}
		os.Exit(1)
	}

	return nil
}

// lintGate decides whether a lint run fails the build. Unmatched tokens are
// warnings, so only strict mode can fail.
func lintGate(result *report.Result, strict bool, threshold float64) (bool, string) {
	if !strict {
		return false, ""
	}
	if threshold > 0 && result.Coverage < threshold {
		return true, fmt.Sprintf("Strict mode: coverage %.1f%% is below threshold %.1f%%",
			result.Coverage, threshold)
	}
	if len(result.Issues) > 0 {
		return true, ""
	}
	return false, ""
}
