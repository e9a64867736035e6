package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/twlite"
	"github.com/yacobolo/twlite/internal/logger"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate the utility stylesheet",
	Long: `Scan the configured sources for utility class names and write one CSS
rule per recognized utility to the output stylesheet. The output is fully
rewritten on every run; nothing is written if any source is unreadable.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringSlice("source", twlite.DefaultSources, "Source files or glob patterns to scan")
	f.String("output", twlite.DefaultOutput, "Stylesheet to write")
	f.Bool("verify", true, "Re-parse the rendered stylesheet and warn on mismatch")
	f.Bool("lint", false, "Run coverage lint after generation")
}

func runGenerate(_ *cobra.Command, _ []string) error {
	config := buildGenerateConfig()

	result, err := twlite.Generate(config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	logger.Info("Generated %d rules", result.RulesEmitted)
	logger.Debug("  Output: %s", result.Output)
	logger.Debug("  Files scanned: %d", result.FilesScanned)
	logger.Debug("  Tokens found: %d", result.TokensFound)

	for _, w := range result.Warnings {
		logger.Warn("%s", w)
	}

	if getBoolWithFallback("lint", "generate.lint", false) {
		return runLint()
	}

	return nil
}
