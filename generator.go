package twlite

import (
	"fmt"

	"github.com/yacobolo/twlite/internal/logger"
)

// Generate is the main entry point: it scans the sources, synthesizes the
// rules and writes the stylesheet. Nothing is written unless every source
// was read.
func Generate(config Config) (*GenerateResult, error) {
	result := &GenerateResult{Output: config.Output}

	// 1. Resolve and read sources
	extraction, stats, err := scanSources(config.Sources)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.FilesScanned = stats.FilesScanned
	result.TokensFound = extraction.Tokens.Len()

	// 2. Synthesize rules
	rules := Synthesize(extraction.Tokens)
	result.RulesEmitted = rules.Len()

	for _, pc := range rules.CountByPass() {
		if pc.Rules > 0 {
			logger.Debug("  %-16s %d", pc.Pass, pc.Rules)
		}
	}

	// 3. Optional self-check
	if config.Verify {
		if err := VerifyStylesheet(rules); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("verification: %v", err))
		}
	}

	// 4. Write the stylesheet
	if err := WriteStylesheet(config.Output, rules); err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}

	return result, nil
}

// scanSources expands the source entries and extracts their tokens.
func scanSources(entries []string) (*Extraction, ScanStats, error) {
	files, stats, err := ExpandSources(entries)
	if err != nil {
		return nil, stats, err
	}
	if stats.FilesSkipped > 0 {
		logger.Debug("Skipped %d gitignored files", stats.FilesSkipped)
	}

	extraction, err := ExtractTokens(files)
	if err != nil {
		return nil, stats, err
	}
	logger.Debug("Found %d tokens in %d files", extraction.Tokens.Len(), len(files))

	return extraction, stats, nil
}
