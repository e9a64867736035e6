package twlite

import (
	"fmt"

	"github.com/yacobolo/twlite/internal/report"
)

// LintConfig holds coverage lint configuration
type LintConfig struct {
	Sources []string // Same entries as Config.Sources

	MaxIssues     int // 0 = unlimited (default)
	MaxSameIssues int // 0 = unlimited (default)
}

// Lint scans the sources and reports every token that no synthesis pass
// turned into a rule. Nothing is written.
func Lint(config LintConfig) (*report.Result, error) {
	extraction, stats, err := scanSources(config.Sources)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	rules := Synthesize(extraction.Tokens)
	matched := rules.MatchedTokens()

	result := &report.Result{
		FilesScanned:  stats.FilesScanned,
		TokensFound:   extraction.Tokens.Len(),
		TokensMatched: len(matched),
		RulesEmitted:  rules.Len(),
	}
	if result.TokensFound > 0 {
		result.Coverage = float64(result.TokensMatched) / float64(result.TokensFound) * 100
	} else {
		result.Coverage = 100
	}

	for _, pc := range rules.CountByPass() {
		result.PassCounts = append(result.PassCounts, report.PassCount{Pass: pc.Pass, Rules: pc.Rules})
	}

	for _, tok := range extraction.Tokens.Tokens() {
		if matched[tok] {
			continue
		}
		result.Issues = append(result.Issues, unmatchedIssue(extraction.Occurrences[tok]))
	}
	report.SortIssues(result.Issues)

	if err := VerifyStylesheet(rules); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("verification: %v", err))
	}

	if config.MaxIssues > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = report.LimitIssues(result.Issues, config.MaxIssues, config.MaxSameIssues)
	}

	return result, nil
}

func unmatchedIssue(occ Occurrence) report.Issue {
	return report.Issue{
		FromLinter:  report.LinterName,
		Text:        fmt.Sprintf(report.IssueUnmatchedToken, occ.Token),
		Severity:    report.SeverityWarning,
		SourceLines: []string{occ.Location.Text},
		Pos: report.IssuePos{
			Filename: GetRelativePath(occ.Location.File),
			Line:     occ.Location.Line,
			Column:   occ.Location.Column,
		},
	}
}
