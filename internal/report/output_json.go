package report

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Passes    []JSONPass  `json:"passes"`
	Issues    []JSONIssue `json:"issues"`
	Warnings  []string    `json:"warnings,omitempty"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	TotalIssues   int     `json:"total_issues"`
	FilesScanned  int     `json:"files_scanned"`
	TokensFound   int     `json:"tokens_found"`
	TokensMatched int     `json:"tokens_matched"`
	RulesEmitted  int     `json:"rules_emitted"`
	Coverage      float64 `json:"coverage"`
	Truncated     int     `json:"truncated"`
}

// JSONPass is the number of rules one pass emitted
type JSONPass struct {
	Name  string `json:"name"`
	Rules int    `json:"rules"`
}

// JSONIssue represents a single issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"` // Optional source line
}

// WriteJSON writes the result as JSON
func WriteJSON(w io.Writer, result *Result) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts Result to JSONOutput
func buildJSONOutput(result *Result) JSONOutput {
	issues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		issues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	passes := make([]JSONPass, len(result.PassCounts))
	for i, pc := range result.PassCounts {
		passes[i] = JSONPass{Name: pc.Pass, Rules: pc.Rules}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:   len(result.Issues),
			FilesScanned:  result.FilesScanned,
			TokensFound:   result.TokensFound,
			TokensMatched: result.TokensMatched,
			RulesEmitted:  result.RulesEmitted,
			Coverage:      result.Coverage,
			Truncated:     result.TruncatedCount,
		},
		Passes:   passes,
		Issues:   issues,
		Warnings: result.Warnings,
	}
}
