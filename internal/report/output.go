package report

import "io"

// OutputFormat represents the lint output format
type OutputFormat string

const (
	// OutputIssues shows only issues in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics and the per-pass breakdown only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + statistics (interactive development)
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat selects the output format from flags
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit quiet flag wins (exit code only)
	if quiet {
		return OutputIssues
	}

	switch formatFlag {
	case "issues":
		return OutputIssues
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	}

	return OutputIssues
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *Result, format OutputFormat, opts Options) error {
	switch format {
	case OutputJSON:
		return WriteJSON(w, result)

	case OutputSummary:
		writeStatistics(NewVerboseReporter(w, ShouldUseColors(opts.UseColors)), result)

	case OutputFull:
		reporter := NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
		writeStatistics(NewVerboseReporter(w, reporter.UseColors()), result)

	default:
		reporter := NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
	}
	return nil
}

func writeStatistics(r *VerboseReporter, result *Result) {
	r.PrintStatistics(*result)
	r.PrintCoverage(*result)
	r.PrintPassBreakdown(*result)
	r.PrintWarnings(*result)
}

// LimitIssues applies the max-issues and max-same-issues constraints and
// returns the kept issues and how many were dropped.
func LimitIssues(issues []Issue, maxIssues, maxSame int) ([]Issue, int) {
	originalCount := len(issues)

	if maxIssues > 0 && len(issues) > maxIssues {
		issues = issues[:maxIssues]
	}

	if maxSame > 0 {
		issues = deduplicateSameIssues(issues, maxSame)
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		if messageCounts[issue.Text] < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
