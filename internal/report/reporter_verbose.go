package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// VerboseReporter prints coverage statistics below the issue list.
type VerboseReporter struct {
	w     io.Writer
	color bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, color bool) *VerboseReporter {
	return &VerboseReporter{w: w, color: color}
}

// section prints a blank line, a styled title and its underline.
func (r *VerboseReporter) section(style lipgloss.Style, title string) {
	fmt.Fprintf(r.w, "\n%s\n%s\n", paint(style, title, r.color), strings.Repeat("-", len(title)))
}

// PrintStatistics outputs scan and synthesis statistics
func (r *VerboseReporter) PrintStatistics(result Result) {
	r.section(styleHeading, "Stylesheet Statistics")

	rows := []struct {
		label string
		value int
	}{
		{"Files Scanned", result.FilesScanned},
		{"Tokens Found", result.TokensFound},
		{"Tokens Matched", result.TokensMatched},
		{"Tokens Unmatched", result.TokensFound - result.TokensMatched},
		{"Rules Emitted", result.RulesEmitted},
	}
	for _, row := range rows {
		fmt.Fprintf(r.w, "%-17s %d\n", row.label+":", row.value)
	}
}

// PrintCoverage shows the share of tokens that produced a rule as a bar.
func (r *VerboseReporter) PrintCoverage(result Result) {
	r.section(styleHeading, "Token Coverage")
	printProgressBar(r.w, result.Coverage, r.color)
}

// PrintPassBreakdown lists the rules emitted by each pass that emitted any.
func (r *VerboseReporter) PrintPassBreakdown(result Result) {
	r.section(styleSection, "Rules per Pass")

	for _, pc := range result.PassCounts {
		if pc.Rules == 0 {
			continue
		}
		fmt.Fprintf(r.w, "%-18s %d\n", pc.Pass, pc.Rules)
	}
}

// PrintWarnings shows warnings collected during the run
func (r *VerboseReporter) PrintWarnings(result Result) {
	if len(result.Warnings) == 0 {
		return
	}

	r.section(styleWarning, "Warnings")
	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

// printProgressBar prints a 20-cell bar colored by coverage band.
func printProgressBar(w io.Writer, percentage float64, color bool) {
	const width = 20
	filled := max(0, min(width, int(percentage/100*width)))

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	fmt.Fprintf(w, "[%s] %.1f%%\n", paint(coverageStyle(percentage), bar, color), percentage)
}
