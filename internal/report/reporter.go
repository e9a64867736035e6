package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Reporter prints issues as "file:line:col: message (linter)", the format
// editors and CI annotators already understand.
type Reporter struct {
	w     io.Writer
	opts  Options
	color bool
}

// NewReporter creates a new reporter with the given options
func NewReporter(w io.Writer, opts Options) *Reporter {
	return &Reporter{
		w:     w,
		opts:  opts,
		color: ShouldUseColors(opts.UseColors),
	}
}

// ShouldUseColors reports whether output should be colored: when forced,
// when FORCE_COLOR or GITHUB_ACTIONS asks for it, or when stdout is a
// terminal.
func ShouldUseColors(force bool) bool {
	switch {
	case force, os.Getenv("FORCE_COLOR") != "", os.Getenv("GITHUB_ACTIONS") == "true":
		return true
	}

	info, err := os.Stdout.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// SortIssues orders issues by file, then line, then column
func SortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		a, b := issues[i].Pos, issues[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
}

// PrintIssues sorts and prints every issue.
func (r *Reporter) PrintIssues(issues []Issue) {
	SortIssues(issues)
	for _, issue := range issues {
		r.printIssue(issue)
	}
}

func (r *Reporter) printIssue(issue Issue) {
	pos := issue.Pos
	location := fmt.Sprintf("%s:%d:%d:", pos.Filename, pos.Line, pos.Column)

	header := paint(styleLocation, location, r.color) + " " + issue.Text
	if r.opts.PrintLinterName && issue.FromLinter != "" {
		header += paint(styleMuted, " ("+issue.FromLinter+")", r.color)
	}
	fmt.Fprintln(r.w, header)

	if !r.opts.PrintIssuedLines || len(issue.SourceLines) == 0 {
		return
	}
	for _, src := range issue.SourceLines {
		fmt.Fprintf(r.w, "\t%s\n", src)
	}
	fmt.Fprintf(r.w, "\t%s\n", paint(styleCaret, caretLine(issue.SourceLines[0], pos.Column), r.color))
}

// caretLine returns a "^" positioned under the 1-based byte column of src.
// Tabs before the column are copied so the caret lines up at any tab width.
func caretLine(src string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefix := src[:min(column-1, len(src))]
	pad := strings.Map(func(r rune) rune {
		if r == '\t' {
			return '\t'
		}
		return ' '
	}, prefix)
	return pad + "^"
}

// PrintSummary prints the issue count, broken down per linter.
func (r *Reporter) PrintSummary(result Result) {
	header := pluralizeCount(len(result.Issues), "issue", "issues")
	if result.TruncatedCount > 0 {
		header += " (" + pluralizeCount(result.TruncatedCount, "issue", "issues") + " truncated)"
	}
	fmt.Fprintf(r.w, "\n%s:\n", header)

	byLinter := make(map[string]int)
	for _, issue := range result.Issues {
		byLinter[issue.FromLinter]++
	}
	linters := make([]string, 0, len(byLinter))
	for name := range byLinter {
		linters = append(linters, name)
	}
	sort.Strings(linters)
	for _, name := range linters {
		fmt.Fprintf(r.w, "* %s: %d\n", name, byLinter[name])
	}

	if len(result.Issues) > 0 {
		fmt.Fprintf(r.w, "\n%s\n", paint(styleMuted,
			"Hint: run with --output-format full for coverage and per-pass statistics", r.color))
	}
}

func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.color
}
