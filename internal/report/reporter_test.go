package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaretLine(t *testing.T) {
	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "  <div class=\"btn\">",
			column:     15,
			want:       "              ^",
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t\t<button class=\"icon\">",
			column:     17,
			want:       "\t\t              ^",
		},
		{
			name:       "start of line",
			sourceLine: "class=\"btn\"",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, caretLine(tt.sourceLine, tt.column))
		})
	}
}

func sampleIssue(file string, line, col int, token string) Issue {
	return Issue{
		FromLinter:  LinterName,
		Text:        `utility class "` + token + `" matched no rule`,
		Severity:    SeverityWarning,
		SourceLines: []string{`  <p class="` + token + `"></p>`},
		Pos:         IssuePos{Filename: file, Line: line, Column: col},
	}
}

func TestSortIssues(t *testing.T) {
	issues := []Issue{
		sampleIssue("pharmacy.html", 3, 1, "a"),
		sampleIssue("index.html", 9, 4, "b"),
		sampleIssue("index.html", 2, 8, "c"),
		sampleIssue("index.html", 2, 3, "d"),
	}
	SortIssues(issues)

	var order []string
	for _, issue := range issues {
		order = append(order, issue.Text)
	}
	assert.Equal(t, []string{
		`utility class "d" matched no rule`,
		`utility class "c" matched no rule`,
		`utility class "b" matched no rule`,
		`utility class "a" matched no rule`,
	}, order)
}

func TestPrintIssues(t *testing.T) {
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("GITHUB_ACTIONS", "")

	var buf bytes.Buffer
	reporter := NewReporter(&buf, Options{PrintIssuedLines: true, PrintLinterName: true})
	reporter.PrintIssues([]Issue{sampleIssue("index.html", 2, 13, "fancy")})

	assert.Equal(t,
		"index.html:2:13: utility class \"fancy\" matched no rule (twlite)\n"+
			"\t  <p class=\"fancy\"></p>\n"+
			"\t            ^\n",
		buf.String())
}

func TestPrintSummary(t *testing.T) {
	tests := []struct {
		name     string
		result   Result
		contains []string
		excludes []string
	}{
		{
			name:     "no issues",
			result:   Result{},
			contains: []string{"0 issues:"},
			excludes: []string{"Hint"},
		},
		{
			name:     "single issue",
			result:   Result{Issues: []Issue{sampleIssue("a.html", 1, 1, "x")}},
			contains: []string{"1 issue:", "* twlite: 1", "Hint"},
		},
		{
			name: "truncated",
			result: Result{
				Issues:         []Issue{sampleIssue("a.html", 1, 1, "x"), sampleIssue("a.html", 2, 1, "y")},
				TruncatedCount: 1,
			},
			contains: []string{"2 issues (1 issue truncated):", "* twlite: 2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reporter := &Reporter{w: &buf}
			reporter.PrintSummary(tt.result)

			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, buf.String(), unwanted)
			}
		})
	}
}

func TestPrintProgressBar(t *testing.T) {
	var buf bytes.Buffer
	printProgressBar(&buf, 50, false)
	assert.Equal(t, "[██████████░░░░░░░░░░] 50.0%\n", buf.String())
}

func TestPaintWithoutColors(t *testing.T) {
	assert.Equal(t, "plain", paint(styleLocation, "plain", false))
}

func TestCoverageStyle(t *testing.T) {
	assert.Equal(t, styleGood, coverageStyle(100))
	assert.Equal(t, styleFair, coverageStyle(75))
	assert.Equal(t, styleBad, coverageStyle(10))
}
