package report

// Issue represents a single finding in golangci-lint format
type Issue struct {
	FromLinter  string     `json:"FromLinter"`  // "twlite"
	Text        string     `json:"Text"`        // "utility class \"bg-unknown-999\" matched no rule"
	Severity    string     `json:"Severity"`    // "", "warning", "error"
	SourceLines []string   `json:"SourceLines"` // Lines of markup with the issue
	Pos         IssuePos   `json:"Pos"`         // File location
	LineRange   *LineRange `json:"LineRange"`   // Optional range
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "pharmacy.html"
	Line     int    `json:"Line"`     // 35
	Column   int    `json:"Column"`   // 15 (1-based, exact start of the token)
}

// LineRange specifies a range of lines
type LineRange struct {
	From int `json:"From"`
	To   int `json:"To"`
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// LinterName is reported as the FromLinter of every twlite issue.
const LinterName = "twlite"

// IssueUnmatchedToken is the message for a token no pass resolved.
const IssueUnmatchedToken = "utility class %q matched no rule"

// PassCount is the number of rules one synthesis pass emitted.
type PassCount struct {
	Pass  string
	Rules int
}

// Result contains coverage analysis results
type Result struct {
	Issues         []Issue
	FilesScanned   int
	TokensFound    int
	TokensMatched  int
	RulesEmitted   int
	Coverage       float64 // Percentage of tokens that produced a rule
	PassCounts     []PassCount
	TruncatedCount int // Issues removed due to limits
	Warnings       []string
}

// Options controls how results are rendered.
type Options struct {
	PrintIssuedLines bool // Show source lines with issues
	PrintLinterName  bool // Show (twlite) suffix
	UseColors        bool // Force color output
}
