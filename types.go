package twlite

import (
	"sort"
	"strings"
)

// Default locations used when nothing is configured.
const (
	DefaultOutput = "styles/tailwind-lite.css"
)

// DefaultSources are the markup documents scanned by default, in order.
var DefaultSources = []string{"index.html", "pharmacy.html"}

// Config holds generator configuration
type Config struct {
	Sources []string // ["index.html", "pages/**/*.html"]
	Output  string   // "styles/tailwind-lite.css"
	Verify  bool     // Re-parse the rendered stylesheet before writing
}

// DefaultConfig returns the configuration used when no file, env or flag
// overrides anything.
func DefaultConfig() Config {
	return Config{
		Sources: append([]string(nil), DefaultSources...),
		Output:  DefaultOutput,
		Verify:  true,
	}
}

// GenerateResult contains generation stats
type GenerateResult struct {
	FilesScanned int
	TokensFound  int
	RulesEmitted int
	Output       string
	Warnings     []string
}

// TokenSet is the sorted, deduplicated set of utility tokens found in the
// sources. The zero value is an empty set.
type TokenSet struct {
	sorted []string
	index  map[string]struct{}
}

// NewTokenSet builds a TokenSet from tokens in any order.
func NewTokenSet(tokens ...string) TokenSet {
	set := TokenSet{index: make(map[string]struct{}, len(tokens))}
	for _, tok := range tokens {
		if _, seen := set.index[tok]; seen {
			continue
		}
		set.index[tok] = struct{}{}
		set.sorted = append(set.sorted, tok)
	}
	sort.Strings(set.sorted)
	return set
}

// Has reports whether tok is in the set.
func (s TokenSet) Has(tok string) bool {
	_, ok := s.index[tok]
	return ok
}

// Tokens returns the tokens in ascending order. The slice must not be modified.
func (s TokenSet) Tokens() []string {
	return s.sorted
}

// Len returns the number of tokens.
func (s TokenSet) Len() int {
	return len(s.sorted)
}

// Rule is one emitted CSS rule.
type Rule struct {
	Selector    string
	Declaration string
	Media       string // "@media (min-width: 640px)" or ""

	Token string // Utility token that produced the rule
	Pass  string // Name of the synthesis pass
}

// String renders the rule as a single line of CSS.
func (r Rule) String() string {
	block := r.Selector + " {" + r.Declaration + "}"
	if r.Media != "" {
		return r.Media + " {" + block + "}"
	}
	return block
}

// RuleList accumulates rules in emission order. It is append-only.
type RuleList struct {
	rules []Rule
	pass  string
}

func (l *RuleList) add(token, selector, declaration string) {
	l.addMedia(token, "", selector, declaration)
}

func (l *RuleList) addMedia(token, media, selector, declaration string) {
	if declaration == "" {
		return
	}
	l.rules = append(l.rules, Rule{
		Selector:    selector,
		Declaration: declaration,
		Media:       media,
		Token:       token,
		Pass:        l.pass,
	})
}

// Rules returns the emitted rules in order.
func (l *RuleList) Rules() []Rule {
	return l.rules
}

// Len returns the number of emitted rules.
func (l *RuleList) Len() int {
	return len(l.rules)
}

// Render joins the rules one per line with a trailing newline.
func (l *RuleList) Render() string {
	lines := make([]string, len(l.rules))
	for i, r := range l.rules {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n") + "\n"
}

// MatchedTokens returns the set of tokens that produced at least one rule.
func (l *RuleList) MatchedTokens() map[string]bool {
	matched := make(map[string]bool, len(l.rules))
	for _, r := range l.rules {
		matched[r.Token] = true
	}
	return matched
}

// PassCount is the number of rules one synthesis pass emitted.
type PassCount struct {
	Pass  string
	Rules int
}

// CountByPass returns per-pass rule counts in pass order, including passes
// that emitted nothing.
func (l *RuleList) CountByPass() []PassCount {
	counts := make(map[string]int)
	for _, r := range l.rules {
		counts[r.Pass]++
	}
	result := make([]PassCount, 0, len(passes))
	for _, p := range passes {
		result = append(result, PassCount{Pass: p.name, Rules: counts[p.name]})
	}
	return result
}
