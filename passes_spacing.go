package twlite

import (
	"regexp"
	"strings"

	"github.com/yacobolo/twlite/internal/tables"
)

var (
	// "mt-4", "px-2.5", "mt--4". The sign belongs to the step.
	spacingPattern   = regexp.MustCompile(`^([mp][trblxy]?)-(-?[0-9]+(?:\.[05])?)$`)
	spaceYPattern    = regexp.MustCompile(`^space-y-([0-9]+(?:\.[05])?)$`)
	gapPattern       = regexp.MustCompile(`^gap-([0-9]+(?:\.[05])?)$`)
	arbitraryPattern = regexp.MustCompile(`^([a-z\-]+)\[(.+)\]$`)
)

// spacingProperties maps a spacing prefix to the properties it sets.
var spacingProperties = map[string][]string{
	"m":  {"margin"},
	"mx": {"margin-left", "margin-right"},
	"my": {"margin-top", "margin-bottom"},
	"mt": {"margin-top"},
	"mb": {"margin-bottom"},
	"ml": {"margin-left"},
	"mr": {"margin-right"},
	"p":  {"padding"},
	"px": {"padding-left", "padding-right"},
	"py": {"padding-top", "padding-bottom"},
	"pt": {"padding-top"},
	"pb": {"padding-bottom"},
	"pl": {"padding-left"},
	"pr": {"padding-right"},
}

// arbitraryProperties lists the prefixes that accept a bracketed value.
var arbitraryProperties = map[string]string{
	"w":     "width",
	"max-h": "max-height",
}

func declareAll(props []string, value string) string {
	decls := make([]string, len(props))
	for i, prop := range props {
		decls[i] = prop + ": " + value + ";"
	}
	return strings.Join(decls, " ")
}

// resolveSpacing looks a step up in the spacing scale, negating it when
// negative is set.
func resolveSpacing(step string, negative bool) (string, bool) {
	value, ok := tables.Spacing[step]
	if !ok {
		return "", false
	}
	if negative {
		value = "-" + strings.TrimPrefix(value, "-")
	}
	return value, true
}

func spacingPass(tokens TokenSet, rules *RuleList) {
	for _, tok := range tokens.Tokens() {
		m := spacingPattern.FindStringSubmatch(tok)
		if m == nil {
			continue
		}
		prefix, step := m[1], m[2]
		negative := strings.HasPrefix(step, "-")

		value, ok := resolveSpacing(strings.TrimPrefix(step, "-"), negative)
		if !ok {
			continue
		}
		props, ok := spacingProperties[prefix]
		if !ok {
			continue
		}
		rules.add(tok, classSelector(tok), declareAll(props, value))
	}
}

func spaceYPass(tokens TokenSet, rules *RuleList) {
	for _, tok := range tokens.Tokens() {
		m := spaceYPattern.FindStringSubmatch(tok)
		if m == nil {
			continue
		}
		if value, ok := tables.Spacing[m[1]]; ok {
			rules.add(tok, classSelector(tok)+" > :not([hidden]) ~ :not([hidden])", "margin-top: "+value+";")
		}
	}
}

func gapPass(tokens TokenSet, rules *RuleList) {
	for _, tok := range tokens.Tokens() {
		m := gapPattern.FindStringSubmatch(tok)
		if m == nil {
			continue
		}
		if value, ok := tables.Spacing[m[1]]; ok {
			rules.add(tok, classSelector(tok), "gap: "+value+";")
		}
	}
}

// arbitraryPass passes the bracketed value through unvalidated. The
// property must touch the bracket: "w[22rem]" matches, "w-[22rem]" does not.
func arbitraryPass(tokens TokenSet, rules *RuleList) {
	for _, tok := range tokens.Tokens() {
		m := arbitraryPattern.FindStringSubmatch(tok)
		if m == nil {
			continue
		}
		prop, ok := arbitraryProperties[m[1]]
		if !ok {
			continue
		}
		rules.add(tok, classSelector(tok), prop+": "+m[2]+";")
	}
}
