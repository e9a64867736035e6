package twlite

import (
	"strings"

	"github.com/yacobolo/twlite/internal/tables"
)

// colorPrefix pairs a utility prefix with the property its color sets.
type colorPrefix struct {
	prefix   string
	property string
}

var colorPrefixes = []colorPrefix{
	{"text-", "color"},
	{"bg-", "background-color"},
	{"border-", "border-color"},
}

// colorDeclaration resolves tok against the first matching prefix.
func colorDeclaration(tok string, prefixes []colorPrefix) (string, bool) {
	for _, cp := range prefixes {
		if !strings.HasPrefix(tok, cp.prefix) {
			continue
		}
		value, ok := ResolveColor(tok[len(cp.prefix):])
		if !ok {
			return "", false
		}
		return cp.property + ": " + value + ";", true
	}
	return "", false
}

func colorPass(tokens TokenSet, rules *RuleList) {
	for _, tok := range tokens.Tokens() {
		if decl, ok := colorDeclaration(tok, colorPrefixes); ok {
			rules.add(tok, classSelector(tok), decl)
		}
	}
}

func darkHoverPass(tokens TokenSet, rules *RuleList) {
	const prefix = "dark:hover:bg-"
	for _, tok := range tokens.Tokens() {
		if !strings.HasPrefix(tok, prefix) {
			continue
		}
		if value, ok := ResolveColor(tok[len(prefix):]); ok {
			rules.add(tok, tables.DarkScope+" "+classSelector(tok)+":hover", "background-color: "+value+";")
		}
	}
}

func darkColorPass(tokens TokenSet, rules *RuleList) {
	for _, tok := range tokens.Tokens() {
		base, ok := strings.CutPrefix(tok, "dark:")
		if !ok {
			continue
		}
		if decl, ok := colorDeclaration(base, []colorPrefix{
			{"bg-", "background-color"},
			{"text-", "color"},
			{"border-", "border-color"},
		}); ok {
			rules.add(tok, tables.DarkScope+" "+classSelector(tok), decl)
		}
	}
}

func placeholderPass(tokens TokenSet, rules *RuleList) {
	const prefix = "placeholder:text-"
	for _, tok := range tokens.Tokens() {
		if !strings.HasPrefix(tok, prefix) {
			continue
		}
		if value, ok := ResolveColor(tok[len(prefix):]); ok {
			rules.add(tok, classSelector(tok)+"::placeholder", "color: "+value+";")
		}
	}
}
