package twlite

import (
	"strings"

	"github.com/yacobolo/twlite/internal/tables"
)

// emitExact emits one rule per token found in table, in token order.
func emitExact(tokens TokenSet, rules *RuleList, table map[string]string, format func(string) string) {
	for _, tok := range tokens.Tokens() {
		value, ok := table[tok]
		if !ok {
			continue
		}
		rules.add(tok, classSelector(tok), format(value))
	}
}

func verbatim(decl string) string { return decl }

func staticPass(tokens TokenSet, rules *RuleList) {
	emitExact(tokens, rules, tables.Static, verbatim)
}

// presetPass covers the shadow, z-index, size and max-width tables, one
// table after the other.
func presetPass(tokens TokenSet, rules *RuleList) {
	emitExact(tokens, rules, tables.Shadows, func(v string) string {
		return "box-shadow: " + v + ";"
	})
	emitExact(tokens, rules, tables.ZIndex, func(v string) string {
		return "z-index: " + v + ";"
	})
	for _, tok := range tokens.Tokens() {
		size, ok := tables.Sizes[tok]
		if !ok {
			continue
		}
		switch {
		case strings.HasPrefix(tok, "size-"):
			rules.add(tok, classSelector(tok), "width: "+size+"; height: "+size+";")
		case strings.HasPrefix(tok, "h-"):
			rules.add(tok, classSelector(tok), "height: "+size+";")
		case strings.HasPrefix(tok, "w-"):
			rules.add(tok, classSelector(tok), "width: "+size+";")
		}
	}
	emitExact(tokens, rules, tables.MaxWidths, func(v string) string {
		return "max-width: " + v + ";"
	})
}

func fixedPairPass(tokens TokenSet, rules *RuleList) {
	emitExact(tokens, rules, tables.FixedPairs, verbatim)
}

func opacityPass(tokens TokenSet, rules *RuleList) {
	emitExact(tokens, rules, tables.Opacity, func(v string) string {
		return "opacity: " + v + ";"
	})
}

func fontSizePass(tokens TokenSet, rules *RuleList) {
	for _, tok := range tokens.Tokens() {
		if fs, ok := tables.FontSizes[tok]; ok {
			rules.add(tok, classSelector(tok), fontSizeDeclaration(fs))
		}
	}
}

func fontSizeDeclaration(fs tables.FontSize) string {
	return "font-size: " + fs.Size + "; line-height: " + fs.LineHeight + ";"
}

func gradientPass(tokens TokenSet, rules *RuleList) {
	emitExact(tokens, rules, tables.Gradients, verbatim)
}

func focusPass(tokens TokenSet, rules *RuleList) {
	for _, tok := range tokens.Tokens() {
		if focus, ok := tables.Focus[tok]; ok {
			rules.add(tok, classSelector(tok)+focus.Pseudo, focus.Declaration)
		}
	}
}

func hoverColorPass(tokens TokenSet, rules *RuleList) {
	for _, tok := range tokens.Tokens() {
		if color, ok := tables.HoverColors[tok]; ok {
			rules.add(tok, classSelector(tok)+":hover", "background-color: "+color+";")
		}
	}
}

func componentPass(tokens TokenSet, rules *RuleList) {
	emitExact(tokens, rules, tables.Components, verbatim)
}

// darkComponentPass emits the dark-mode overrides in table order.
func darkComponentPass(tokens TokenSet, rules *RuleList) {
	for _, dc := range tables.DarkComponents {
		if tokens.Has(dc.Class) {
			rules.add(dc.Class, tables.DarkScope+" "+classSelector(dc.Class), dc.Declaration)
		}
	}
}
