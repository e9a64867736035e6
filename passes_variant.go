package twlite

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yacobolo/twlite/internal/tables"
)

// parsePercent parses the trailing "-N" of tok as an integer percentage.
func parsePercent(tok string) (int, bool) {
	n, err := strconv.Atoi(lastSegment(tok))
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseColumns parses the trailing "-N" of tok as a positive column count.
func parseColumns(tok string) (int, bool) {
	n, err := strconv.Atoi(lastSegment(tok))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func gridColumns(n int) string {
	return fmt.Sprintf("grid-template-columns: repeat(%d, minmax(0, 1fr));", n)
}

func hoverOpacityPass(tokens TokenSet, rules *RuleList) {
	for _, tok := range tokens.Tokens() {
		if !strings.HasPrefix(tok, "hover:opacity-") {
			continue
		}
		if pct, ok := parsePercent(tok); ok {
			rules.add(tok, classSelector(tok)+":hover", "opacity: "+formatFraction(pct)+";")
		}
	}
}

// smallDeclaration resolves the base of an sm: token. Only a closed set of
// bases is supported.
func smallDeclaration(base string) string {
	switch {
	case strings.HasPrefix(base, "grid-cols-"):
		if n, ok := parseColumns(base); ok {
			return gridColumns(n)
		}
	case base == "hidden":
		return "display: none;"
	case base == "inline":
		return "display: inline;"
	case base == "gap-5":
		return "gap: " + tables.Spacing["5"] + ";"
	case base == "text-5xl", base == "text-base":
		return fontSizeDeclaration(tables.FontSizes[base])
	}
	return ""
}

func smallBreakpointPass(tokens TokenSet, rules *RuleList) {
	for _, tok := range tokens.Tokens() {
		base, ok := strings.CutPrefix(tok, "sm:")
		if !ok {
			continue
		}
		rules.addMedia(tok, tables.SmallMedia, classSelector(tok), smallDeclaration(base))
	}
}

func mediumBreakpointPass(tokens TokenSet, rules *RuleList) {
	for _, tok := range tokens.Tokens() {
		if !strings.HasPrefix(tok, "md:grid-cols-") {
			continue
		}
		if n, ok := parseColumns(tok); ok {
			rules.addMedia(tok, tables.MediumMedia, classSelector(tok), gridColumns(n))
		}
	}
}

// opacityFallbackPass handles opacity-N tokens outside the fixed table.
// A non-numeric N skips the token.
func opacityFallbackPass(tokens TokenSet, rules *RuleList) {
	for _, tok := range tokens.Tokens() {
		if !strings.HasPrefix(tok, "opacity-") {
			continue
		}
		if _, fixed := tables.Opacity[tok]; fixed {
			continue
		}
		if pct, ok := parsePercent(tok); ok {
			rules.add(tok, classSelector(tok), "opacity: "+formatFraction(pct)+";")
		}
	}
}
