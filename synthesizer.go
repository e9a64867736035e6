package twlite

import "strings"

// pass is one synthesis category. A pass only reads the token set; it never
// sees rules emitted by earlier passes.
type pass struct {
	name string
	run  func(tokens TokenSet, rules *RuleList)
}

// passes run in this order. The order is part of the output format.
var passes = []pass{
	{"static", staticPass},
	{"presets", presetPass},
	{"fixed", fixedPairPass},
	{"spacing", spacingPass},
	{"space-y", spaceYPass},
	{"gap", gapPass},
	{"arbitrary", arbitraryPass},
	{"opacity", opacityPass},
	{"font-size", fontSizePass},
	{"color", colorPass},
	{"gradient", gradientPass},
	{"focus", focusPass},
	{"hover-color", hoverColorPass},
	{"hover-opacity", hoverOpacityPass},
	{"dark-hover", darkHoverPass},
	{"dark-color", darkColorPass},
	{"sm", smallBreakpointPass},
	{"md", mediumBreakpointPass},
	{"placeholder", placeholderPass},
	{"opacity-fallback", opacityFallbackPass},
	{"components", componentPass},
	{"dark-components", darkComponentPass},
}

// PassNames returns the synthesis pass names in execution order.
func PassNames() []string {
	names := make([]string, len(passes))
	for i, p := range passes {
		names[i] = p.name
	}
	return names
}

// Synthesize runs every pass over tokens and returns the emitted rules.
// Tokens that match no pass are silently omitted.
func Synthesize(tokens TokenSet) *RuleList {
	rules := &RuleList{}
	for _, p := range passes {
		rules.pass = p.name
		p.run(tokens, rules)
	}
	rules.pass = ""
	return rules
}

// lastSegment returns the text after the final '-' in tok.
func lastSegment(tok string) string {
	return tok[strings.LastIndex(tok, "-")+1:]
}
