package twlite

import "strings"

// selectorEscaper backslash-escapes characters that have meaning in a
// selector. The backslash itself is included so escaping is unambiguous.
var selectorEscaper = strings.NewReplacer(
	`\`, `\\`,
	`:`, `\:`,
	`/`, `\/`,
	`[`, `\[`,
	`]`, `\]`,
	`%`, `\%`,
	`(`, `\(`,
	`)`, `\)`,
	`.`, `\.`,
	`,`, `\,`,
	` `, `\ `,
)

// EscapeClass returns token escaped for use as a CSS class name.
func EscapeClass(token string) string {
	return selectorEscaper.Replace(token)
}

// classSelector returns the class selector that matches token.
func classSelector(token string) string {
	return "." + EscapeClass(token)
}
