// Package twlite synthesizes a minimal utility-class stylesheet.
//
// twlite scans markup for utility-class tokens, resolves each token against
// a closed set of design-token tables and writes only the CSS rules that
// are actually used.
//
// # Generation
//
//	config := twlite.DefaultConfig()
//	config.Sources = []string{"index.html", "pharmacy.html"}
//	result, err := twlite.Generate(config)
//
// # Coverage
//
// Lint reports the tokens found in markup that produced no rule:
//
//	result, err := twlite.Lint(twlite.LintConfig{Sources: config.Sources})
//
// # CLI Tool
//
//	go install github.com/yacobolo/twlite/cmd/twlite@latest
package twlite
