package twlite

import (
	"errors"
	"fmt"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// CountTopLevelBlocks parses a stylesheet and returns the number of
// top-level rulesets and block at-rules it contains.
func CountTopLevelBlocks(stylesheet string) (int, error) {
	p := css.NewParser(parse.NewInputString(stylesheet), false)

	blocks, depth := 0, 0
	for {
		gt, _, _ := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && !errors.Is(err, io.EOF) {
				return blocks, err
			}
			return blocks, nil
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			if depth == 0 {
				blocks++
			}
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// VerifyStylesheet checks that the rendered rules parse back into exactly
// one top-level block per rule.
func VerifyStylesheet(rules *RuleList) error {
	blocks, err := CountTopLevelBlocks(rules.Render())
	if err != nil {
		return fmt.Errorf("parse stylesheet: %w", err)
	}
	if blocks != rules.Len() {
		return fmt.Errorf("stylesheet has %d top-level blocks, expected %d", blocks, rules.Len())
	}
	return nil
}
