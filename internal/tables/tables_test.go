package tables

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexColor = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestSpacingIsQuarterRem(t *testing.T) {
	for step, value := range Spacing {
		t.Run(step, func(t *testing.T) {
			n, err := strconv.ParseFloat(step, 64)
			require.NoError(t, err)

			rem, err := strconv.ParseFloat(strings.TrimSuffix(value, "rem"), 64)
			require.NoError(t, err)
			assert.InDelta(t, n*0.25, rem, 1e-9)
		})
	}
}

func TestPaletteIsLowercaseHex(t *testing.T) {
	for name, hex := range Palette {
		assert.Regexp(t, hexColor, hex, name)
	}
}

func TestDeclarationsAreTerminated(t *testing.T) {
	tables := map[string]map[string]string{
		"Static":     Static,
		"Components": Components,
		"Gradients":  Gradients,
		"FixedPairs": FixedPairs,
	}
	for tableName, table := range tables {
		for tok, decl := range table {
			assert.True(t, strings.HasSuffix(decl, ";"), "%s[%q]", tableName, tok)
		}
	}
	for _, dc := range DarkComponents {
		assert.True(t, strings.HasSuffix(dc.Declaration, ";"), "DarkComponents[%q]", dc.Class)
	}
	for tok, focus := range Focus {
		assert.True(t, strings.HasSuffix(focus.Declaration, ";"), "Focus[%q]", tok)
	}
}

func TestDarkComponentsOverrideComponentPresets(t *testing.T) {
	for _, dc := range DarkComponents {
		_, static := Static[dc.Class]
		_, preset := Components[dc.Class]
		assert.True(t, static || preset, "%s has no base rule", dc.Class)
		assert.NotEmpty(t, dc.Declaration, dc.Class)
	}
}
