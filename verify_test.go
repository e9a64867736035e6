package twlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountTopLevelBlocks(t *testing.T) {
	tests := []struct {
		name       string
		stylesheet string
		want       int
	}{
		{"empty", "\n", 0},
		{"single ruleset", ".a {color: red;}\n", 1},
		{"escaped selector", `.sm\:p-4 {padding: 1rem;}` + "\n", 1},
		{"media block counts once", "@media (min-width: 640px) {.a {color: red;}}\n.b {color: blue;}\n", 2},
		{"custom property", ".x {--tw-focus-ring: rgba(41,163,163,0.3);}\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CountTopLevelBlocks(tt.stylesheet)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVerifyStylesheet(t *testing.T) {
	t.Run("synthesized rules parse back", func(t *testing.T) {
		rules := Synthesize(NewTokenSet(
			"btn", "card", "space-y-4", "sm:grid-cols-2", "md:grid-cols-4",
			"focus:ring-brand-500/30", "w[calc(100%-2rem)]", "dark:hover:bg-slate-800",
			"placeholder:text-slate-400", "-translate-x-1/2", "mt-2.5",
		))
		require.NotZero(t, rules.Len())
		assert.NoError(t, VerifyStylesheet(rules))
	})

	t.Run("selector that opens a block is detected", func(t *testing.T) {
		rules := &RuleList{}
		rules.add("x", ".a {} .b", "color: red;")

		err := VerifyStylesheet(rules)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected 1")
	})
}
