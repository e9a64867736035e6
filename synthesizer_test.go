package twlite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// renderRules synthesizes tokens and returns the rule lines.
func renderRules(tokens ...string) []string {
	rules := Synthesize(NewTokenSet(tokens...))
	lines := make([]string, 0, rules.Len())
	for _, r := range rules.Rules() {
		lines = append(lines, r.String())
	}
	return lines
}

func TestSynthesizeSingleToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  []string
	}{
		{
			name:  "static keyword",
			token: "absolute",
			want:  []string{`.absolute {position: absolute;}`},
		},
		{
			name:  "static keyword with slash",
			token: "left-1/2",
			want:  []string{`.left-1\/2 {left: 50%;}`},
		},
		{
			name:  "shadow preset",
			token: "shadow-soft",
			want:  []string{`.shadow-soft {box-shadow: 0 16px 40px rgba(2,6,23,0.12);}`},
		},
		{
			name:  "bracketed z-index",
			token: "z-[60]",
			want:  []string{`.z-\[60\] {z-index: 60;}`},
		},
		{
			name:  "size sets width and height",
			token: "size-4",
			want:  []string{`.size-4 {width: 1rem; height: 1rem;}`},
		},
		{
			name:  "fixed height",
			token: "h-24",
			want:  []string{`.h-24 {height: 6rem;}`},
		},
		{
			name:  "max width",
			token: "max-w-md",
			want:  []string{`.max-w-md {max-width: 28rem;}`},
		},
		{
			name:  "translate pair",
			token: "-translate-x-1/2",
			want:  []string{`.-translate-x-1\/2 {transform: translateX(-50%);}`},
		},
		{
			name:  "half step margin",
			token: "mt-2.5",
			want:  []string{`.mt-2\.5 {margin-top: 0.625rem;}`},
		},
		{
			name:  "negative spacing value",
			token: "mt--4",
			want:  []string{`.mt--4 {margin-top: -1rem;}`},
		},
		{
			name:  "leading dash margin outside the fixed pairs",
			token: "-mx-4",
			want:  []string{},
		},
		{
			name:  "horizontal padding",
			token: "px-4",
			want:  []string{`.px-4 {padding-left: 1rem; padding-right: 1rem;}`},
		},
		{
			name:  "plain padding",
			token: "p-0",
			want:  []string{`.p-0 {padding: 0rem;}`},
		},
		{
			name:  "negative padding is not a utility",
			token: "-px-4",
			want:  []string{},
		},
		{
			name:  "spacing step outside the scale",
			token: "mt-7",
			want:  []string{},
		},
		{
			name:  "space between children",
			token: "space-y-4",
			want:  []string{`.space-y-4 > :not([hidden]) ~ :not([hidden]) {margin-top: 1rem;}`},
		},
		{
			name:  "gap",
			token: "gap-2",
			want:  []string{`.gap-2 {gap: 0.5rem;}`},
		},
		{
			name:  "arbitrary width",
			token: "w[22rem]",
			want:  []string{`.w\[22rem\] {width: 22rem;}`},
		},
		{
			name:  "arbitrary value with dash before bracket",
			token: "w-[22rem]",
			want:  []string{},
		},
		{
			name:  "static bracketed token",
			token: "max-h-[90vh]",
			want:  []string{`.max-h-\[90vh\] {max-height: 90vh;}`},
		},
		{
			name:  "arbitrary max height without dash",
			token: "max-h[50vh]",
			want:  []string{`.max-h\[50vh\] {max-height: 50vh;}`},
		},
		{
			name:  "arbitrary value for unsupported property",
			token: "min-w-[10rem]",
			want:  []string{},
		},
		{
			name:  "opacity table",
			token: "opacity-50",
			want:  []string{`.opacity-50 {opacity: 0.5;}`},
		},
		{
			name:  "opacity fallback",
			token: "opacity-37",
			want:  []string{`.opacity-37 {opacity: 0.37;}`},
		},
		{
			name:  "opacity fallback at zero",
			token: "opacity-0",
			want:  []string{`.opacity-0 {opacity: 0.0;}`},
		},
		{
			name:  "opacity fallback with non-numeric suffix",
			token: "opacity-half",
			want:  []string{},
		},
		{
			name:  "font size",
			token: "text-lg",
			want:  []string{`.text-lg {font-size: 1.125rem; line-height: 1.75rem;}`},
		},
		{
			name:  "text color",
			token: "text-slate-700",
			want:  []string{`.text-slate-700 {color: #334155;}`},
		},
		{
			name:  "border color",
			token: "border-red-400",
			want:  []string{`.border-red-400 {border-color: #f87171;}`},
		},
		{
			name:  "alpha background",
			token: "bg-brand-500/30",
			want:  []string{`.bg-brand-500\/30 {background-color: rgba(41, 163, 163, 0.30);}`},
		},
		{
			name:  "unknown color",
			token: "bg-unknown-999",
			want:  []string{},
		},
		{
			name:  "gradient start",
			token: "to-brand-600",
			want:  []string{`.to-brand-600 {--tw-gradient-to: #208181;}`},
		},
		{
			name:  "focus outline",
			token: "focus:outline-none",
			want:  []string{`.focus\:outline-none:focus {outline: none;}`},
		},
		{
			name:  "focus ring color",
			token: "focus:ring-brand-500/30",
			want:  []string{`.focus\:ring-brand-500\/30 {--tw-focus-ring: rgba(41,163,163,0.3);}`},
		},
		{
			name:  "hover color table",
			token: "hover:bg-brand-700",
			want:  []string{`.hover\:bg-brand-700:hover {background-color: #196464;}`},
		},
		{
			name:  "hover opacity",
			token: "hover:opacity-80",
			want:  []string{`.hover\:opacity-80:hover {opacity: 0.8;}`},
		},
		{
			name:  "hover opacity at full",
			token: "hover:opacity-100",
			want:  []string{`.hover\:opacity-100:hover {opacity: 1.0;}`},
		},
		{
			name:  "hover opacity with non-numeric suffix",
			token: "hover:opacity-full",
			want:  []string{},
		},
		{
			name:  "dark hover background",
			token: "dark:hover:bg-slate-800",
			want:  []string{`html.dark .dark\:hover\:bg-slate-800:hover {background-color: #1e293b;}`},
		},
		{
			name:  "dark alpha background",
			token: "dark:bg-slate-900/60",
			want:  []string{`html.dark .dark\:bg-slate-900\/60 {background-color: rgba(15, 23, 42, 0.60);}`},
		},
		{
			name:  "dark text",
			token: "dark:text-white",
			want:  []string{`html.dark .dark\:text-white {color: #ffffff;}`},
		},
		{
			name:  "small breakpoint grid",
			token: "sm:grid-cols-2",
			want:  []string{`@media (min-width: 640px) {.sm\:grid-cols-2 {grid-template-columns: repeat(2, minmax(0, 1fr));}}`},
		},
		{
			name:  "small breakpoint font size",
			token: "sm:text-5xl",
			want:  []string{`@media (min-width: 640px) {.sm\:text-5xl {font-size: 3rem; line-height: 1;}}`},
		},
		{
			name:  "small breakpoint gap",
			token: "sm:gap-5",
			want:  []string{`@media (min-width: 640px) {.sm\:gap-5 {gap: 1.25rem;}}`},
		},
		{
			name:  "small breakpoint unsupported base",
			token: "sm:flex",
			want:  []string{},
		},
		{
			name:  "medium breakpoint grid",
			token: "md:grid-cols-3",
			want:  []string{`@media (min-width: 768px) {.md\:grid-cols-3 {grid-template-columns: repeat(3, minmax(0, 1fr));}}`},
		},
		{
			name:  "medium breakpoint grid without count",
			token: "md:grid-cols-none",
			want:  []string{},
		},
		{
			name:  "placeholder color",
			token: "placeholder:text-slate-400",
			want:  []string{`.placeholder\:text-slate-400::placeholder {color: #94a3b8;}`},
		},
		{
			name:  "component preset",
			token: "gen-chk",
			want:  []string{`.gen-chk {width: 1rem; height: 1rem;}`},
		},
		{
			name:  "unknown token",
			token: "totally-made-up",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, renderRules(tt.token))
		})
	}
}

func TestSynthesizeOverlappingPasses(t *testing.T) {
	// Component presets also match the dark-mode override pass.
	tests := []struct {
		name     string
		token    string
		wantBase string
		wantDark string
	}{
		{
			name:     "button",
			token:    "btn",
			wantBase: ".btn {display: inline-flex;",
			wantDark: `html.dark .btn {background-color: rgba(15,23,42,0.2); border-color: rgba(71,85,105,0.6); color: #e2e8f0;}`,
		},
		{
			name:     "card",
			token:    "card",
			wantBase: ".card {border-radius: 1rem;",
			wantDark: `html.dark .card {background-color: rgba(15,23,42,0.6); border-color: rgba(71,85,105,0.6); box-shadow: 0 16px 40px rgba(2,6,23,0.45);}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := renderRules(tt.token)
			require.Len(t, lines, 2)
			assert.True(t, strings.HasPrefix(lines[0], tt.wantBase), lines[0])
			assert.Equal(t, tt.wantDark, lines[1])
		})
	}
}

func TestSynthesizeSinglePassTokens(t *testing.T) {
	// Tokens that look like a generic pattern but belong to one table.
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{name: "fixed negative margin", token: "-mt-3", want: `.-mt-3 {margin-top: -0.75rem;}`},
		{name: "static max height", token: "max-h-[90vh]", want: `.max-h-\[90vh\] {max-height: 90vh;}`},
		{name: "static min height", token: "min-h-[100svh]", want: `.min-h-\[100svh\] {min-height: 100svh;}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := Synthesize(NewTokenSet(tt.token))
			require.Equal(t, 1, rules.Len())
			assert.Equal(t, []string{tt.want}, renderRules(tt.token))
		})
	}
}

func TestSynthesizeOrder(t *testing.T) {
	// Pass order first, then token order within a pass.
	got := renderRules("bg-white", "p-4", "mb-2", "absolute", "card", "btn")
	assert.Equal(t, []string{
		".absolute {position: absolute;}",
		".btn {display: inline-flex; align-items: center; justify-content: center; gap: 0.5rem; padding: 0.5rem 0.75rem; border-radius: 0.75rem; border-width: 1px; border-style: solid; font-weight: 600; transition: background-color .2s ease, opacity .2s ease, color .2s ease;}",
		".card {border-radius: 1rem; background-color: rgba(255,255,255,0.9); backdrop-filter: blur(8px); border: 1px solid rgba(226,232,240,1); padding: 1rem; box-shadow: 0 16px 40px rgba(2,6,23,0.12);}",
		".mb-2 {margin-bottom: 0.5rem;}",
		".p-4 {padding: 1rem;}",
		".bg-white {background-color: #ffffff;}",
		"html.dark .btn {background-color: rgba(15,23,42,0.2); border-color: rgba(71,85,105,0.6); color: #e2e8f0;}",
		"html.dark .card {background-color: rgba(15,23,42,0.6); border-color: rgba(71,85,105,0.6); box-shadow: 0 16px 40px rgba(2,6,23,0.45);}",
	}, got)
}

func TestSynthesizeDeterministic(t *testing.T) {
	tokens := []string{"sm:hidden", "text-sm", "bg-sky-600/50", "opacity-5", "gap-3", "z-50"}
	reversed := make([]string, len(tokens))
	for i, tok := range tokens {
		reversed[len(tokens)-1-i] = tok
	}

	first := Synthesize(NewTokenSet(tokens...)).Render()
	second := Synthesize(NewTokenSet(reversed...)).Render()
	assert.Equal(t, first, second)
}

func TestRuleListBookkeeping(t *testing.T) {
	rules := Synthesize(NewTokenSet("absolute", "p-4", "px-4", "nope"))

	for _, r := range rules.Rules() {
		assert.NotEmpty(t, r.Pass)
	}
	assert.Equal(t, map[string]bool{"absolute": true, "p-4": true, "px-4": true}, rules.MatchedTokens())

	counts := rules.CountByPass()
	require.Len(t, counts, len(PassNames()))
	assert.Equal(t, PassCount{Pass: "static", Rules: 1}, counts[0])
	assert.Equal(t, PassCount{Pass: "spacing", Rules: 2}, counts[3])
}

func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, "\n", Synthesize(NewTokenSet()).Render())
}

func TestTokenSet(t *testing.T) {
	set := NewTokenSet("card", "btn", "card", "b")
	assert.Equal(t, []string{"b", "btn", "card"}, set.Tokens())
	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Has("btn"))
	assert.False(t, set.Has("bt"))

	var zero TokenSet
	assert.False(t, zero.Has("btn"))
	assert.Equal(t, 0, zero.Len())
}
