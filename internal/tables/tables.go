// Package tables holds the fixed design-token lookup tables that utility
// classes are resolved against.
//
// Every table is a package-level map literal. Callers must treat them as
// read-only; nothing in twlite mutates a table after process start.
package tables

// FontSize is a font-size/line-height pair.
type FontSize struct {
	Size       string
	LineHeight string
}

// Spacing maps a spacing step to its rem value.
var Spacing = map[string]string{
	"0":   "0rem",
	"0.5": "0.125rem",
	"1":   "0.25rem",
	"1.5": "0.375rem",
	"2":   "0.5rem",
	"2.5": "0.625rem",
	"3":   "0.75rem",
	"3.5": "0.875rem",
	"4":   "1rem",
	"5":   "1.25rem",
	"6":   "1.5rem",
	"8":   "2rem",
	"10":  "2.5rem",
	"12":  "3rem",
	"14":  "3.5rem",
	"16":  "4rem",
}

// Palette maps a color name ("brand-500", "white") to a #rrggbb value.
var Palette = map[string]string{
	"white":       "#ffffff",
	"black":       "#000000",
	"brand-500":   "#29a3a3",
	"brand-600":   "#208181",
	"brand-700":   "#196464",
	"slate-50":    "#f8fafc",
	"slate-100":   "#f1f5f9",
	"slate-200":   "#e2e8f0",
	"slate-300":   "#cbd5f5",
	"slate-400":   "#94a3b8",
	"slate-500":   "#64748b",
	"slate-600":   "#475569",
	"slate-700":   "#334155",
	"slate-800":   "#1e293b",
	"slate-900":   "#0f172a",
	"slate-950":   "#020617",
	"emerald-50":  "#ecfdf5",
	"emerald-100": "#d1fae5",
	"emerald-200": "#a7f3d0",
	"emerald-300": "#6ee7b7",
	"emerald-600": "#059669",
	"emerald-700": "#047857",
	"emerald-800": "#065f46",
	"emerald-900": "#14532d",
	"sky-50":      "#f0f9ff",
	"sky-100":     "#e0f2fe",
	"sky-300":     "#7dd3fc",
	"sky-600":     "#0284c7",
	"sky-700":     "#0369a1",
	"sky-800":     "#075985",
	"sky-900":     "#0c4a6e",
	"amber-50":    "#fffbeb",
	"amber-100":   "#fef3c7",
	"amber-200":   "#fde68a",
	"amber-300":   "#fcd34d",
	"amber-700":   "#b45309",
	"amber-800":   "#92400e",
	"amber-900":   "#78350f",
	"red-100":     "#fee2e2",
	"red-400":     "#f87171",
	"red-600":     "#dc2626",
	"red-900":     "#7f1d1d",
}

// FontSizes maps a text-size token to its font-size and line-height.
var FontSizes = map[string]FontSize{
	"text-xs":   {"0.75rem", "1rem"},
	"text-sm":   {"0.875rem", "1.25rem"},
	"text-base": {"1rem", "1.5rem"},
	"text-lg":   {"1.125rem", "1.75rem"},
	"text-xl":   {"1.25rem", "1.75rem"},
	"text-2xl":  {"1.5rem", "2rem"},
	"text-4xl":  {"2.25rem", "2.5rem"},
	"text-5xl":  {"3rem", "1"},
}

// Shadows maps a shadow token to its box-shadow value.
var Shadows = map[string]string{
	"shadow-soft": "0 16px 40px rgba(2,6,23,0.12)",
	"shadow-lg":   "0 20px 25px -5px rgba(15,23,42,0.1), 0 10px 10px -5px rgba(15,23,42,0.04)",
}

// ZIndex maps a z-index token to its value.
var ZIndex = map[string]string{
	"z-30":   "30",
	"z-40":   "40",
	"z-50":   "50",
	"z-[60]": "60",
	"z-[70]": "70",
	"z-[80]": "80",
}

// Sizes maps size-, h- and w- tokens to a fixed length. The token prefix
// decides which properties receive it.
var Sizes = map[string]string{
	"size-4": "1rem",
	"size-5": "1.25rem",
	"h-6":    "1.5rem",
	"h-10":   "2.5rem",
	"h-24":   "6rem",
	"w-6":    "1.5rem",
	"w-10":   "2.5rem",
	"w-24":   "6rem",
}

// MaxWidths maps a max-w token to its max-width value.
var MaxWidths = map[string]string{
	"max-w-2xl": "42rem",
	"max-w-3xl": "48rem",
	"max-w-4xl": "56rem",
	"max-w-5xl": "64rem",
	"max-w-lg":  "32rem",
	"max-w-md":  "28rem",
}

// FixedPairs maps two literal tokens to literal declarations.
var FixedPairs = map[string]string{
	"-mt-3":            "margin-top: -0.75rem;",
	"-translate-x-1/2": "transform: translateX(-50%);",
}

// Opacity holds the four common opacity tokens. Other opacity-N tokens are
// computed from N.
var Opacity = map[string]string{
	"opacity-50": "0.5",
	"opacity-60": "0.6",
	"opacity-80": "0.8",
	"opacity-90": "0.9",
}

// HoverColors maps hover:bg-* tokens to their :hover background color.
var HoverColors = map[string]string{
	"hover:bg-white":          "#ffffff",
	"hover:bg-white/70":       "rgba(255,255,255,0.7)",
	"hover:bg-brand-50":       "rgba(41,163,163,0.1)",
	"hover:bg-brand-700":      "#196464",
	"hover:bg-emerald-700":    "#047857",
	"hover:bg-emerald-100/60": "rgba(209,250,229,0.6)",
	"hover:bg-sky-700":        "#0369a1",
	"hover:bg-slate-100":      "#f1f5f9",
	"hover:bg-slate-50":       "#f8fafc",
}

// Breakpoints are the min-width media conditions for responsive prefixes.
const (
	SmallMedia  = "@media (min-width: 640px)"
	MediumMedia = "@media (min-width: 768px)"
)

// DarkScope is the ancestor selector that marks dark mode as active.
const DarkScope = "html.dark"
