package tables

// Static maps exact utility tokens to hand-written declaration blocks.
var Static = map[string]string{
	"absolute":            "position: absolute;",
	"relative":            "position: relative;",
	"fixed":               "position: fixed;",
	"sticky":              "position: sticky;",
	"inset-0":             "top: 0; right: 0; bottom: 0; left: 0;",
	"top-0":               "top: 0;",
	"top-3":               "top: 0.75rem;",
	"top-16":              "top: 4rem;",
	"bottom-4":            "bottom: 1rem;",
	"left-3":              "left: 0.75rem;",
	"left-1/2":            "left: 50%;",
	"right-3":             "right: 0.75rem;",
	"w-full":              "width: 100%;",
	"w-fit":               "width: fit-content;",
	"h-full":              "height: 100%;",
	"h-px":                "height: 1px;",
	"max-h-[90vh]":        "max-height: 90vh;",
	"min-h-full":          "min-height: 100%;",
	"min-h-[100svh]":      "min-height: 100svh;",
	"ml-auto":             "margin-left: auto;",
	"mx-auto":             "margin-left: auto; margin-right: auto;",
	"inline-flex":         "display: inline-flex;",
	"flex":                "display: flex;",
	"flex-1":              "flex: 1 1 0%;",
	"flex-col":            "flex-direction: column;",
	"flex-wrap":           "flex-wrap: wrap;",
	"grid":                "display: grid;",
	"grid-cols-1":         "grid-template-columns: repeat(1, minmax(0, 1fr));",
	"grid-cols-2":         "grid-template-columns: repeat(2, minmax(0, 1fr));",
	"items-center":        "align-items: center;",
	"items-start":         "align-items: flex-start;",
	"justify-between":     "justify-content: space-between;",
	"justify-center":      "justify-content: center;",
	"justify-end":         "justify-content: flex-end;",
	"place-items-center":  "place-items: center;",
	"hidden":              "display: none;",
	"block":               "display: block;",
	"text-center":         "text-align: center;",
	"overflow-hidden":     "overflow: hidden;",
	"overflow-y-auto":     "overflow-y: auto;",
	"pointer-events-none": "pointer-events: none;",
	"pointer-events-auto": "pointer-events: auto;",
	"whitespace-pre-wrap": "white-space: pre-wrap;",
	"break-all":           "word-break: break-all;",
	"list-decimal":        "list-style-type: decimal;",
	"underline":           "text-decoration: underline;",
	"underline-offset-4":  "text-underline-offset: 4px;",
	"tracking-tight":      "letter-spacing: -0.01em;",
	"leading-relaxed":     "line-height: 1.625;",
	"font-sans":           "font-family: 'Inter','ui-sans-serif','system-ui','-apple-system','Segoe UI','Helvetica','Arial',sans-serif;",
	"font-medium":         "font-weight: 500;",
	"font-semibold":       "font-weight: 600;",
	"font-bold":           "font-weight: 700;",
	"font-extrabold":      "font-weight: 800;",
	"rounded-xl":          "border-radius: 0.75rem;",
	"rounded-lg":          "border-radius: 0.5rem;",
	"rounded-2xl":         "border-radius: 1rem;",
	"rounded-3xl":         "border-radius: 1.5rem;",
	"rounded-b-2xl":       "border-bottom-left-radius: 1rem; border-bottom-right-radius: 1rem;",
	"border":              "border-width: 1px; border-style: solid;",
	"border-b":            "border-bottom-width: 1px; border-bottom-style: solid;",
	"backdrop-blur":       "backdrop-filter: blur(20px);",
	"backdrop-blur-sm":    "backdrop-filter: blur(4px);",
	"accent-brand-600":    "accent-color: #208181;",
	"btn":                 "display: inline-flex; align-items: center; justify-content: center; gap: 0.5rem; padding: 0.5rem 0.75rem; border-radius: 0.75rem; border-width: 1px; border-style: solid; font-weight: 600; transition: background-color .2s ease, opacity .2s ease, color .2s ease;",
	"card":                "border-radius: 1rem; background-color: rgba(255,255,255,0.9); backdrop-filter: blur(8px); border: 1px solid rgba(226,232,240,1); padding: 1rem; box-shadow: 0 16px 40px rgba(2,6,23,0.12);",
}

// Components maps the application's named component classes to their
// declaration blocks.
var Components = map[string]string{
	"badge":        "display: inline-flex; align-items: center; gap: 6px; padding: 0.25rem 0.5rem; border-radius: 999px; font-size: 0.75rem;",
	"avail":        "background-color: #ecfdf5; color: #047857; border-radius: 999px; padding: 0.125rem 0.5rem; font-size: 0.75rem;",
	"unavail":      "background-color: #fee2e2; color: #b91c1c; border-radius: 999px; padding: 0.125rem 0.5rem; font-size: 0.75rem;",
	"select-pharm": "display: inline-flex; align-items: center; justify-content: center; gap: 0.5rem; border-radius: 0.75rem; padding: 0.5rem 0.75rem; font-weight: 600;",
	"gen-chk":      "width: 1rem; height: 1rem;",
}

// DarkComponent is a dark-mode override for a component preset.
type DarkComponent struct {
	Class       string
	Declaration string
}

// DarkComponents holds the dark-mode overrides, in emission order.
var DarkComponents = []DarkComponent{
	{Class: "btn", Declaration: "background-color: rgba(15,23,42,0.2); border-color: rgba(71,85,105,0.6); color: #e2e8f0;"},
	{Class: "card", Declaration: "background-color: rgba(15,23,42,0.6); border-color: rgba(71,85,105,0.6); box-shadow: 0 16px 40px rgba(2,6,23,0.45);"},
}

// Gradients maps the three gradient tokens to their declaration blocks.
var Gradients = map[string]string{
	"bg-gradient-to-r": "background-image: linear-gradient(to right, var(--tw-gradient-stops));",
	"from-brand-500":   "--tw-gradient-from: #29a3a3; --tw-gradient-to: rgba(41,163,163,0); --tw-gradient-stops: var(--tw-gradient-from), var(--tw-gradient-to, rgba(41,163,163,0));",
	"to-brand-600":     "--tw-gradient-to: #208181;",
}

// Focus maps the focus tokens to their declaration blocks. The ring color
// token only sets the custom property, so its selector carries no :focus.
var Focus = map[string]FocusRule{
	"focus:outline-none":      {Declaration: "outline: none;", Pseudo: ":focus"},
	"focus:ring-4":            {Declaration: "box-shadow: 0 0 0 4px var(--tw-focus-ring, rgba(41,163,163,0.3));", Pseudo: ":focus"},
	"focus:ring-brand-500/30": {Declaration: "--tw-focus-ring: rgba(41,163,163,0.3);"},
}

// FocusRule is a focus token's declaration and the pseudo-class its selector
// is suffixed with.
type FocusRule struct {
	Declaration string
	Pseudo      string
}
