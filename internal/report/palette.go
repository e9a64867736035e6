package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// baseFamily groups palette entries without a numeric shade ("white").
const baseFamily = "base"

// Swatch is one palette entry with its HSL components.
type Swatch struct {
	Name string
	Hex  string
	H    float64 // Hue in degrees
	S    float64 // Saturation, 0-1
	L    float64 // Lightness, 0-1
}

// Family is a group of swatches sharing a color name ("slate").
type Family struct {
	Name     string
	Swatches []Swatch
}

// familyOf returns "slate" for "slate-500" and baseFamily for "white".
func familyOf(name string) string {
	i := strings.LastIndex(name, "-")
	if i <= 0 {
		return baseFamily
	}
	if _, err := strconv.Atoi(name[i+1:]); err != nil {
		return baseFamily
	}
	return name[:i]
}

// GroupPalette groups palette entries by family. Families are sorted by
// name with the base family first; swatches go from lightest to darkest.
func GroupPalette(palette map[string]string) ([]Family, error) {
	byFamily := make(map[string][]Swatch)
	for name, hex := range palette {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("palette entry %s: %w", name, err)
		}
		h, s, l := c.Hsl()
		family := familyOf(name)
		byFamily[family] = append(byFamily[family], Swatch{Name: name, Hex: hex, H: h, S: s, L: l})
	}

	families := make([]Family, 0, len(byFamily))
	for name, swatches := range byFamily {
		sort.Slice(swatches, func(i, j int) bool {
			if swatches[i].L != swatches[j].L {
				return swatches[i].L > swatches[j].L
			}
			return swatches[i].Name < swatches[j].Name
		})
		families = append(families, Family{Name: name, Swatches: swatches})
	}
	sort.Slice(families, func(i, j int) bool {
		if (families[i].Name == baseFamily) != (families[j].Name == baseFamily) {
			return families[i].Name == baseFamily
		}
		return families[i].Name < families[j].Name
	})

	return families, nil
}

// PrintPalette renders families as a table with color swatches.
func PrintPalette(w io.Writer, families []Family, useColors bool) {
	title := cases.Title(language.English)

	for i, family := range families {
		if i > 0 {
			fmt.Fprintln(w, "")
		}
		fmt.Fprintln(w, paint(styleHeading, title.String(family.Name), useColors))

		for _, s := range family.Swatches {
			swatch := ""
			if useColors {
				swatch = lipgloss.NewStyle().Background(lipgloss.Color(s.Hex)).Render("    ") + " "
			}
			fmt.Fprintf(w, "  %s%-12s %s  hsl(%.0f, %.0f%%, %.0f%%)\n",
				swatch, s.Name, s.Hex, s.H, s.S*100, s.L*100)
		}
	}
}
