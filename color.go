package twlite

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"github.com/yacobolo/twlite/internal/tables"
)

// alphaPattern matches "base/NN" where NN is an integer percentage.
var alphaPattern = regexp.MustCompile(`^([a-z0-9\-]+)/(\d+)$`)

// ResolveColor resolves a palette name, optionally with an alpha suffix
// ("brand-500/30"), to a CSS color value.
func ResolveColor(name string) (string, bool) {
	if hex, ok := tables.Palette[name]; ok {
		return hex, true
	}

	m := alphaPattern.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	hex, ok := tables.Palette[m[1]]
	if !ok {
		return "", false
	}
	percent, err := strconv.Atoi(m[2])
	if err != nil {
		return "", false
	}

	c, err := csscolorparser.Parse(hex)
	if err != nil {
		return "", false
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", r, g, b, float64(percent)/100), true
}

// formatFraction renders an integer percentage as a fraction in its
// shortest form, keeping one decimal for whole numbers: 37 -> "0.37",
// 100 -> "1.0", 0 -> "0.0".
func formatFraction(percent int) string {
	s := strconv.FormatFloat(float64(percent)/100, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
