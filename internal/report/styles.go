package report

import "github.com/charmbracelet/lipgloss"

// Styles by role. Colors are ANSI indexes so the terminal theme decides the
// actual shade; lipgloss degrades them further when the terminal can't.
var (
	styleLocation = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	styleHeading  = styleLocation
	styleSection  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	styleCaret    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	styleWarning  = styleCaret
	styleMuted    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// Coverage bar, by band.
	styleGood = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleFair = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleBad  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// paint renders text with style when color is on and returns it untouched
// otherwise.
func paint(style lipgloss.Style, text string, color bool) string {
	if !color {
		return text
	}
	return style.Render(text)
}

// coverageStyle picks the bar color for a coverage percentage.
func coverageStyle(percentage float64) lipgloss.Style {
	switch {
	case percentage >= 90:
		return styleGood
	case percentage >= 60:
		return styleFair
	default:
		return styleBad
	}
}
