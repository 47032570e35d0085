package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// ansiColors maps core.Color to terminal palette indices.
var ansiColors = map[core.Color]string{
	core.ColorYellow:      "3",
	core.ColorCyan:        "6",
	core.ColorWhite:       "7",
	core.ColorBrightRed:   "9",
	core.ColorBrightGreen: "10",
	core.ColorBrightWhite: "15",
	core.ColorOrange:      "208",
	core.ColorGray:        "245",
}

var (
	colorStyles = buildColorStyles()
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func buildColorStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(ansiColors)+1)
	styles[core.ColorDefault] = lipgloss.NewStyle()
	for c, code := range ansiColors {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}

// styleFor returns the style for c, falling back to the default style.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
