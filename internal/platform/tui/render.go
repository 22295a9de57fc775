package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// ansiColors maps core.Color to terminal colors.
var ansiColors = map[core.Color]lipgloss.Color{
	core.ColorBlack:   lipgloss.Color("0"),
	core.ColorRed:     lipgloss.Color("1"),
	core.ColorGreen:   lipgloss.Color("2"),
	core.ColorYellow:  lipgloss.Color("3"),
	core.ColorBlue:    lipgloss.Color("4"),
	core.ColorMagenta: lipgloss.Color("5"),
	core.ColorCyan:    lipgloss.Color("6"),
	core.ColorWhite:   lipgloss.Color("7"),
	core.ColorOrange:  lipgloss.Color("208"),
	core.ColorGray:    lipgloss.Color("245"),
	core.ColorSilver:  lipgloss.Color("250"),
	core.ColorGold:    lipgloss.Color("220"),
}

// cellStyle returns the style for a run of cells.
func cellStyle(fg, bg core.Color, bold bool) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(bold)
	if c, ok := ansiColors[fg]; ok {
		style = style.Foreground(c)
	}
	if c, ok := ansiColors[bg]; ok {
		style = style.Background(c)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
// A bg other than ColorDefault paints every cell's background.
func RenderScreen(s *core.Screen, bg core.Color) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color and weight
		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start.Color || cell.Bold != start.Bold {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(cellStyle(start.Color, bg, start.Bold).Render(run.String()))
		}
	}
	return sb.String()
}
