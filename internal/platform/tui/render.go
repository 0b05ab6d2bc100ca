package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func fg(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }

// palette is indexed by core.Color. Piece colors use the 256-color codes
// closest to the usual tetromino colors.
var palette = [...]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         fg("196"),
	core.ColorGreen:       fg("46"),
	core.ColorYellow:      fg("226"),
	core.ColorBlue:        fg("33"),
	core.ColorMagenta:     fg("129"),
	core.ColorCyan:        fg("51"),
	core.ColorWhite:       fg("252"),
	core.ColorOrange:      fg("208"),
	core.ColorGray:        fg("240"),
	core.ColorBrightWhite: fg("15").Bold(true),
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(palette) {
		return palette[c]
	}
	return palette[core.ColorDefault]
}

// RenderScreen turns the screen buffer into styled text. Runs of cells with
// the same color share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb, run strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		run.Reset()
		cur := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != cur {
				sb.WriteString(styleFor(cur).Render(run.String()))
				run.Reset()
				cur = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			sb.WriteString(styleFor(cur).Render(run.String()))
		}
	}
	return sb.String()
}
