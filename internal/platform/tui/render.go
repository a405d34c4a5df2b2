package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bonarun/internal/core"
)

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// palette is indexed by core.Color.
var palette = [...]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         fg("1"),
	core.ColorGreen:       fg("2"),
	core.ColorYellow:      fg("3"),
	core.ColorBlue:        fg("4"),
	core.ColorCyan:        fg("6"),
	core.ColorWhite:       fg("7"),
	core.ColorBrightWhite: fg("15").Bold(true),
	core.ColorGray:        fg("245"),
	core.ColorSky:         fg("117"),
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(palette) {
		return palette[c]
	}
	return palette[core.ColorDefault]
}

// RenderScreen turns the cell buffer into terminal output. Each run of
// same-colored cells gets one style, so a frame costs one escape sequence
// per color change rather than per cell.
func RenderScreen(s *core.Screen) string {
	var out strings.Builder
	out.Grow(2*s.Width()*s.Height() + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			out.WriteByte('\n')
		}
		writeRow(&out, &run, s, y)
	}
	return out.String()
}

// writeRow appends row y to out, using run as scratch space.
func writeRow(out, run *strings.Builder, s *core.Screen, y int) {
	for x := 0; x < s.Width(); {
		color := s.GetCell(x, y).Color
		run.Reset()
		for ; x < s.Width(); x++ {
			c := s.GetCell(x, y)
			if c.Color != color {
				break
			}
			run.WriteRune(c.Rune)
		}
		out.WriteString(styleFor(color).Render(run.String()))
	}
}
