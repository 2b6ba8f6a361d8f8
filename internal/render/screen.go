// Package render provides the terminal renderers for the 2048 board.
// Each renderer registers itself with the registry in init() and draws
// from a read-only t2048.View.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// colorCodes maps core.Color to ANSI 256-color codes.
var colorCodes = map[core.Color]lipgloss.Color{
	core.ColorRed:           lipgloss.Color("1"),
	core.ColorGreen:         lipgloss.Color("2"),
	core.ColorYellow:        lipgloss.Color("3"),
	core.ColorBlue:          lipgloss.Color("4"),
	core.ColorMagenta:       lipgloss.Color("5"),
	core.ColorCyan:          lipgloss.Color("6"),
	core.ColorWhite:         lipgloss.Color("7"),
	core.ColorBrightRed:     lipgloss.Color("9"),
	core.ColorBrightGreen:   lipgloss.Color("10"),
	core.ColorBrightYellow:  lipgloss.Color("11"),
	core.ColorBrightBlue:    lipgloss.Color("12"),
	core.ColorBrightMagenta: lipgloss.Color("13"),
	core.ColorBrightCyan:    lipgloss.Color("14"),
	core.ColorBrightWhite:   lipgloss.Color("15"),
	core.ColorOrange:        lipgloss.Color("208"),
	core.ColorGray:          lipgloss.Color("245"),
}

// style returns a foreground style for c. ColorDefault leaves the terminal colour.
func style(c core.Color) lipgloss.Style {
	s := lipgloss.NewStyle()
	if code, ok := colorCodes[c]; ok {
		s = s.Foreground(code)
	}
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if startColor == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// restartHint is shown on both end screens; a click or Enter restarts either.
const restartHint = "click or press Enter to play again"

// statusLines returns the message shown over the board for the current state.
// A running game has no message.
func statusLines(v t2048.View) []string {
	switch v.State() {
	case t2048.StateNotStarted:
		return []string{"2048", "click or press Enter to start", "use arrow keys to move"}
	case t2048.StateWon:
		return []string{"Target achieved!", fmt.Sprintf("Score: %d", v.Score()), restartHint}
	case t2048.StateLost:
		return []string{"Game over", fmt.Sprintf("Score: %d", v.Score()), restartHint}
	default:
		return nil
	}
}
