package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

func init() {
	registry.Register("tiles", func(theme config.Theme) registry.Renderer {
		return NewTiles(theme)
	})
}

// Tiles draws each cell as a bordered lipgloss block.
type Tiles struct {
	theme config.Theme
}

// NewTiles creates a tiles renderer using the given theme.
func NewTiles(theme config.Theme) *Tiles {
	return &Tiles{theme: theme}
}

// ID returns the renderer ID.
func (t *Tiles) ID() string {
	return "tiles"
}

// Title returns the renderer name.
func (t *Tiles) Title() string {
	return "Rounded tiles"
}

// Render draws v centered in a width x height frame.
func (t *Tiles) Render(v t2048.View, width, height int) string {
	text := style(t.theme.TextColor())

	header := lipgloss.JoinVertical(lipgloss.Center,
		text.Bold(true).Render("2048"),
		text.Render(fmt.Sprintf("Score: %d   Target: %d", v.Score(), v.Target())),
	)

	parts := []string{header, t.board(v)}
	if lines := statusLines(v); lines != nil {
		parts = append(parts, text.Bold(true).Render(strings.Join(lines, "\n")))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// board joins one block per cell into the grid.
func (t *Tiles) board(v t2048.View) string {
	inner := cellWidthFor(v) + 1

	rows := make([]string, 0, v.Size())
	for row := range v.Size() {
		cells := make([]string, 0, v.Size())
		for col := range v.Size() {
			cells = append(cells, t.cell(v, row, col, inner))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// cell renders a single tile block.
func (t *Tiles) cell(v t2048.View, row, col, width int) string {
	val, ok := v.Cell(row, col)

	color := t.theme.EmptyColor()
	label := "·"
	if ok {
		color = t.theme.TileColor(val)
		label = strconv.Itoa(val)
	}

	s := style(color).
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder())
	if code, ok := colorCodes[color]; ok {
		s = s.BorderForeground(code)
	}
	if ok {
		s = s.Bold(true)
	}
	return s.Render(label)
}
