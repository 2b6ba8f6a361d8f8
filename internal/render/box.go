package render

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

const (
	minCellInner = 4 // Narrowest cell content, fits "2048"
	cellHeight   = 2 // Height of each cell (including borders)
	hudHeight    = 3
)

func init() {
	registry.Register("box", func(theme config.Theme) registry.Renderer {
		return NewBox(theme)
	})
}

// Box draws the board as a box-drawing grid on a core.Screen.
type Box struct {
	theme  config.Theme
	screen *core.Screen
}

// NewBox creates a box renderer using the given theme.
func NewBox(theme config.Theme) *Box {
	return &Box{
		theme:  theme,
		screen: core.NewScreen(0, 0),
	}
}

// ID returns the renderer ID.
func (b *Box) ID() string {
	return "box"
}

// Title returns the renderer name.
func (b *Box) Title() string {
	return "Box grid"
}

// Render draws v into a width x height frame.
func (b *Box) Render(v t2048.View, width, height int) string {
	b.screen.Resize(width, height)
	b.Draw(b.screen, v)
	return RenderScreen(b.screen)
}

// Draw renders the board, HUD and status overlay into dst.
func (b *Box) Draw(dst *core.Screen, v t2048.View) {
	dst.Clear()

	n := v.Size()
	cellWidth := cellWidthFor(v)
	boardW := n*cellWidth + 1  // +1 for right border
	boardH := n*cellHeight + 1 // +1 for bottom border

	if dst.Width() < boardW || dst.Height() < hudHeight+1+boardH {
		b.drawTooSmall(dst)
		return
	}

	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight + 1

	b.drawHUD(dst, v, boardX, boardW)
	b.drawBoard(dst, v, boardX, boardY, cellWidth)

	if lines := statusLines(v); lines != nil {
		band := core.NewRect(0, boardY, dst.Width(), boardH)
		b.drawOverlay(dst, band, lines...)
	}
}

// cellWidthFor returns the cell width (including the left border) that fits
// the largest tile on the board.
func cellWidthFor(v t2048.View) int {
	return core.Max(minCellInner, len(strconv.Itoa(v.MaxTile()))) + 1
}

// drawTooSmall shows a "window too small" message.
func (b *Box) drawTooSmall(dst *core.Screen) {
	text := b.theme.TextColor()
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", text)
	dst.DrawTextCentered(y+1, "Please resize terminal", text)
}

// drawHUD draws the title, score and target.
func (b *Box) drawHUD(dst *core.Screen, v t2048.View, boardX, boardW int) {
	text := b.theme.TextColor()

	title := "2048"
	dst.DrawTextColor(boardX+(boardW-len(title))/2, 0, title, text)

	scoreStr := fmt.Sprintf("Score: %d", v.Score())
	dst.DrawTextColor(core.Max(0, boardX+(boardW-len(scoreStr))/2), 1, scoreStr, text)

	targetStr := fmt.Sprintf("Target: %d", v.Target())
	dst.DrawTextColor(core.Max(0, boardX+(boardW-len(targetStr))/2), 2, targetStr, text)
}

// drawBoard draws the grid lines and tiles.
func (b *Box) drawBoard(dst *core.Screen, v t2048.View, boardX, boardY, cellWidth int) {
	n := v.Size()
	border := b.theme.BorderColor()

	for y := range n + 1 {
		for x := range n + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == n:
				corner = '┐'
			case y == n && x == 0:
				corner = '└'
			case y == n && x == n:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == n:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColor(px, py, corner, border)

			if x < n {
				for i := 1; i < cellWidth; i++ {
					dst.SetColor(px+i, py, '─', border)
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.SetColor(px, py+i, '│', border)
				}
			}
		}
	}

	for row := range n {
		for col := range n {
			cellX := boardX + col*cellWidth + 1
			cellY := boardY + row*cellHeight + 1

			val, ok := v.Cell(row, col)
			if !ok {
				dst.SetColor(cellX+(cellWidth-1)/2, cellY, '·', b.theme.EmptyColor())
				continue
			}

			valStr := strconv.Itoa(val)
			padLeft := core.Max((cellWidth-1-len(valStr))/2, 0)
			dst.DrawTextColor(cellX+padLeft, cellY, valStr, b.theme.TileColor(val))
		}
	}
}

// drawOverlay draws a text box centered in area, one line per row.
func (b *Box) drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := area.Centered(maxLen+4, len(lines)+2)

	// Clear area behind overlay
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		x := box.X + (box.W-len(line))/2
		dst.DrawTextColor(x, box.Y+1+i, line, b.theme.TextColor())
	}
}
