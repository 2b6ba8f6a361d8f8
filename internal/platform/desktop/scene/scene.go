// Package scene describes what the desktop window draws for a board: cell
// geometry, colours and text captions. It has no graphics dependency so the
// layout can be tested headless; the desktop package paints it with Ebiten.
package scene

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// Logical screen size. The window scales this to its configured size.
const (
	ScreenWidth  = 900
	ScreenHeight = 600
)

// Board geometry in logical pixels.
const (
	gridX    = 150
	gridY    = 50
	gridSide = 500
	gap      = 20 // padding around and between cells
)

// Rect is an axis-aligned rectangle in logical pixels.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the midpoint of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Layout holds the board geometry for a given board size.
type Layout struct {
	pitch float64
}

// NewLayout computes cell geometry for a size x size board.
// A 4x4 board gets 100px cells on a 120px pitch.
func NewLayout(size int) Layout {
	return Layout{
		pitch: float64(gridSide-gap) / float64(size),
	}
}

// Grid returns the board background rectangle.
func (l Layout) Grid() Rect {
	return Rect{X: gridX, Y: gridY, W: gridSide + 1, H: gridSide + 1}
}

// Cell returns the rectangle of the cell at (row, col).
func (l Layout) Cell(row, col int) Rect {
	side := l.pitch - gap
	return Rect{
		X: gridX + gap + float64(col)*l.pitch,
		Y: gridY + gap + float64(row)*l.pitch,
		W: side,
		H: side,
	}
}

// Palette holds the window colours.
type Palette struct {
	Background color.RGBA
	Grid       color.RGBA
	Empty      color.RGBA
	Tile       color.RGBA
	Text       color.RGBA
}

// NewPalette parses the configured hex colours.
func NewPalette(w config.WindowConfig) (Palette, error) {
	var p Palette
	for _, c := range []struct {
		hex string
		dst *color.RGBA
	}{
		{w.Background, &p.Background},
		{w.Grid, &p.Grid},
		{w.Empty, &p.Empty},
		{w.Tile, &p.Tile},
		{w.Text, &p.Text},
	} {
		parsed, err := colorful.Hex(c.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("scene: colour %q: %w", c.hex, err)
		}
		r, g, b := parsed.RGB255()
		*c.dst = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return p, nil
}

// FontSize selects one of the window's text faces.
type FontSize int

const (
	FontBody FontSize = iota
	FontScore
	FontTile
	FontHeadline
	FontTitle
)

// Points returns the face size in points.
func (s FontSize) Points() float64 {
	switch s {
	case FontScore:
		return 30
	case FontTile:
		return 40
	case FontHeadline:
		return 50
	case FontTitle:
		return 100
	default:
		return 20
	}
}

// Caption is a text drawn at a baseline position.
// With Centered set, X is the horizontal center instead of the left edge.
type Caption struct {
	Text     string
	X, Y     float64
	Size     FontSize
	Centered bool
}

// Captions returns the text for the current state.
// A running game shows the score beside the board; other states show a
// message in place of the tiles.
func Captions(v t2048.View) []Caption {
	switch v.State() {
	case t2048.StateNotStarted:
		return []Caption{
			{Text: "2048", X: 270, Y: 200, Size: FontTitle},
			{Text: "click to start", X: 330, Y: 400, Size: FontBody},
			{Text: "use arrow keys to move", X: 280, Y: 450, Size: FontBody},
		}
	case t2048.StateWon:
		return []Caption{
			{Text: "Target achieved!", X: 350, Y: 300, Size: FontScore},
			{Text: fmt.Sprintf("Score: %d", v.Score()), X: 350, Y: 380, Size: FontBody},
			{Text: "click to start a new game", X: 330, Y: 420, Size: FontBody},
		}
	case t2048.StateLost:
		return []Caption{
			{Text: "Game over", X: 280, Y: 300, Size: FontHeadline},
			{Text: fmt.Sprintf("Score: %d", v.Score()), X: 320, Y: 380, Size: FontBody},
			{Text: "click to start a new game", X: 280, Y: 420, Size: FontBody},
		}
	default:
		return []Caption{
			{Text: fmt.Sprintf("SCORE: %d", v.Score()), X: 680, Y: 130, Size: FontScore},
		}
	}
}

// TileCaptions returns one centered label per occupied cell.
// Only a running game shows tiles.
func TileCaptions(v t2048.View, l Layout) []Caption {
	if v.State() != t2048.StateRunning {
		return nil
	}

	var out []Caption
	for row := range v.Size() {
		for col := range v.Size() {
			val, ok := v.Cell(row, col)
			if !ok {
				continue
			}
			cx, cy := l.Cell(row, col).Center()
			out = append(out, Caption{
				Text:     strconv.Itoa(val),
				X:        cx,
				Y:        cy + FontTile.Points()/3,
				Size:     FontTile,
				Centered: true,
			})
		}
	}
	return out
}
