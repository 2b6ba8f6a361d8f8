// Package desktop runs the 2048 board in a desktop window with Ebiten,
// laid out like the original Swing window: click to start, arrow keys to
// move, score beside the board.
package desktop

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/desktop/scene"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// Game implements ebiten.Game for one board.
type Game struct {
	engine  *t2048.Engine
	keys    map[ebiten.Key]core.Action
	layout  scene.Layout
	palette scene.Palette
	faces   map[scene.FontSize]font.Face
	logger  *log.Logger
}

// New prepares the window game. A nil logger discards log output.
func New(engine *t2048.Engine, cfg config.Config, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	palette, err := scene.NewPalette(cfg.Window)
	if err != nil {
		return nil, fmt.Errorf("desktop: %w", err)
	}

	faces, err := loadFaces()
	if err != nil {
		return nil, fmt.Errorf("desktop: %w", err)
	}

	return &Game{
		engine:  engine,
		keys:    keyBindings(cfg.Keys),
		layout:  scene.NewLayout(engine.Size()),
		palette: palette,
		faces:   faces,
		logger:  logger,
	}, nil
}

// loadFaces parses the bundled font once and creates a face per size.
func loadFaces() (map[scene.FontSize]font.Face, error) {
	tt, err := opentype.Parse(fonts.MPlus1pRegular_ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	faces := make(map[scene.FontSize]font.Face)
	for _, size := range []scene.FontSize{scene.FontBody, scene.FontScore, scene.FontTile, scene.FontHeadline, scene.FontTitle} {
		face, err := opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size.Points(),
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("font face %v: %w", size.Points(), err)
		}
		faces[size] = face
	}
	return faces, nil
}

// Update collects this frame's input and feeds it to the engine.
func (g *Game) Update() error {
	frame := core.NewInputFrame()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		frame.Set(core.ActionStart)
	}
	for k, action := range g.keys {
		if !inpututil.IsKeyJustPressed(k) {
			continue
		}
		if action == core.ActionQuit {
			g.logger.Info("quit", "score", g.engine.Score(), "state", g.engine.State())
			return ebiten.Termination
		}
		frame.Set(action)
	}

	if frame.Empty() {
		return nil
	}

	before := g.engine.State()
	result := g.engine.Step(frame)
	if after := g.engine.State(); after != before {
		g.logger.Info("state changed", "from", before, "to", after, "score", result.State.Score)
	}
	return nil
}

// Draw paints the board and captions.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.palette.Background)

	grid := g.layout.Grid()
	fillRect(screen, grid, g.palette.Grid)

	if g.engine.State() == t2048.StateRunning {
		for row := range g.engine.Size() {
			for col := range g.engine.Size() {
				fill := g.palette.Empty
				if _, ok := g.engine.Cell(row, col); ok {
					fill = g.palette.Tile
				}
				fillRect(screen, g.layout.Cell(row, col), fill)
			}
		}
		g.drawCaptions(screen, scene.TileCaptions(g.engine, g.layout))
	}

	g.drawCaptions(screen, scene.Captions(g.engine))
}

func (g *Game) drawCaptions(screen *ebiten.Image, captions []scene.Caption) {
	for _, c := range captions {
		face := g.faces[c.Size]
		x := int(c.X)
		if c.Centered {
			bounds, _ := font.BoundString(face, c.Text)
			x -= (bounds.Max.X - bounds.Min.X).Ceil() / 2
		}
		text.Draw(screen, c.Text, face, x, int(c.Y), g.palette.Text)
	}
}

func fillRect(dst *ebiten.Image, r scene.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

// Layout implements ebiten.Game with a fixed logical screen.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return scene.ScreenWidth, scene.ScreenHeight
}

// Run opens the window and blocks until it is closed.
func Run(engine *t2048.Engine, cfg config.Config, logger *log.Logger) error {
	game, err := New(engine, cfg, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
