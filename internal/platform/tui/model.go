// Package tui runs the 2048 board in the terminal with Bubble Tea.
// The model is event-driven: every key or click becomes one input frame
// for the engine, and the view re-renders the board after each event.
package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// Model is the Bubble Tea model for one game session.
type Model struct {
	engine   *t2048.Engine
	renderer registry.Renderer
	keys     *KeyMapper
	help     help.Model
	logger   *log.Logger
	config   core.RuntimeConfig
	quitting bool
}

// NewModel creates a model driving engine and drawing with renderer.
// A nil logger discards log output.
func NewModel(engine *t2048.Engine, renderer registry.Renderer, keys config.KeyConfig, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		engine:   engine,
		renderer: renderer,
		keys:     NewKeyMapper(keys),
		help:     h,
		logger:   logger,
		config:   cfg,
	}
}

// Init implements tea.Model. The game waits for a start action.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)

	switch {
	case isQuit:
		m.logger.Info("quit", "score", m.engine.Score(), "state", m.engine.State())
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case action != core.ActionNone:
		m.step(core.FrameOf(action))
	}

	return m, nil
}

// handleMouse starts a game on a left click, like the original window.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.step(core.FrameOf(core.ActionStart))
	}
	return m, nil
}

// step feeds one frame to the engine and logs state transitions.
func (m Model) step(frame core.InputFrame) {
	before := m.engine.State()
	result := m.engine.Step(frame)
	after := m.engine.State()

	if !result.Changed && after == before {
		return
	}

	snap := m.engine.Snapshot()
	if result.Changed {
		m.logger.Debug("board changed", "score", snap.Score(), "tiles", snap.Occupied(), "sum", snap.Sum(), "max", snap.MaxTile())
	}
	if after == before {
		return
	}

	switch after {
	case t2048.StateRunning:
		m.logger.Info("game started", "size", snap.Size(), "target", snap.Target())
	case t2048.StateWon:
		m.logger.Info("target reached", "score", snap.Score(), "max", snap.MaxTile())
		m.logger.Debug("final board", "board", snap.Board())
	case t2048.StateLost:
		m.logger.Info("no moves left", "score", snap.Score(), "max", snap.MaxTile())
		m.logger.Debug("final board", "board", snap.Board())
	}
}

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// View renders the board above the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := m.help.View(m.keys.KeyMap())
	boardH := core.Max(m.config.ScreenH-lipgloss.Height(helpView), 0)

	return m.renderer.Render(m.engine, m.config.ScreenW, boardH) + "\n" + helpView
}

// Run starts the Bubble Tea program with the given engine and renderer.
func Run(engine *t2048.Engine, renderer registry.Renderer, keys config.KeyConfig, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(engine, renderer, keys, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Click to start
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && !fm.Quitting() {
		fm.logger.Warn("terminal session ended without quit", "score", engine.Score(), "state", engine.State())
	}
	return nil
}
