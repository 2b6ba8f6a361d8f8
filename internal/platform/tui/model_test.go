package tui

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/render"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

func newTestModel(t *testing.T) (Model, *t2048.Engine, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	cfg := config.Default()
	engine := t2048.New(t2048.WithSeed(7))
	m := NewModel(engine, render.NewBox(cfg.Theme), cfg.Keys, logger, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	return m, engine, &buf
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func TestModelStartWithEnter(t *testing.T) {
	m, engine, buf := newTestModel(t)

	if cmd := m.Init(); cmd != nil {
		t.Error("Init should not schedule commands")
	}

	update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if engine.State() != t2048.StateRunning {
		t.Errorf("State = %s, want running", engine.State())
	}
	if !strings.Contains(buf.String(), "game started") {
		t.Errorf("expected start to be logged, got %q", buf.String())
	}
}

func TestModelStartWithClick(t *testing.T) {
	m, engine, _ := newTestModel(t)

	// Motion and release do nothing
	update(t, m, tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	update(t, m, tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if engine.State() != t2048.StateNotStarted {
		t.Fatalf("State = %s, want not_started", engine.State())
	}

	update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if engine.State() != t2048.StateRunning {
		t.Errorf("State = %s, want running", engine.State())
	}
}

func TestModelMoves(t *testing.T) {
	m, engine, _ := newTestModel(t)

	// Moves before start are ignored
	update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if engine.Snapshot().Occupied() != 0 {
		t.Fatal("move before start should not touch the board")
	}

	update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	// Two tiles on an empty board: at least one direction always moves
	changed := false
	for _, k := range []tea.KeyType{tea.KeyLeft, tea.KeyUp, tea.KeyRight, tea.KeyDown} {
		before := engine.Snapshot()
		update(t, m, tea.KeyMsg{Type: k})
		if !reflect.DeepEqual(before, engine.Snapshot()) {
			changed = true
		}
	}
	if !changed {
		t.Error("arrow keys never changed the board")
	}
}

func TestModelLogsBoardStats(t *testing.T) {
	m, engine, buf := newTestModel(t)

	update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	want := fmt.Sprintf("tiles=%d sum=%d", engine.Snapshot().Occupied(), engine.Snapshot().Sum())
	if !strings.Contains(buf.String(), "board changed") || !strings.Contains(buf.String(), want) {
		t.Errorf("start should log board stats %q, got %q", want, buf.String())
	}
}

func TestModelHelpToggle(t *testing.T) {
	m, _, _ := newTestModel(t)

	short := ansi.Strip(m.View())
	m, _ = update(t, m, runeKey("?"))
	full := ansi.Strip(m.View())

	if !strings.Contains(full, "move left") {
		t.Errorf("full help should list each direction:\n%s", full)
	}
	if strings.Contains(short, "move left") {
		t.Errorf("short help should group directions:\n%s", short)
	}
}

func TestModelQuit(t *testing.T) {
	m, _, buf := newTestModel(t)

	m, cmd := update(t, m, runeKey("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if !m.Quitting() {
		t.Error("model should be quitting")
	}
	if m.View() != "" {
		t.Error("View should be empty after quit")
	}
	if !strings.Contains(buf.String(), "quit") {
		t.Errorf("expected quit to be logged, got %q", buf.String())
	}
}

func TestModelViewFitsWindow(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})

	lines := strings.Split(ansi.Strip(m.View()), "\n")
	if len(lines) != 20 {
		t.Errorf("view has %d lines, want 20", len(lines))
	}

	out := strings.Join(lines, "\n")
	for _, want := range []string{"2048", "click or press Enter to start", "move"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
}
