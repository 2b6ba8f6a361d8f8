package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Start key.Binding
	Help  key.Binding
	Quit  key.Binding

	// Move groups the four directions for the short help line.
	Move key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Start, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Start, k.Help, k.Quit},
	}
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(cfg config.KeyConfig) KeyMap {
	move := make([]string, 0, len(cfg.Up)+len(cfg.Down)+len(cfg.Left)+len(cfg.Right))
	for _, keys := range [][]string{cfg.Up, cfg.Down, cfg.Left, cfg.Right} {
		move = append(move, keys...)
	}

	return KeyMap{
		Up:    binding(cfg.Up, "move up"),
		Down:  binding(cfg.Down, "move down"),
		Left:  binding(cfg.Left, "move left"),
		Right: binding(cfg.Right, "move right"),
		Start: binding(cfg.Start, "start"),
		Help:  binding(cfg.Help, "toggle help"),
		Quit:  binding(cfg.Quit, "quit"),
		Move: key.NewBinding(
			key.WithKeys(teaKeys(move)...),
			key.WithHelp(helpLabel(firstKeys(cfg.Up, cfg.Down, cfg.Left, cfg.Right)), "move"),
		),
	}
}

func binding(names []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(teaKeys(names)...),
		key.WithHelp(helpLabel(names), desc),
	)
}

// teaKeys converts config key names to Bubble Tea key strings.
func teaKeys(names []string) []string {
	keys := make([]string, 0, len(names))
	for _, name := range names {
		if name == "space" {
			name = " "
		}
		keys = append(keys, name)
	}
	return keys
}

// helpLabel joins key names for display, using arrows for the arrow keys.
func helpLabel(names []string) string {
	labels := make([]string, 0, len(names))
	for _, name := range names {
		switch name {
		case "up":
			name = "↑"
		case "down":
			name = "↓"
		case "left":
			name = "←"
		case "right":
			name = "→"
		case " ":
			name = "space"
		}
		labels = append(labels, name)
	}
	return strings.Join(labels, "/")
}

// firstKeys takes the first name of each list.
func firstKeys(lists ...[]string) []string {
	out := make([]string, 0, len(lists))
	for _, l := range lists {
		if len(l) > 0 {
			out = append(out, l[0])
		}
	}
	return out
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper from the configured bindings.
func NewKeyMapper(cfg config.KeyConfig) *KeyMapper {
	return &KeyMapper{keys: NewKeyMap(cfg)}
}

// KeyMap returns the bindings, for the help view.
func (km *KeyMapper) KeyMap() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Up):
		return core.ActionUp, false
	case key.Matches(msg, km.keys.Down):
		return core.ActionDown, false
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.keys.Start):
		return core.ActionStart, false
	case key.Matches(msg, km.keys.Help):
		return core.ActionHelp, false
	}

	return core.ActionNone, false
}
