package scene

import (
	"strings"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

// keyAliases maps terminal key names to window key names.
var keyAliases = map[string]string{
	"up":    "arrowup",
	"down":  "arrowdown",
	"left":  "arrowleft",
	"right": "arrowright",
	"esc":   "escape",
	" ":     "space",
}

// KeyBinding pairs a lowercase window key name with its action.
type KeyBinding struct {
	Name   string
	Action core.Action
}

// KeyBindings normalizes the configured keys for the window, in action order.
// Help has no meaning in the window and is dropped. A name bound to several
// actions keeps the first one.
func KeyBindings(cfg config.KeyConfig) []KeyBinding {
	seen := make(map[string]bool)
	var out []KeyBinding

	for _, b := range cfg.Bindings() {
		if b.Action == core.ActionHelp {
			continue
		}
		for _, name := range b.Keys {
			name = strings.ToLower(name)
			if alias, ok := keyAliases[name]; ok {
				name = alias
			}
			if seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, KeyBinding{Name: name, Action: b.Action})
		}
	}
	return out
}
