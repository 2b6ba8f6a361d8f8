package desktop

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/desktop/scene"
)

// ebitenKeys indexes every Ebiten key by its lowercase name.
func ebitenKeys() map[string]ebiten.Key {
	keys := make(map[string]ebiten.Key)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		name := strings.TrimPrefix(strings.ToLower(k.String()), "key")
		if name != "" {
			keys[name] = k
		}
	}
	return keys
}

// keyBindings resolves the configured key names to Ebiten keys.
// Names with no window equivalent (such as "ctrl+c" or "?") are skipped.
func keyBindings(cfg config.KeyConfig) map[ebiten.Key]core.Action {
	known := ebitenKeys()
	bindings := make(map[ebiten.Key]core.Action)

	for _, b := range scene.KeyBindings(cfg) {
		if k, ok := known[b.Name]; ok {
			bindings[k] = b.Action
		}
	}
	return bindings
}
