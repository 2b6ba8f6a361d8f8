package scene

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

func TestKeyBindingsDefaults(t *testing.T) {
	got := KeyBindings(config.Default().Keys)

	want := []KeyBinding{
		{"arrowup", core.ActionUp}, {"w", core.ActionUp}, {"k", core.ActionUp},
		{"arrowdown", core.ActionDown}, {"s", core.ActionDown}, {"j", core.ActionDown},
		{"arrowleft", core.ActionLeft}, {"a", core.ActionLeft}, {"h", core.ActionLeft},
		{"arrowright", core.ActionRight}, {"d", core.ActionRight}, {"l", core.ActionRight},
		{"enter", core.ActionStart}, {"space", core.ActionStart}, {"r", core.ActionStart},
		{"q", core.ActionQuit}, {"ctrl+c", core.ActionQuit}, {"escape", core.ActionQuit},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("KeyBindings(defaults) =\n%v\nwant\n%v", got, want)
	}
}

func TestKeyBindingsNormalize(t *testing.T) {
	tests := []struct {
		name string
		keys config.KeyConfig
		want []KeyBinding
	}{
		{
			name: "aliases and case",
			keys: config.KeyConfig{Up: []string{"UP"}, Quit: []string{"Esc"}, Start: []string{" "}},
			want: []KeyBinding{{"arrowup", core.ActionUp}, {"space", core.ActionStart}, {"escape", core.ActionQuit}},
		},
		{
			name: "help dropped",
			keys: config.KeyConfig{Help: []string{"?", "f1"}, Left: []string{"left"}},
			want: []KeyBinding{{"arrowleft", core.ActionLeft}},
		},
		{
			name: "first action wins",
			keys: config.KeyConfig{Up: []string{"x"}, Start: []string{"X", "enter"}},
			want: []KeyBinding{{"x", core.ActionUp}, {"enter", core.ActionStart}},
		},
		{
			name: "alias and full name collapse",
			keys: config.KeyConfig{Down: []string{"down", "arrowdown"}},
			want: []KeyBinding{{"arrowdown", core.ActionDown}},
		},
		{
			name: "nothing bound",
			keys: config.KeyConfig{},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyBindings(tt.keys); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("KeyBindings = %v, want %v", got, tt.want)
			}
		})
	}
}
