package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// isolate points HOME at an empty directory so user configs don't leak in.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestDefaultMatchesEmbedded(t *testing.T) {
	cfg, err := parse(DefaultYAML(), "embedded")
	if err != nil {
		t.Fatalf("embedded config does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded config differs from Default():\n%+v\nvs\n%+v", cfg, Default())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadEmbeddedFallback(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Source != "embedded" {
		t.Errorf("Source = %q, want embedded", cfg.Source)
	}
	if cfg.Renderer != "box" {
		t.Errorf("Renderer = %q, want box", cfg.Renderer)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, `
renderer: tiles
keys:
  quit: [x]
window:
  width: 640
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Source != path {
		t.Errorf("Source = %q, want %q", cfg.Source, path)
	}
	if cfg.Renderer != "tiles" {
		t.Errorf("Renderer = %q, want tiles", cfg.Renderer)
	}
	if !reflect.DeepEqual(cfg.Keys.Quit, []string{"x"}) {
		t.Errorf("Keys.Quit = %v, want [x]", cfg.Keys.Quit)
	}

	// Unset fields keep their defaults
	def := Default()
	if !reflect.DeepEqual(cfg.Keys.Up, def.Keys.Up) {
		t.Errorf("Keys.Up = %v, want default %v", cfg.Keys.Up, def.Keys.Up)
	}
	if cfg.Window.Width != 640 || cfg.Window.Height != def.Window.Height {
		t.Errorf("Window = %dx%d, want 640x%d", cfg.Window.Width, cfg.Window.Height, def.Window.Height)
	}
	if !reflect.DeepEqual(cfg.Theme.Tiles, def.Theme.Tiles) {
		t.Error("Theme.Tiles should keep defaults when the file omits them")
	}
}

func TestLoadThemeTilesReplaced(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "theme.yaml")
	writeFile(t, path, `
theme:
  tiles:
    2: red
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Theme.Tiles) != 1 {
		t.Errorf("Theme.Tiles = %v, want only the file's entries", cfg.Theme.Tiles)
	}
	if cfg.Theme.TileColor(2) != core.ColorRed {
		t.Errorf("TileColor(2) = %v, want red", cfg.Theme.TileColor(2))
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "renderer: [unterminated"},
		{"unknown colour", "theme:\n  border: plaid\n"},
		{"empty key list", "keys:\n  up: []\n"},
		{"bad window colour", "window:\n  grid: notahex\n"},
		{"bad window size", "window:\n  width: 0\n"},
		{"tile not a power of two", "theme:\n  tiles:\n    3: red\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			writeFile(t, path, tt.content)

			if _, err := Load(path); err == nil {
				t.Errorf("Load should reject %q", tt.content)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load should fail for a missing custom path")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, userDir, userFile)
	writeFile(t, path, "renderer: tiles\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, want %q", cfg.Source, path)
	}
	if cfg.Renderer != "tiles" {
		t.Errorf("Renderer = %q, want tiles", cfg.Renderer)
	}
}

func TestLoadSkipsInvalidUserConfig(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, userDir, userFile), "theme:\n  text: plaid\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Source != "embedded" {
		t.Errorf("Source = %q, want embedded", cfg.Source)
	}
}

func TestThemeColors(t *testing.T) {
	theme := Default().Theme

	tests := []struct {
		value int
		want  core.Color
	}{
		{2, core.ColorWhite},
		{32, core.ColorOrange},
		{2048, core.ColorBrightCyan},
		{4096, core.ColorBrightGreen}, // fallback
	}
	for _, tt := range tests {
		if got := theme.TileColor(tt.value); got != tt.want {
			t.Errorf("TileColor(%d) = %v, want %v", tt.value, got, tt.want)
		}
	}

	var empty Theme
	if empty.TileColor(2) != core.ColorBrightMagenta {
		t.Error("zero theme should use the built-in fallback")
	}
	if empty.EmptyColor() != core.ColorGray || empty.TextColor() != core.ColorDefault {
		t.Error("zero theme should use built-in empty and text colours")
	}
}

func TestBindingsOrder(t *testing.T) {
	bindings := Default().Keys.Bindings()

	want := []core.Action{
		core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
		core.ActionStart, core.ActionHelp, core.ActionQuit,
	}
	if len(bindings) != len(want) {
		t.Fatalf("got %d bindings, want %d", len(bindings), len(want))
	}
	for i, b := range bindings {
		if b.Action != want[i] {
			t.Errorf("binding %d action = %v, want %v", i, b.Action, want[i])
		}
		if len(b.Keys) == 0 {
			t.Errorf("binding %v has no keys", b.Action)
		}
	}
}

func TestMarshal(t *testing.T) {
	data, err := Default().Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	cfg, err := parse(data, "embedded")
	if err != nil {
		t.Fatalf("marshalled config does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Error("marshalled config should decode back to the defaults")
	}
}
