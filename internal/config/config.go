// Package config provides YAML-based presentation settings for the 2048
// front-ends: key bindings, colour themes and the desktop window layout.
// Board size and the winning score are engine parameters and are not
// configurable here.
package config

import (
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Config is the full presentation configuration.
type Config struct {
	Renderer string       `yaml:"renderer"` // default terminal renderer ID
	Keys     KeyConfig    `yaml:"keys"`
	Theme    Theme        `yaml:"theme"`
	Window   WindowConfig `yaml:"window"`

	// Source is where the config was loaded from ("embedded" for defaults).
	Source string `yaml:"-"`
}

// KeyConfig lists the key names bound to each action.
// Names follow Bubble Tea key strings ("up", "w", "enter", "ctrl+c", "space").
type KeyConfig struct {
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Start []string `yaml:"start"`
	Help  []string `yaml:"help"`
	Quit  []string `yaml:"quit"`
}

// Bindings returns the key lists keyed by action, in action order.
func (k KeyConfig) Bindings() []ActionKeys {
	return []ActionKeys{
		{Action: core.ActionUp, Keys: k.Up},
		{Action: core.ActionDown, Keys: k.Down},
		{Action: core.ActionLeft, Keys: k.Left},
		{Action: core.ActionRight, Keys: k.Right},
		{Action: core.ActionStart, Keys: k.Start},
		{Action: core.ActionHelp, Keys: k.Help},
		{Action: core.ActionQuit, Keys: k.Quit},
	}
}

// ActionKeys pairs an action with its bound key names.
type ActionKeys struct {
	Action core.Action
	Keys   []string
}

// Theme holds terminal colours by name (see core.ParseColor).
type Theme struct {
	Text     string         `yaml:"text"`
	Border   string         `yaml:"border"`
	Empty    string         `yaml:"empty"`
	Tiles    map[int]string `yaml:"tiles"`
	Fallback string         `yaml:"fallback"` // tiles with no entry in Tiles
}

// TileColor returns the colour for a tile value.
func (t Theme) TileColor(value int) core.Color {
	if name, ok := t.Tiles[value]; ok {
		if c, ok := core.ParseColor(name); ok {
			return c
		}
	}
	return t.color(t.Fallback, core.ColorBrightMagenta)
}

// TextColor returns the HUD text colour.
func (t Theme) TextColor() core.Color {
	return t.color(t.Text, core.ColorDefault)
}

// BorderColor returns the board frame colour.
func (t Theme) BorderColor() core.Color {
	return t.color(t.Border, core.ColorDefault)
}

// EmptyColor returns the colour for empty cells.
func (t Theme) EmptyColor() core.Color {
	return t.color(t.Empty, core.ColorGray)
}

func (t Theme) color(name string, fallback core.Color) core.Color {
	if c, ok := core.ParseColor(name); ok {
		return c
	}
	return fallback
}

// WindowConfig describes the desktop window. Colours are "#rrggbb" hex.
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Background string `yaml:"background"`
	Grid       string `yaml:"grid"`
	Empty      string `yaml:"empty"`
	Tile       string `yaml:"tile"`
	Text       string `yaml:"text"`
}

// Default returns the built-in configuration.
// It matches the embedded defaults/t2048.yaml.
func Default() Config {
	return Config{
		Renderer: "box",
		Keys: KeyConfig{
			Up:    []string{"up", "w", "k"},
			Down:  []string{"down", "s", "j"},
			Left:  []string{"left", "a", "h"},
			Right: []string{"right", "d", "l"},
			Start: []string{"enter", "space", "r"},
			Help:  []string{"?"},
			Quit:  []string{"q", "ctrl+c", "esc"},
		},
		Theme: Theme{
			Text:   "bright_white",
			Border: "yellow",
			Empty:  "gray",
			Tiles: map[int]string{
				2:    "white",
				4:    "bright_white",
				8:    "yellow",
				16:   "bright_yellow",
				32:   "orange",
				64:   "red",
				128:  "bright_red",
				256:  "magenta",
				512:  "bright_magenta",
				1024: "cyan",
				2048: "bright_cyan",
			},
			Fallback: "bright_green",
		},
		Window: WindowConfig{
			Width:      900,
			Height:     600,
			Title:      "2048",
			Background: "#ffffff",
			Grid:       "#b09f87",
			Empty:      "#dfc5b1",
			Tile:       "#efd2bf",
			Text:       "#cc4c1d",
		},
		Source: "embedded",
	}
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if c.Renderer == "" {
		return fmt.Errorf("config: renderer is empty")
	}

	for _, b := range c.Keys.Bindings() {
		if len(b.Keys) == 0 {
			return fmt.Errorf("config: no keys bound to %s", b.Action)
		}
	}

	for _, name := range []string{c.Theme.Text, c.Theme.Border, c.Theme.Empty, c.Theme.Fallback} {
		if name == "" {
			continue
		}
		if _, ok := core.ParseColor(name); !ok {
			return fmt.Errorf("config: unknown theme colour %q", name)
		}
	}
	for _, value := range c.Theme.tileValues() {
		if !isPowerOfTwo(value) {
			return fmt.Errorf("config: theme tile %d is not a power of two", value)
		}
		if _, ok := core.ParseColor(c.Theme.Tiles[value]); !ok {
			return fmt.Errorf("config: unknown colour %q for tile %d", c.Theme.Tiles[value], value)
		}
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	for _, hex := range []string{c.Window.Background, c.Window.Grid, c.Window.Empty, c.Window.Tile, c.Window.Text} {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("config: window colour %q: %w", hex, err)
		}
	}

	return nil
}

// Marshal encodes the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// tileValues returns the themed tile values in ascending order.
func (t Theme) tileValues() []int {
	values := make([]int, 0, len(t.Tiles))
	for v := range t.Tiles {
		values = append(values, v)
	}
	sort.Ints(values)
	return values
}

func isPowerOfTwo(v int) bool {
	return v > 1 && v&(v-1) == 0
}
