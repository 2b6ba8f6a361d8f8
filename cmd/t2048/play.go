package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

var flagRenderer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048 in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Click/Enter/Space/R  - Start or restart
  Arrows/WASD/HJKL     - Move tiles
  ?                    - Toggle help
  Q/Esc/Ctrl+C         - Quit

Keys and colours can be changed in the config file.

Examples:
  t2048 play
  t2048 play --renderer tiles
  t2048 play --seed 42 --log-file /tmp/t2048.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRenderer, "renderer", "", "Terminal renderer (overrides config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	rendererID := cfg.Renderer
	if flagRenderer != "" {
		rendererID = flagRenderer
	}

	// Check if renderer exists
	if !registry.Exists(rendererID) {
		fmt.Fprintf(os.Stderr, "Error: unknown renderer %q\n", rendererID)
		fmt.Fprintln(os.Stderr, "Run 't2048 renderers' to see available renderers.")
		os.Exit(1)
	}

	renderer, err := registry.Create(rendererID, cfg.Theme)
	exitOnError("creating renderer", err)

	// The TUI owns the terminal, so logs are dropped unless --log-file is set
	logger, closeLog, err := newLogger(io.Discard)
	exitOnError("setting up logging", err)
	defer closeLog()

	// Get terminal size for the first frame
	rc := core.DefaultConfig()
	rc.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	engine := t2048.New(t2048.WithSeed(rc.Seed))
	logger.Info("starting terminal game", "renderer", rendererID, "config", cfg.Source, "seed", rc.Seed)

	if err := tui.Run(engine, renderer, cfg.Keys, logger, rc); err != nil {
		closeLog()
		exitOnError("running game", err)
	}
}
