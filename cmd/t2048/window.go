package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/desktop"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play 2048 in a desktop window",
	Long: `Open a desktop window with the game.

Controls:
  Click/Enter    - Start or restart
  Arrow keys     - Move tiles
  Esc/Q          - Quit

Window size and colours can be changed in the config file.`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	logger, closeLog, err := newLogger(os.Stderr)
	exitOnError("setting up logging", err)
	defer closeLog()

	engine := t2048.New(t2048.WithSeed(flagSeed))
	logger.Info("opening window", "width", cfg.Window.Width, "height", cfg.Window.Height, "config", cfg.Source, "seed", flagSeed)

	if err := desktop.Run(engine, cfg, logger); err != nil {
		closeLog()
		exitOnError("running window", err)
	}
	logger.Info("window closed", "score", engine.Score(), "state", engine.State())
}
