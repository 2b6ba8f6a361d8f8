// t2048 plays 2048 in the terminal or in a desktop window.
//
// Usage:
//
//	t2048 play               - Play in the terminal
//	t2048 window             - Play in a desktop window
//	t2048 renderers          - List terminal renderers
//	t2048 config             - Print the effective configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible spawns
//	--config <path>      - Use a specific config file
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"

	// Import renderers to register them
	_ "github.com/vovakirdan/tui-2048/internal/render"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile game with a terminal and a desktop front-end.

Available commands:
  play       - Play in the terminal
  window     - Play in a desktop window
  renderers  - Show available terminal renderers
  config     - Print the effective configuration

Examples:
  t2048 play
  t2048 play --renderer tiles
  t2048 window
  t2048 config > ~/.t2048/config.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(renderersCmd)
	rootCmd.AddCommand(configCmd)
}

// exitOnError prints err and exits.
func exitOnError(context string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", context, err)
	os.Exit(1)
}

// loadConfig loads the presentation config from the --config search path.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	exitOnError("loading config", err)
	return cfg
}

// newLogger creates the logger for a front-end.
// Logs go to --log-file when set and to fallback otherwise.
// The returned function closes the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           level,
	})
	return logger, closeFn, nil
}
