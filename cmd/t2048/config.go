package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var flagDefaultConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration as YAML after applying the search order:
--config path, ~/.t2048/config.yaml, ./configs/t2048.yaml, built-in defaults.

Examples:
  t2048 config
  t2048 config --default > ~/.t2048/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaultConfig, "default", false, "Print the built-in default file instead")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaultConfig {
		os.Stdout.Write(config.DefaultYAML()) //nolint:errcheck // stdout
		return
	}

	cfg := loadConfig()
	data, err := cfg.Marshal()
	exitOnError("encoding config", err)

	fmt.Printf("# source: %s\n", cfg.Source)
	os.Stdout.Write(data) //nolint:errcheck // stdout
}
