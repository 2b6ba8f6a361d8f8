package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	userDir   = ".t2048"
	userFile  = "config.yaml"
	localPath = "configs/t2048.yaml"
)

// Load loads the presentation configuration.
// Search order: customPath -> ~/.t2048/config.yaml -> ./configs/t2048.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it sets.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data, customPath)
		if err != nil {
			return Config{}, err
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory.
	// Unreadable or invalid files here are skipped.
	for _, path := range []string{userConfigPath(), localPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data, path); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML, "embedded")
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data over the defaults and validates the result.
func parse(data []byte, source string) (Config, error) {
	cfg := Default()
	cfg.Theme.Tiles = nil // replaced wholesale when the file sets tiles

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", source, err)
	}
	if cfg.Theme.Tiles == nil {
		cfg.Theme.Tiles = Default().Theme.Tiles
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", source, err)
	}

	cfg.Source = source
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, userDir, userFile)
}
