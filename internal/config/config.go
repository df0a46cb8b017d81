// Package config loads the REPL's on-disk configuration. A missing
// file is not an error — Default's values apply — but malformed YAML
// is a fatal startup condition the caller reports and exits on.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Config governs the REPL's prompt, styling, and history persistence.
type Config struct {
	Prompt      string `yaml:"prompt"`
	Color       bool   `yaml:"color"`
	HistoryFile string `yaml:"history_file"`
}

const defaultFileName = ".monkeyrc.yaml"

// Default returns the configuration used when no config file is
// present.
func Default() Config {
	return Config{
		Prompt:      ">> ",
		Color:       true,
		HistoryFile: defaultHistoryPath(),
	}
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".monkey_history"
	}
	return filepath.Join(home, ".monkey_history")
}

// Load reads path (or, if empty, ~/.monkeyrc.yaml) and overlays its
// fields onto Default. A missing file yields the defaults unchanged.
// A present-but-unparseable file is returned as an error: the caller
// is expected to report it and exit, since there is no sensible
// partial configuration to fall back to once the file is malformed.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, defaultFileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
