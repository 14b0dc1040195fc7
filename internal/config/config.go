// Package config provides the optional TOML configuration file and XDG
// path helpers. Every setting has a working default; the file only
// overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file. Pointer fields
// distinguish "unset" from zero values.
type FileConfig struct {
	Game GameConfig `toml:"game"`
	LLM  LLMConfig  `toml:"llm"`
}

// GameConfig maps gameplay settings.
type GameConfig struct {
	QuestionsPerRound *int    `toml:"questions-per-round"`
	DBPath            *string `toml:"db-path"`
}

// LLMConfig maps memory-aid generation settings.
type LLMConfig struct {
	Provider *string `toml:"provider"`
	Model    *string `toml:"model"`
}

// Load reads a TOML config from the given path. A missing file is not an
// error: all settings fall back to defaults.
func Load(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "leafiz", "config.toml")
}
