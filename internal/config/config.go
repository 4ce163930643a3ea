// Package config loads the optional .autotestid.yaml settings file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the settings file looked up in the working directory and the
// user's home directory, in that order.
const FileName = ".autotestid.yaml"

// Config holds user defaults. Command-line flags take precedence over every
// field here.
type Config struct {
	Strategy      string   `yaml:"strategy"`
	TemplatePaths []string `yaml:"template-paths"`
	LogLevel      string   `yaml:"log-level"`
}

// Load returns the first config file found, or the zero Config when none
// exists. Only a malformed file is an error.
func Load() (Config, error) {
	candidates := []string{FileName}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, FileName))
	}
	for _, path := range candidates {
		cfg, err := LoadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return Config{}, err
		}
		slog.Debug("config loaded", "path", path)
		return cfg, nil
	}
	return Config{}, nil
}

// LoadFile parses a single config file.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
