// Package config loads the CLI/REPL's YAML settings file, grounded in
// the teacher's own config layer.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the user-facing knobs for the CLI and REPL.
type Config struct {
	// Prompt is the REPL's input prompt string.
	Prompt string `yaml:"prompt"`
	// Color enables ANSI-colored diagnostics and REPL output.
	Color bool `yaml:"color"`
	// HistoryFile is where the REPL persists its line-editing history,
	// empty disables history persistence.
	HistoryFile string `yaml:"history_file"`
	// ShowTypes is passed to the REPL, which stores it; the REPL does not
	// print inferred types alongside values.
	ShowTypes bool `yaml:"show_types"`
}

// Default returns the out-of-the-box configuration.
func Default() Config {
	return Config{
		Prompt:      "minihs> ",
		Color:       true,
		HistoryFile: "",
		ShowTypes:   false,
	}
}

// Load reads and parses a YAML config file at path, starting from
// Default() so a partial file only overrides what it mentions.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
