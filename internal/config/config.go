// Package config loads fairmoves settings from an HCL file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/fairmoves/internal/moves"
)

// DefaultPath is read when no --config flag is given.
const DefaultPath = "fairmoves.hcl"

// Config is the file-level configuration.
type Config struct {
	LogLevel string   `hcl:"log_level,optional"`
	Color    *bool    `hcl:"color,optional"`
	TUI      bool     `hcl:"tui,optional"`
	Presets  []Preset `hcl:"preset,block"`
}

// Preset is a named move list.
type Preset struct {
	Name  string   `hcl:"name,label"`
	Moves []string `hcl:"moves"`
}

// Builtin presets are always available and may be overridden by the file.
// Each move beats the half of the list that follows it, so these orders
// reproduce the classic rules.
var Builtin = []Preset{
	{Name: "rps", Moves: []string{"rock", "scissors", "paper"}},
	{Name: "rpsls", Moves: []string{"rock", "scissors", "lizard", "paper", "spock"}},
}

// Default returns the configuration used without a file.
func Default() *Config {
	return &Config{LogLevel: "warn"}
}

// Load reads path. A missing file yields Default.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = Default().LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the log level and every preset.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}

	seen := make(map[string]bool, len(c.Presets))
	for _, p := range c.Presets {
		if seen[p.Name] {
			return fmt.Errorf("preset %q defined more than once", p.Name)
		}
		seen[p.Name] = true
		if err := moves.Validate(p.Moves); err != nil {
			return fmt.Errorf("preset %q: %w", p.Name, err)
		}
	}
	return nil
}

// ColorEnabled reports the file's colour preference, defaulting to on.
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// Preset returns the moves for name, looking at the file before the builtins.
func (c *Config) Preset(name string) ([]string, error) {
	for _, presets := range [][]Preset{c.Presets, Builtin} {
		for _, p := range presets {
			if p.Name == name {
				out := make([]string, len(p.Moves))
				copy(out, p.Moves)
				return out, nil
			}
		}
	}
	return nil, fmt.Errorf("unknown preset %q", name)
}
