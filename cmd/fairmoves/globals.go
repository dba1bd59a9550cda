package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/fairmoves/cmd/fairmoves/shared"
	"github.com/lox/fairmoves/internal/config"
	"github.com/lox/fairmoves/internal/console"
	"github.com/muesli/termenv"
)

// Globals are flags shared by every command.
type Globals struct {
	Config   string `short:"c" default:"${config_path}" help:"Path to HCL configuration file"`
	LogLevel string `name:"log-level" env:"FAIRMOVES_LOG_LEVEL" help:"Log level (debug, info, warn, error); overrides the config file"`
	NoColor  bool   `name:"no-color" help:"Disable coloured output"`
}

// session is what a command needs after flags and config are merged.
type session struct {
	cfg    *config.Config
	logger *log.Logger
	color  bool
}

func (g *Globals) setup() (*session, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if g.LogLevel != "" {
		level = g.LogLevel
	}
	logger, err := shared.SetupLogger(level)
	if err != nil {
		return nil, err
	}

	color := cfg.ColorEnabled() && console.ColorEnabled(os.Stdout, g.NoColor)
	if !color {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	logger.Debug("Configuration loaded", "path", g.Config, "presets", len(cfg.Presets), "color", color)
	return &session{cfg: cfg, logger: logger, color: color}, nil
}

// resolveMoves picks the move list from positional arguments or a preset.
func resolveMoves(args []string, preset string, cfg *config.Config) ([]string, error) {
	if preset == "" {
		return args, nil
	}
	if len(args) > 0 {
		return nil, fmt.Errorf("give either moves or --preset, not both")
	}
	return cfg.Preset(preset)
}
