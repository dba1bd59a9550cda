package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lox/fairmoves/internal/commit"
	"github.com/lox/fairmoves/internal/console"
	"github.com/lox/fairmoves/internal/game"
	"github.com/lox/fairmoves/internal/tui"
)

// PlayCmd plays a single round.
type PlayCmd struct {
	Moves  []string `arg:"" optional:"" name:"move" help:"Moves in order; each beats the next half of the list, wrapping around. Put -- before moves that start with - or share a command name"`
	Preset string   `short:"p" help:"Use a named move list (builtin: rps, rpsls)"`
	TUI    bool     `name:"tui" help:"Choose your move with the interactive terminal UI"`
}

func (c *PlayCmd) Run(g *Globals) error {
	s, err := g.setup()
	if err != nil {
		return err
	}

	labels, err := resolveMoves(c.Moves, c.Preset, s.cfg)
	if err != nil {
		return err
	}

	writer := console.NewWriter(os.Stdout, s.color)
	var (
		input  game.Input  = console.NewReader(os.Stdin, os.Stdout)
		output game.Output = writer
	)
	if c.TUI || s.cfg.TUI {
		input = tui.NewInput(s.logger)
		output = tui.Output(writer)
	}

	round := game.New(game.Config{
		Engine: commit.NewEngine(commit.CryptoSource{}),
		Input:  input,
		Output: output,
		Logger: s.logger,
	})

	// No signal handler here: a blocking stdin read cannot observe
	// cancellation, so Ctrl+C keeps its default behaviour.
	_, err = round.Play(context.Background(), labels)
	return playExit(err)
}

// playExit maps round errors that have already been shown to the user onto
// a plain exit status.
func playExit(err error) error {
	switch {
	case err == nil:
		return nil
	case game.IsInvalidMoveSet(err), errors.Is(err, commit.ErrEntropyUnavailable):
		return exitCode(1)
	case errors.Is(err, tui.ErrAborted), errors.Is(err, io.ErrUnexpectedEOF):
		fmt.Fprintln(os.Stderr, "Game abandoned before a move was chosen.")
		return exitCode(1)
	default:
		return err
	}
}
