package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/lox/fairmoves/internal/moves"
)

// TableCmd prints the outcome table without playing.
type TableCmd struct {
	Moves  []string `arg:"" optional:"" name:"move" help:"Moves in order"`
	Preset string   `short:"p" help:"Use a named move list (builtin: rps, rpsls)"`
	Beats  bool     `help:"Also list which moves each move beats"`
}

func (c *TableCmd) Run(g *Globals) error {
	s, err := g.setup()
	if err != nil {
		return err
	}

	labels, err := resolveMoves(c.Moves, c.Preset, s.cfg)
	if err != nil {
		return err
	}

	set, err := moves.NewSet(labels)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return exitCode(1)
	}
	matrix := moves.Build(set)

	fmt.Print(matrix.Render(s.color))
	if c.Beats {
		fmt.Println()
		for i, label := range set.Labels() {
			fmt.Printf("%s beats %s\n", label, strings.Join(matrix.Beats(i), ", "))
		}
	}
	return nil
}
