package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/fairmoves/cmd/fairmoves/shared"
	"github.com/lox/fairmoves/internal/commit"
	"github.com/lox/fairmoves/internal/moves"
	"github.com/lox/fairmoves/internal/simulator"
	"github.com/lox/fairmoves/internal/statistics"
)

var (
	reportTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FAFAFA")).
				Background(lipgloss.Color("#7D56F4")).
				Padding(0, 1).
				Bold(true)
	reportKeyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

// SimulateCmd plays automated rounds and reports outcome and move
// frequencies.
type SimulateCmd struct {
	Moves   []string `arg:"" optional:"" name:"move" help:"Moves in order"`
	Preset  string   `short:"p" help:"Use a named move list (builtin: rps, rpsls)"`
	Rounds  int      `short:"n" default:"10000" help:"Number of rounds to play"`
	Workers int      `short:"w" default:"0" help:"Parallel workers (0 = number of CPUs)"`
	Seed    int64    `default:"0" help:"Seed for the simulated human's choices (0 = time based)"`
}

func (c *SimulateCmd) Run(g *Globals) error {
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

	workers := c.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := shared.SetupSignalHandlerWithLogger(s.logger)
	defer stop()

	start := time.Now()
	tally, err := simulator.New(simulator.Config{
		Labels:  labels,
		Rounds:  c.Rounds,
		Workers: workers,
		Seed:    seed,
		Source:  commit.CryptoSource{},
		Logger:  s.logger,
	}).Run(ctx)
	if err != nil {
		return err
	}

	writeReport(os.Stdout, set, tally, seed, time.Since(start))
	return nil
}

func writeReport(w io.Writer, set moves.MoveSet, t *statistics.Tally, seed int64, elapsed time.Duration) {
	row := func(k, v string) {
		fmt.Fprintf(w, "%s %s\n", reportKeyStyle.Render(fmt.Sprintf("%-18s", k)), v)
	}

	fmt.Fprintln(w, reportTitleStyle.Render("Simulation"))
	row("Moves", set.String())
	row("Rounds", fmt.Sprintf("%d in %s", t.Rounds, elapsed.Round(time.Millisecond)))
	row("Human seed", fmt.Sprintf("%d", seed))
	row("Verified", fmt.Sprintf("%d/%d commitments", t.Verified, t.Rounds))
	row("Human wins", fmt.Sprintf("%d (%.2f%%)", t.Wins, 100*t.Rate(moves.Win)))
	row("Human losses", fmt.Sprintf("%d (%.2f%%)", t.Losses, 100*t.Rate(moves.Lose)))
	row("Draws", fmt.Sprintf("%d (%.2f%%)", t.Draws, 100*t.Rate(moves.Draw)))
	lo, hi := t.ConfidenceInterval95()
	row("Mean score", fmt.Sprintf("%+.4f (95%% CI %+.4f .. %+.4f)", t.Mean(), lo, hi))
	row("Chi-square", fmt.Sprintf("%.3f (%d degrees of freedom)", t.ChiSquare(), set.Len()-1))

	fmt.Fprintln(w)
	fmt.Fprintln(w, reportTitleStyle.Render("Computer move frequency"))
	for i, label := range set.Labels() {
		share := 0.0
		if t.Rounds > 0 {
			share = 100 * float64(t.ComputerMoves[i]) / float64(t.Rounds)
		}
		row(label, fmt.Sprintf("%d (%.2f%%)", t.ComputerMoves[i], share))
	}
}
