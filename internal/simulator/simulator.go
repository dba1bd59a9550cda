// Package simulator plays many headless rounds against the real game engine
// and checks every commitment it publishes.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/fairmoves/internal/commit"
	"github.com/lox/fairmoves/internal/game"
	"github.com/lox/fairmoves/internal/moves"
	"github.com/lox/fairmoves/internal/randutil"
	"github.com/lox/fairmoves/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// ErrCommitmentMismatch is returned when a revealed key and move do not
// reproduce the digest shown before the human moved.
var ErrCommitmentMismatch = errors.New("revealed move does not match commitment")

// Config holds configuration for a simulation run.
type Config struct {
	Labels  []string
	Rounds  int
	Workers int
	Seed    int64         // seeds the simulated human's choices only
	Source  commit.Source // computer's randomness; nil uses crypto/rand
	Clock   quartz.Clock
	Logger  *log.Logger
}

// Simulator runs rounds across a pool of workers.
type Simulator struct {
	config Config
	logger *log.Logger
}

// New creates a simulator with the given configuration.
func New(config Config) *Simulator {
	logger := config.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if config.Workers <= 0 {
		config.Workers = 1
	}
	return &Simulator{config: config, logger: logger.WithPrefix("simulate")}
}

// Run plays the configured number of rounds and returns the merged tally.
func (s *Simulator) Run(ctx context.Context) (*statistics.Tally, error) {
	set, err := moves.NewSet(s.config.Labels)
	if err != nil {
		return nil, err
	}
	if s.config.Rounds <= 0 {
		return nil, fmt.Errorf("rounds must be positive, got %d", s.config.Rounds)
	}
	matrix := moves.Build(set)

	workers := min(s.config.Workers, s.config.Rounds)
	tallies := make([]*statistics.Tally, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		rounds := s.config.Rounds / workers
		if w < s.config.Rounds%workers {
			rounds++
		}
		g.Go(func() error {
			tally, err := s.runWorker(ctx, w, rounds, matrix)
			tallies[w] = tally
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := statistics.NewTally(set.Len())
	for _, t := range tallies {
		if err := total.Merge(t); err != nil {
			return nil, err
		}
	}
	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.logger.Info("Simulation complete",
		"rounds", total.Rounds,
		"workers", workers,
		"win_rate", total.Rate(moves.Win),
		"chi_square", total.ChiSquare())
	return total, nil
}

func (s *Simulator) runWorker(ctx context.Context, worker, rounds int, matrix *moves.Matrix) (*statistics.Tally, error) {
	set := matrix.Set()
	tally := statistics.NewTally(set.Len())
	out := &recorder{}

	g := game.New(game.Config{
		Engine: commit.NewEngine(s.config.Source),
		Input:  &randomPlayer{rng: randutil.Stream(s.config.Seed, worker)},
		Output: out,
		Logger: s.logger.With("worker", strconv.Itoa(worker)),
		Clock:  s.config.Clock,
	})

	for i := 0; i < rounds; i++ {
		result, err := g.PlayMatrix(ctx, matrix)
		if err != nil {
			return tally, fmt.Errorf("worker %d round %d: %w", worker, i+1, err)
		}

		ok, err := commit.Verify(result.Key, result.ComputerMove, out.digest)
		if err != nil {
			return tally, fmt.Errorf("round %s: %w", result.ID, err)
		}
		if !ok {
			return tally, fmt.Errorf("round %s: %w", result.ID, ErrCommitmentMismatch)
		}

		human, _ := set.Index(result.HumanMove)
		computer, _ := set.Index(result.ComputerMove)
		tally.Add(statistics.RoundResult{
			Human:    human,
			Computer: computer,
			Outcome:  result.Outcome,
			Verified: ok,
		})
	}
	return tally, nil
}

// randomPlayer is a simulated human picking uniformly from the menu.
type randomPlayer struct {
	rng *rand.Rand
}

func (p *randomPlayer) Select(_ context.Context, set moves.MoveSet) (game.Selection, error) {
	return game.ParseSelection(strconv.Itoa(p.rng.IntN(set.Len())+1), set.Len()), nil
}

// recorder keeps the digest that was displayed before the human moved.
type recorder struct {
	digest string
}

func (r *recorder) Matrix(*moves.Matrix)              {}
func (r *recorder) Commitment(_ string, digest string) { r.digest = digest }
func (r *recorder) Menu(moves.MoveSet)                {}
func (r *recorder) InvalidSelection(string)           {}
func (r *recorder) Result(game.RoundResult)           {}
func (r *recorder) Error(error)                       {}
