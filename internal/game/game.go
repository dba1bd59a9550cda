package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/fairmoves/internal/commit"
	"github.com/lox/fairmoves/internal/gameid"
	"github.com/lox/fairmoves/internal/moves"
)

// RoundResult is everything known once a round is resolved.
type RoundResult struct {
	ID           string
	HumanMove    string
	ComputerMove string
	Outcome      moves.Outcome // from the human's point of view
	Key          string        // hex encoded HMAC key
	Digest       string
	StartedAt    time.Time
	FinishedAt   time.Time
}

// Config wires a Game to its collaborators.
type Config struct {
	Engine *commit.Engine
	Input  Input
	Output Output
	Logger *log.Logger
	Clock  quartz.Clock
	IDs    *gameid.Generator
}

// Game runs rounds. It is not safe for concurrent use; run one Game per
// goroutine.
type Game struct {
	engine *commit.Engine
	input  Input
	output Output
	logger *log.Logger
	clock  quartz.Clock
	ids    *gameid.Generator
	state  State
}

// New creates a Game. Input and Output are required; a nil Engine draws
// from crypto/rand.
func New(cfg Config) *Game {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	clock := cfg.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	ids := cfg.IDs
	if ids == nil {
		ids = gameid.NewGenerator(clock, nil)
	}
	engine := cfg.Engine
	if engine == nil {
		engine = commit.NewEngine(nil)
	}

	return &Game{
		engine: engine,
		input:  cfg.Input,
		output: cfg.Output,
		logger: logger.WithPrefix("game"),
		clock:  clock,
		ids:    ids,
		state:  AwaitingInput,
	}
}

// State returns where the most recent round stopped.
func (g *Game) State() State { return g.state }

func (g *Game) transition(to State, keyvals ...any) {
	g.logger.Debug("State transition", append([]any{"from", g.state, "to", to}, keyvals...)...)
	g.state = to
}

// Play validates labels, commits to a computer move, asks the human for a
// move and resolves the round. Invalid labels are reported before any key
// material is generated.
func (g *Game) Play(ctx context.Context, labels []string) (*RoundResult, error) {
	g.state = AwaitingInput

	set, err := moves.NewSet(labels)
	if err != nil {
		g.logger.Debug("Rejected move set", "error", err)
		g.output.Error(err)
		return nil, err
	}
	matrix := moves.Build(set)
	g.output.Matrix(matrix)

	return g.PlayMatrix(ctx, matrix)
}

// PlayMatrix plays one round over an already built matrix. It lets callers
// playing many rounds on the same moves skip validation and display.
func (g *Game) PlayMatrix(ctx context.Context, matrix *moves.Matrix) (*RoundResult, error) {
	set := matrix.Set()
	started := g.clock.Now()

	id, err := g.ids.Generate()
	if err != nil {
		return nil, fmt.Errorf("creating round id: %w", err)
	}

	g.transition(Committed, "round", id)
	c, err := g.engine.Commit(set)
	if err != nil {
		g.logger.Error("Commitment failed", "round", id, "error", err)
		g.output.Error(err)
		return nil, err
	}
	g.output.Commitment(id, c.Digest())

	g.transition(AwaitingHumanMove, "round", id)
	human, err := g.awaitHumanMove(ctx, set)
	if err != nil {
		g.logger.Warn("Round abandoned", "round", id, "error", err)
		return nil, err
	}

	reveal := c.Reveal()
	outcome := matrix.Outcome(human, mustIndex(set, reveal.Move))
	result := &RoundResult{
		ID:           id,
		HumanMove:    set.Label(human),
		ComputerMove: reveal.Move,
		Outcome:      outcome,
		Key:          reveal.Key,
		Digest:       c.Digest(),
		StartedAt:    started,
		FinishedAt:   g.clock.Now(),
	}
	g.transition(Resolved, "round", id, "outcome", outcome)
	g.logger.Info("Round resolved",
		"round", id,
		"human", result.HumanMove,
		"computer", result.ComputerMove,
		"outcome", outcome,
		"duration", result.FinishedAt.Sub(started))

	g.output.Result(*result)
	return result, nil
}

func (g *Game) awaitHumanMove(ctx context.Context, set moves.MoveSet) (int, error) {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		g.output.Menu(set)
		sel, err := g.input.Select(ctx, set)
		if err != nil {
			return 0, fmt.Errorf("reading selection: %w", err)
		}
		if sel.Valid {
			g.logger.Debug("Selection accepted", "attempt", attempt)
			return sel.Index, nil
		}

		g.logger.Debug("Selection rejected", "attempt", attempt, "raw", sel.Raw)
		g.output.InvalidSelection(sel.Raw)
	}
}

func mustIndex(set moves.MoveSet, label string) int {
	i, ok := set.Index(label)
	if !ok {
		panic(fmt.Sprintf("committed move %q missing from move set", label))
	}
	return i
}

// IsInvalidMoveSet reports whether err came from move list validation.
func IsInvalidMoveSet(err error) bool {
	return errors.Is(err, moves.ErrInvalidMoveSet)
}
