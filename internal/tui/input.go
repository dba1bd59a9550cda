package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/lox/fairmoves/internal/game"
	"github.com/lox/fairmoves/internal/moves"
)

// ErrAborted is returned when the user leaves the prompt without choosing.
var ErrAborted = errors.New("selection aborted")

// Input runs one bubbletea program per prompt.
type Input struct {
	logger   *log.Logger
	opts     []tea.ProgramOption
	previous string
}

var _ game.Input = (*Input)(nil)

// NewInput returns a game.Input backed by the terminal UI.
func NewInput(logger *log.Logger, opts ...tea.ProgramOption) *Input {
	return &Input{logger: logger.WithPrefix("tui"), opts: opts}
}

func (in *Input) Select(ctx context.Context, set moves.MoveSet) (game.Selection, error) {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, in.opts...)
	final, err := tea.NewProgram(NewModel(set, in.previous), opts...).Run()
	if err != nil {
		return game.Selection{}, fmt.Errorf("running prompt: %w", err)
	}
	return in.finish(final)
}

func (in *Input) finish(final tea.Model) (game.Selection, error) {
	m, ok := final.(Model)
	if !ok {
		return game.Selection{}, fmt.Errorf("unexpected model %T", final)
	}
	if m.Aborted() {
		return game.Selection{}, ErrAborted
	}

	sel, submitted := m.Selection()
	if !submitted {
		return game.Selection{}, ErrAborted
	}
	if sel.Valid {
		in.previous = ""
	} else {
		in.previous = sel.Raw
		in.logger.Debug("Rejected entry", "raw", sel.Raw)
	}
	return sel, nil
}

// Output wraps inner so the menu and rejection messages, which the prompt
// draws itself, are not printed twice.
func Output(inner game.Output) game.Output {
	return promptOutput{inner}
}

type promptOutput struct {
	game.Output
}

func (promptOutput) Menu(moves.MoveSet)      {}
func (promptOutput) InvalidSelection(string) {}
