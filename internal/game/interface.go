package game

import (
	"context"

	"github.com/lox/fairmoves/internal/moves"
)

// Output receives everything a round displays. Implementations must never be
// handed the key or the computer's move before Result.
type Output interface {
	Matrix(m *moves.Matrix)
	Commitment(roundID, digest string)
	Menu(set moves.MoveSet)
	InvalidSelection(raw string)
	Result(r RoundResult)
	Error(err error)
}

// Input obtains the human's menu choice. A rejected choice is reported through
// Selection; a returned error ends the round.
type Input interface {
	Select(ctx context.Context, set moves.MoveSet) (Selection, error)
}
