// Package statistics aggregates simulated rounds to check that the computer
// plays every move equally often and that no side has an edge.
package statistics

import (
	"fmt"
	"math"

	"github.com/lox/fairmoves/internal/moves"
)

// RoundResult is the part of a round the tally needs.
type RoundResult struct {
	Human    int           // human move index
	Computer int           // computer move index
	Outcome  moves.Outcome // from the human's point of view
	Verified bool          // reveal recomputed to the published digest
}

// Tally counts outcomes and move frequencies for one move set.
type Tally struct {
	Rounds   int
	Wins     int
	Losses   int
	Draws    int
	Verified int

	// Score is the human's net result, +1 per win and -1 per loss.
	Score  int
	Score2 int // sum of squared per-round scores

	ComputerMoves []int // frequency by move index
	HumanMoves    []int
}

// NewTally returns an empty tally for n moves.
func NewTally(n int) *Tally {
	return &Tally{
		ComputerMoves: make([]int, n),
		HumanMoves:    make([]int, n),
	}
}

// Add records one round.
func (t *Tally) Add(r RoundResult) {
	t.Rounds++
	switch r.Outcome {
	case moves.Win:
		t.Wins++
		t.Score++
		t.Score2++
	case moves.Lose:
		t.Losses++
		t.Score--
		t.Score2++
	default:
		t.Draws++
	}
	if r.Verified {
		t.Verified++
	}
	if r.Computer >= 0 && r.Computer < len(t.ComputerMoves) {
		t.ComputerMoves[r.Computer]++
	}
	if r.Human >= 0 && r.Human < len(t.HumanMoves) {
		t.HumanMoves[r.Human]++
	}
}

// Merge folds other into t. Both must cover the same number of moves.
func (t *Tally) Merge(other *Tally) error {
	if len(other.ComputerMoves) != len(t.ComputerMoves) {
		return fmt.Errorf("cannot merge tallies over %d and %d moves", len(t.ComputerMoves), len(other.ComputerMoves))
	}
	t.Rounds += other.Rounds
	t.Wins += other.Wins
	t.Losses += other.Losses
	t.Draws += other.Draws
	t.Verified += other.Verified
	t.Score += other.Score
	t.Score2 += other.Score2
	for i := range t.ComputerMoves {
		t.ComputerMoves[i] += other.ComputerMoves[i]
		t.HumanMoves[i] += other.HumanMoves[i]
	}
	return nil
}

// Rate returns the share of rounds that ended with outcome.
func (t *Tally) Rate(outcome moves.Outcome) float64 {
	if t.Rounds == 0 {
		return 0
	}
	switch outcome {
	case moves.Win:
		return float64(t.Wins) / float64(t.Rounds)
	case moves.Lose:
		return float64(t.Losses) / float64(t.Rounds)
	default:
		return float64(t.Draws) / float64(t.Rounds)
	}
}

// Mean returns the human's average score per round.
func (t *Tally) Mean() float64 {
	if t.Rounds == 0 {
		return 0
	}
	return float64(t.Score) / float64(t.Rounds)
}

// Variance returns the sample variance of per-round scores.
func (t *Tally) Variance() float64 {
	if t.Rounds < 2 {
		return 0
	}
	mean := t.Mean()
	return (float64(t.Score2) - float64(t.Rounds)*mean*mean) / float64(t.Rounds-1)
}

// StdError returns the standard error of the mean score.
func (t *Tally) StdError() float64 {
	if t.Rounds == 0 {
		return 0
	}
	return math.Sqrt(t.Variance()) / math.Sqrt(float64(t.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean score.
func (t *Tally) ConfidenceInterval95() (float64, float64) {
	mean := t.Mean()
	margin := 1.96 * t.StdError()
	return mean - margin, mean + margin
}

// ChiSquare returns Pearson's statistic for the computer's move counts
// against a uniform distribution, with len(ComputerMoves)-1 degrees of freedom.
func (t *Tally) ChiSquare() float64 {
	n := len(t.ComputerMoves)
	if n == 0 || t.Rounds == 0 {
		return 0
	}
	expected := float64(t.Rounds) / float64(n)
	var chi float64
	for _, observed := range t.ComputerMoves {
		d := float64(observed) - expected
		chi += d * d / expected
	}
	return chi
}

// Validate checks that the counters agree with each other.
func (t *Tally) Validate() error {
	if t.Rounds <= 0 {
		return fmt.Errorf("invalid rounds count: %d", t.Rounds)
	}
	if t.Wins+t.Losses+t.Draws != t.Rounds {
		return fmt.Errorf("outcomes (%d+%d+%d) do not add up to %d rounds", t.Wins, t.Losses, t.Draws, t.Rounds)
	}
	if t.Score != t.Wins-t.Losses {
		return fmt.Errorf("score %d does not match wins %d minus losses %d", t.Score, t.Wins, t.Losses)
	}
	if t.Verified > t.Rounds {
		return fmt.Errorf("verified rounds (%d) exceed total rounds (%d)", t.Verified, t.Rounds)
	}
	if sum(t.ComputerMoves) != t.Rounds {
		return fmt.Errorf("computer move total (%d) does not match rounds (%d)", sum(t.ComputerMoves), t.Rounds)
	}
	if sum(t.HumanMoves) != t.Rounds {
		return fmt.Errorf("human move total (%d) does not match rounds (%d)", sum(t.HumanMoves), t.Rounds)
	}
	return nil
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
