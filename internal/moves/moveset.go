// Package moves builds the win/lose/draw table for an ordered, odd-sized set
// of move labels.
//
// The order of the labels is part of the game: each move beats the (N-1)/2
// moves that follow it cyclically and loses to the rest. Passing the same
// labels in a different order produces a different game.
package moves

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// MinMoves is the smallest playable move set.
const MinMoves = 3

// ErrInvalidMoveSet is returned when a move list cannot form a game.
var ErrInvalidMoveSet = errors.New("invalid move set")

// MoveSet is an ordered, immutable list of unique move labels.
type MoveSet struct {
	labels []string
	index  map[string]int
}

// NewSet validates labels and returns a MoveSet holding a copy of them.
func NewSet(labels []string) (MoveSet, error) {
	if err := Validate(labels); err != nil {
		return MoveSet{}, err
	}

	set := MoveSet{
		labels: make([]string, len(labels)),
		index:  make(map[string]int, len(labels)),
	}
	copy(set.labels, labels)
	for i, label := range set.labels {
		set.index[label] = i
	}
	return set, nil
}

// Validate reports whether labels form a playable move set: an odd count of
// at least three, no duplicates, and no empty or whitespace-bearing labels.
func Validate(labels []string) error {
	n := len(labels)
	switch {
	case n < MinMoves:
		return fmt.Errorf("%w: need at least %d moves, got %d", ErrInvalidMoveSet, MinMoves, n)
	case n%2 == 0:
		return fmt.Errorf("%w: need an odd number of moves, got %d", ErrInvalidMoveSet, n)
	}

	seen := make(map[string]int, n)
	for i, label := range labels {
		if label == "" {
			return fmt.Errorf("%w: move %d is empty", ErrInvalidMoveSet, i+1)
		}
		if strings.IndexFunc(label, unicode.IsSpace) >= 0 {
			return fmt.Errorf("%w: move %q contains whitespace", ErrInvalidMoveSet, label)
		}
		if first, dup := seen[label]; dup {
			return fmt.Errorf("%w: %q appears at positions %d and %d", ErrInvalidMoveSet, label, first+1, i+1)
		}
		seen[label] = i
	}
	return nil
}

// Len returns the number of moves.
func (s MoveSet) Len() int { return len(s.labels) }

// Label returns the move at position i.
func (s MoveSet) Label(i int) string { return s.labels[i] }

// Labels returns a copy of the moves in their original order.
func (s MoveSet) Labels() []string {
	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out
}

// Index returns the position of label, if present.
func (s MoveSet) Index(label string) (int, bool) {
	i, ok := s.index[label]
	return i, ok
}

func (s MoveSet) String() string {
	return strings.Join(s.labels, " ")
}
