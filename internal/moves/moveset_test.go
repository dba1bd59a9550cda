package moves

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		labels  []string
		wantErr string
	}{
		{name: "three moves", labels: []string{"rock", "paper", "scissors"}},
		{name: "five moves", labels: []string{"rock", "spock", "paper", "lizard", "scissors"}},
		{name: "case sensitive labels are distinct", labels: []string{"Rock", "rock", "ROCK"}},
		{name: "no moves", labels: nil, wantErr: "at least 3"},
		{name: "single move", labels: []string{"rock"}, wantErr: "at least 3"},
		{name: "two moves", labels: []string{"rock", "paper"}, wantErr: "at least 3"},
		{name: "even count", labels: []string{"a", "b", "c", "d"}, wantErr: "odd number"},
		{name: "duplicate", labels: []string{"rock", "rock", "paper"}, wantErr: `"rock" appears at positions 1 and 2`},
		{name: "empty label", labels: []string{"rock", "", "paper"}, wantErr: "move 2 is empty"},
		{name: "whitespace", labels: []string{"rock", "pa per", "scissors"}, wantErr: "whitespace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.labels)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidMoveSet))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewSetCopiesInput(t *testing.T) {
	labels := []string{"rock", "paper", "scissors"}
	set, err := NewSet(labels)
	require.NoError(t, err)

	labels[0] = "well"
	assert.Equal(t, "rock", set.Label(0))

	out := set.Labels()
	out[1] = "well"
	assert.Equal(t, "paper", set.Label(1))

	i, ok := set.Index("scissors")
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	_, ok = set.Index("well")
	assert.False(t, ok)

	assert.Equal(t, 3, set.Len())
	assert.Equal(t, "rock paper scissors", set.String())
}

func TestNewSetRejectsInvalid(t *testing.T) {
	_, err := NewSet([]string{"rock", "rock", "paper"})
	assert.ErrorIs(t, err, ErrInvalidMoveSet)
}
