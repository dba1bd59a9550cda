package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/fairmoves/internal/commit"
	"github.com/lox/fairmoves/internal/game"
	"github.com/lox/fairmoves/internal/moves"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rps(t *testing.T) moves.MoveSet {
	t.Helper()
	set, err := moves.NewSet([]string{"rock", "paper", "scissors"})
	require.NoError(t, err)
	return set
}

func TestReaderSelect(t *testing.T) {
	var out bytes.Buffer
	r := NewReader(strings.NewReader("0\nabc\n7\n2\n"), &out)
	set := rps(t)

	var got []game.Selection
	for i := 0; i < 4; i++ {
		sel, err := r.Select(context.Background(), set)
		require.NoError(t, err)
		got = append(got, sel)
	}

	assert.False(t, got[0].Valid)
	assert.False(t, got[1].Valid)
	assert.False(t, got[2].Valid)
	assert.True(t, got[3].Valid)
	assert.Equal(t, 1, got[3].Index)
	assert.Equal(t, 4, strings.Count(out.String(), Prompt))

	_, err := r.Select(context.Background(), set)
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}

func TestWriterPlain(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out, false)
	set := rps(t)

	w.Matrix(moves.Build(set))
	w.Commitment("01h5n0et5q6mt3v7ms1234abcd", "deadbeef")
	w.Menu(set)
	w.InvalidSelection("abc\n")
	w.Result(game.RoundResult{HumanMove: "rock", ComputerMove: "paper", Outcome: moves.Win, Key: "00ff"})

	want := "\trock\tpaper\tscissors\n" +
		"rock\tDraw\tWin\tLose\n" +
		"paper\tLose\tDraw\tWin\n" +
		"scissors\tWin\tLose\tDraw\n" +
		"Round: 01h5n0et5q6mt3v7ms1234abcd\n" +
		"HMAC: deadbeef\n" +
		"Available moves:\n" +
		"1 - rock\n" +
		"2 - paper\n" +
		"3 - scissors\n" +
		"Invalid choice \"abc\". Please enter a number from the menu.\n" +
		"Your move: rock\n" +
		"Computer move: paper\n" +
		"You win!\n" +
		"HMAC key: 00ff\n"
	assert.Equal(t, want, out.String())
}

func TestWriterOutcomeLines(t *testing.T) {
	w := NewWriter(io.Discard, false)
	assert.Equal(t, "You win!", w.outcomeLine(moves.Win))
	assert.Equal(t, "You lose!", w.outcomeLine(moves.Lose))
	assert.Equal(t, "Draw", w.outcomeLine(moves.Draw))
}

func TestWriterInvalidMoveSetShowsUsage(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out, false)

	_, err := moves.NewSet([]string{"rock", "paper"})
	require.Error(t, err)
	w.Error(err)

	assert.Contains(t, out.String(), "Error: invalid move set")
	assert.Contains(t, out.String(), Usage)
	assert.Contains(t, out.String(), "fairmoves play -- <move>...")

	out.Reset()
	w.Error(commit.ErrEntropyUnavailable)
	assert.NotContains(t, out.String(), "Usage")
}

func TestColorEnabled(t *testing.T) {
	assert.False(t, ColorEnabled(&bytes.Buffer{}, true))
	// A buffer is not a terminal.
	assert.False(t, ColorEnabled(&bytes.Buffer{}, false))
}

func TestFullRoundOverConsole(t *testing.T) {
	var out bytes.Buffer
	g := game.New(game.Config{
		Engine: commit.NewEngine(nil),
		Input:  NewReader(strings.NewReader("x\n3\n"), &out),
		Output: NewWriter(&out, false),
		Logger: log.NewWithOptions(io.Discard, log.Options{}),
	})

	result, err := g.Play(context.Background(), []string{"rock", "paper", "scissors"})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "HMAC: "+result.Digest)
	assert.Contains(t, text, "HMAC key: "+result.Key)
	assert.Contains(t, text, "Your move: scissors")
	assert.Less(t, strings.Index(text, "HMAC: "), strings.Index(text, "Your move:"),
		"digest must be shown before the human moves")
	assert.NotContains(t, text[:strings.Index(text, "Your move:")], result.Key,
		"key must not be shown before the reveal")

	ok, err := commit.Verify(result.Key, result.ComputerMove, result.Digest)
	require.NoError(t, err)
	assert.True(t, ok)
}
