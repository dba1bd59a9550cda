package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/lox/fairmoves/internal/commit"
	"github.com/lox/fairmoves/internal/config"
	"github.com/lox/fairmoves/internal/moves"
	"github.com/lox/fairmoves/internal/statistics"
	"github.com/lox/fairmoves/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("fairmoves"),
		kong.Vars{"version": "test", "config_path": config.DefaultPath},
		kong.Exit(func(int) { t.Fatalf("unexpected exit") }),
	)
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return &cli, ctx
}

func TestParseDefaultsToPlay(t *testing.T) {
	cli, ctx := parse(t, "rock", "paper", "scissors")

	assert.Contains(t, ctx.Command(), "play")
	assert.Equal(t, []string{"rock", "paper", "scissors"}, cli.Play.Moves)
	assert.Equal(t, config.DefaultPath, cli.Config)
}

func TestParseSubcommands(t *testing.T) {
	cli, ctx := parse(t, "--no-color", "simulate", "-n", "50", "--seed", "9", "a", "b", "c")
	assert.Contains(t, ctx.Command(), "simulate")
	assert.True(t, cli.NoColor)
	assert.Equal(t, 50, cli.Simulate.Rounds)
	assert.Equal(t, int64(9), cli.Simulate.Seed)

	cli, ctx = parse(t, "verify", "--key", "00", "--move", "rock", "--digest", "ff")
	assert.Contains(t, ctx.Command(), "verify")
	assert.Equal(t, "ff", cli.Verify.Digest)

	cli, _ = parse(t, "table", "--preset", "rpsls", "--beats")
	assert.Equal(t, "rpsls", cli.Table.Preset)
	assert.True(t, cli.Table.Beats)
}

func TestParsePlayAfterSeparator(t *testing.T) {
	cli, ctx := parse(t, "play", "--", "table", "-x", "verify")

	assert.Contains(t, ctx.Command(), "play")
	assert.Equal(t, []string{"table", "-x", "verify"}, cli.Play.Moves)
}

func TestResolveMoves(t *testing.T) {
	cfg := config.Default()

	got, err := resolveMoves([]string{"a", "b", "c"}, "", cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)

	got, err = resolveMoves(nil, "rpsls", cfg)
	require.NoError(t, err)
	assert.Len(t, got, 5)

	_, err = resolveMoves([]string{"a"}, "rps", cfg)
	assert.Error(t, err)

	_, err = resolveMoves(nil, "missing", cfg)
	assert.Error(t, err)
}

func TestPlayExit(t *testing.T) {
	assert.NoError(t, playExit(nil))

	_, invalid := moves.NewSet([]string{"a", "b"})
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "invalid move set", err: invalid, want: exitCode(1)},
		{name: "entropy", err: fmt.Errorf("x: %w", commit.ErrEntropyUnavailable), want: exitCode(1)},
		{name: "aborted", err: tui.ErrAborted, want: exitCode(1)},
		{name: "eof", err: fmt.Errorf("input closed: %w", io.ErrUnexpectedEOF), want: exitCode(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, playExit(tt.err))
		})
	}

	other := errors.New("boom")
	assert.Equal(t, other, playExit(other))
}

func TestWriteReport(t *testing.T) {
	set, err := moves.NewSet([]string{"rock", "paper", "scissors"})
	require.NoError(t, err)

	tally := statistics.NewTally(3)
	tally.Add(statistics.RoundResult{Human: 0, Computer: 1, Outcome: moves.Win, Verified: true})
	tally.Add(statistics.RoundResult{Human: 1, Computer: 2, Outcome: moves.Win, Verified: true})

	var buf bytes.Buffer
	writeReport(&buf, set, tally, 42, 1500*time.Millisecond)

	out := buf.String()
	assert.Contains(t, out, "rock paper scissors")
	assert.Contains(t, out, "2/2 commitments")
	assert.Contains(t, out, "2 (100.00%)")
	assert.Contains(t, out, "42")
	assert.Contains(t, out, "(2 degrees of freedom)")
}
