package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/lox/fairmoves/internal/game"
	"github.com/lox/fairmoves/internal/moves"
)

// Prompt is printed before each read.
const Prompt = "Enter your move: "

// Reader reads one menu choice per line.
type Reader struct {
	scanner *bufio.Scanner
	w       io.Writer
}

var _ game.Input = (*Reader)(nil)

// NewReader returns a Reader that prompts on w and reads lines from r.
func NewReader(r io.Reader, w io.Writer) *Reader {
	return &Reader{scanner: bufio.NewScanner(r), w: w}
}

// Select blocks until a full line is available.
func (r *Reader) Select(_ context.Context, set moves.MoveSet) (game.Selection, error) {
	fmt.Fprint(r.w, Prompt)

	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return game.Selection{}, fmt.Errorf("reading input: %w", err)
		}
		fmt.Fprintln(r.w)
		return game.Selection{}, fmt.Errorf("input closed: %w", io.ErrUnexpectedEOF)
	}
	return game.ParseSelection(r.scanner.Text(), set.Len()), nil
}
