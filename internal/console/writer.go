// Package console is the line-oriented terminal front end: it prints the
// outcome table, the commitment and the result, and reads menu choices from
// standard input.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/fairmoves/internal/game"
	"github.com/lox/fairmoves/internal/moves"
	"github.com/muesli/termenv"
)

// Writer displays a round on w.
type Writer struct {
	w      io.Writer
	styled bool
}

var _ game.Output = (*Writer)(nil)

// NewWriter returns a Writer. With styled unset no escape sequences are
// written and the table is tab-separated.
func NewWriter(w io.Writer, styled bool) *Writer {
	return &Writer{w: w, styled: styled}
}

// ColorEnabled reports whether w is a terminal that supports colour and the
// user has not turned colour off.
func ColorEnabled(w io.Writer, disabled bool) bool {
	if disabled {
		return false
	}
	return termenv.NewOutput(w).EnvColorProfile() != termenv.Ascii
}

func (c *Writer) render(style lipgloss.Style, s string) string {
	if !c.styled {
		return s
	}
	return style.Render(s)
}

func (c *Writer) println(s string) {
	fmt.Fprintln(c.w, s)
}

func (c *Writer) Matrix(m *moves.Matrix) {
	if c.styled {
		c.println(titleStyle.Render("Outcomes (row vs column)"))
	}
	fmt.Fprint(c.w, m.Render(c.styled))
}

func (c *Writer) Commitment(roundID, digest string) {
	c.println(c.render(infoStyle, "Round: "+roundID))
	c.println("HMAC: " + c.render(digestStyle, digest))
}

func (c *Writer) Menu(set moves.MoveSet) {
	c.println("Available moves:")
	for i, label := range set.Labels() {
		c.println(c.render(menuStyle, fmt.Sprintf("%d - %s", i+1, label)))
	}
}

func (c *Writer) InvalidSelection(raw string) {
	c.println(c.render(errorStyle, fmt.Sprintf("Invalid choice %q. Please enter a number from the menu.", strings.TrimSpace(raw))))
}

func (c *Writer) Result(r game.RoundResult) {
	c.println("Your move: " + r.HumanMove)
	c.println("Computer move: " + r.ComputerMove)
	c.println(c.outcomeLine(r.Outcome))
	c.println("HMAC key: " + c.render(digestStyle, r.Key))
}

func (c *Writer) outcomeLine(o moves.Outcome) string {
	switch o {
	case moves.Win:
		return c.render(winStyle, "You win!")
	case moves.Lose:
		return c.render(loseStyle, "You lose!")
	default:
		return c.render(drawStyle, "Draw")
	}
}

func (c *Writer) Error(err error) {
	c.println(c.render(errorStyle, "Error: "+err.Error()))
	if game.IsInvalidMoveSet(err) {
		c.println(Usage)
	}
}

// Usage explains how to start a game.
const Usage = "Usage: fairmoves <move> <move> <move> [<move> <move>...]\n" +
	"Provide an odd number (3 or more) of unique moves, e.g. fairmoves rock paper scissors\n" +
	"Use fairmoves play -- <move>... when a move starts with '-' or is named play, table, verify or simulate"
