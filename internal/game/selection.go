package game

import (
	"strconv"
	"strings"
)

// Selection is the parsed result of one menu prompt.
type Selection struct {
	Index int    // zero-based move index, set when Valid
	Raw   string // the text the human entered
	Valid bool
}

// ParseSelection interprets raw as a 1-based menu choice among n moves.
// Anything that is not an integer in 1..n is invalid.
func ParseSelection(raw string, n int) Selection {
	sel := Selection{Raw: raw}

	choice, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || choice < 1 || choice > n {
		return sel
	}

	sel.Index = choice - 1
	sel.Valid = true
	return sel
}
