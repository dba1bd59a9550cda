package moves

import (
	"fmt"
	"io"
	"strings"
)

// Outcome is the result of a pairing from the row move's point of view.
type Outcome uint8

const (
	Draw Outcome = iota
	Win
	Lose
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "Win"
	case Lose:
		return "Lose"
	default:
		return "Draw"
	}
}

// Matrix is the full outcome table for a MoveSet. It is never modified after
// Build returns.
type Matrix struct {
	set   MoveSet
	cells [][]Outcome
}

// Build computes the outcome of every ordered pair in set using the cyclic
// half-window rule.
func Build(set MoveSet) *Matrix {
	n := set.Len()
	half := n / 2

	cells := make([][]Outcome, n)
	for p := range cells {
		row := make([]Outcome, n)
		for step := 1; step <= half; step++ {
			row[(p+step)%n] = Win
			row[(p-step+n)%n] = Lose
		}
		cells[p] = row
	}

	return &Matrix{set: set, cells: cells}
}

// Set returns the moves the matrix was built from.
func (m *Matrix) Set() MoveSet { return m.set }

// Outcome returns how the move at row fares against the move at col.
func (m *Matrix) Outcome(row, col int) Outcome {
	return m.cells[row][col]
}

// Resolve looks up the outcome of move a against move b by label.
func (m *Matrix) Resolve(a, b string) (Outcome, error) {
	row, ok := m.set.Index(a)
	if !ok {
		return Draw, fmt.Errorf("unknown move %q", a)
	}
	col, ok := m.set.Index(b)
	if !ok {
		return Draw, fmt.Errorf("unknown move %q", b)
	}
	return m.cells[row][col], nil
}

// Beats returns the moves that the move at position p defeats, in cyclic
// order starting from its successor.
func (m *Matrix) Beats(p int) []string {
	return m.window(p, 1)
}

// BeatenBy returns the moves that defeat the move at position p, nearest
// predecessor first.
func (m *Matrix) BeatenBy(p int) []string {
	return m.window(p, -1)
}

func (m *Matrix) window(p, dir int) []string {
	n := m.set.Len()
	half := n / 2
	out := make([]string, 0, half)
	for step := 1; step <= half; step++ {
		out = append(out, m.set.Label(((p+dir*step)%n+n)%n))
	}
	return out
}

// Rows returns the table as text: a header row with an empty corner cell
// followed by every label, then one row per move.
func (m *Matrix) Rows() [][]string {
	n := m.set.Len()
	rows := make([][]string, 0, n+1)

	header := make([]string, 0, n+1)
	header = append(header, "")
	header = append(header, m.set.labels...)
	rows = append(rows, header)

	for i := 0; i < n; i++ {
		row := make([]string, 0, n+1)
		row = append(row, m.set.Label(i))
		for j := 0; j < n; j++ {
			row = append(row, m.cells[i][j].String())
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteTo writes the tab-separated table to w.
func (m *Matrix) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, row := range m.Rows() {
		n, err := io.WriteString(w, strings.Join(row, "\t")+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
