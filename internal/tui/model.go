// Package tui provides a bubbletea prompt for choosing a move.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lox/fairmoves/internal/game"
	"github.com/lox/fairmoves/internal/moves"
)

// Model is the bubbletea model for a single menu prompt. It finishes on the
// first Enter, valid or not, so the caller decides whether to ask again.
type Model struct {
	set      moves.MoveSet
	input    textinput.Model
	previous string // last rejected entry, shown as an error

	selection game.Selection
	submitted bool
	aborted   bool
}

// NewModel returns a prompt over set. A non-empty previous is reported as the
// rejected entry from the last prompt.
func NewModel(set moves.MoveSet, previous string) Model {
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("1-%d", set.Len())
	ti.Prompt = "> "
	ti.PromptStyle = PromptStyle
	ti.CharLimit = 16
	ti.Width = 20
	ti.Focus()

	return Model{set: set, input: ti, previous: previous}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.selection = game.ParseSelection(m.input.Value(), m.set.Len())
			m.submitted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.submitted || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Choose your move"))
	b.WriteString("\n")
	for i, label := range m.set.Labels() {
		b.WriteString(NumberStyle.Render(fmt.Sprintf("%2d", i+1)))
		b.WriteString(" ")
		b.WriteString(OptionStyle.Render(label))
		b.WriteString("\n")
	}
	if m.previous != "" {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("%q is not a move number", strings.TrimSpace(m.previous))))
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("Enter to submit • Esc to quit"))
	b.WriteString("\n")
	return b.String()
}

// Selection returns the submitted choice.
func (m Model) Selection() (game.Selection, bool) {
	return m.selection, m.submitted
}

// Aborted reports whether the user quit instead of choosing.
func (m Model) Aborted() bool { return m.aborted }
