package moves

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Bold(true).Padding(0, 1)
	cellStyle  = lipgloss.NewStyle().Padding(0, 1)

	outcomeStyles = map[Outcome]lipgloss.Style{
		Win:  cellStyle.Foreground(lipgloss.Color("#96CEB4")),
		Lose: cellStyle.Foreground(lipgloss.Color("#FF6B6B")),
		Draw: cellStyle.Foreground(lipgloss.Color("#FFEAA7")),
	}
)

// Render returns the outcome table as text. With styled set it draws a
// bordered, coloured table; otherwise it returns the tab-separated form.
func (m *Matrix) Render(styled bool) string {
	if !styled {
		var b strings.Builder
		_, _ = m.WriteTo(&b)
		return b.String()
	}

	rows := m.Rows()
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(rows[0]...).
		Rows(rows[1:]...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return labelStyle
			case row < 0 || row >= len(m.cells) || col > len(m.cells):
				return cellStyle
			}
			return outcomeStyles[m.cells[row][col-1]]
		})

	return t.Render() + "\n"
}
