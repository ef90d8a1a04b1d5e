package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(lipgloss.Color("205")) // Pinkish

	unselectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(4).
				Foreground(lipgloss.Color("250"))

	confidenceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // Grey

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("dirjump"))
	b.WriteString("\n\n")
	b.WriteString("  " + m.input.View())
	b.WriteString("\n\n")

	if len(m.matches) == 0 {
		b.WriteString(dimStyle.Render("  no matching directories"))
		b.WriteString("\n")
	}

	// Leave room for title, input and footer.
	maxRows := m.WindowSize.Height - 7
	if maxRows < 5 {
		maxRows = 5
	}

	for i, c := range m.matches {
		if i >= maxRows {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  … %d more", len(m.matches)-maxRows)))
			b.WriteString("\n")
			break
		}
		score := confidenceStyle.Render(fmt.Sprintf("[%.2f]", c.Confidence))
		if i == m.SelectedIdx {
			b.WriteString(selectedItemStyle.Render("> " + score + " " + c.Path))
		} else {
			b.WriteString(unselectedItemStyle.Render(score + " " + c.Path))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  ↑/↓ move · enter jump · esc cancel"))
	b.WriteString("\n")

	return b.String()
}
