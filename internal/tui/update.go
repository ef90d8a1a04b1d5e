package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			// Back out without choosing anything.
			m.Choice = ""
			return m, tea.Quit

		case "enter":
			if m.SelectedIdx < len(m.matches) {
				m.Choice = m.matches[m.SelectedIdx].Path
			}
			return m, tea.Quit

		case "up", "ctrl+p":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
			}
			return m, nil

		case "down", "ctrl+n":
			if m.SelectedIdx < len(m.matches)-1 {
				m.SelectedIdx++
			}
			return m, nil
		}

		// Everything else edits the query and re-ranks.
		m.input, cmd = m.input.Update(msg)
		m.rerank()
		return m, cmd
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
