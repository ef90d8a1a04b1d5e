package tui

import (
	"dirjump/internal/rank"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model holds the picker state.
type Model struct {
	// Data
	paths   []string         // full history, MRU order
	matches []rank.Candidate // current ranked view of paths

	// UI State
	input       textinput.Model
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg

	// Choice is the picked path, set on enter. Empty means the user
	// backed out.
	Choice string

	minConfidence float64
}

// New returns the initial picker state over the given history.
func New(paths []string, initialQuery string, minConfidence float64) Model {
	ti := textinput.New()
	ti.Placeholder = "Directory..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.SetValue(initialQuery)
	ti.Focus()

	m := Model{
		paths:         paths,
		input:         ti,
		minConfidence: minConfidence,
	}
	m.rerank()
	return m
}

// Matches returns the current ranked view, best first.
func (m *Model) Matches() []rank.Candidate {
	return m.matches
}

// rerank recomputes the candidate list for the current query. An empty query
// shows the whole history in MRU order scored by recency alone, so the
// picker doubles as a recent-directories browser.
func (m *Model) rerank() {
	query := m.input.Value()
	if query == "" {
		m.matches = make([]rank.Candidate, len(m.paths))
		for i, p := range m.paths {
			m.matches[i] = rank.Candidate{Path: p, Confidence: rank.Weight(i)}
		}
	} else {
		m.matches = rank.Rank(m.paths, query, m.minConfidence, 0)
	}

	// Keep the cursor on a real row.
	if m.SelectedIdx >= len(m.matches) {
		m.SelectedIdx = len(m.matches) - 1
	}
	if m.SelectedIdx < 0 {
		m.SelectedIdx = 0
	}
}
