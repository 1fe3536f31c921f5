package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleSearchKey processes keyboard input while the search field is
// focused. Enter keeps the query, Esc discards it; the list filters live
// as the query changes.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.searchMode = false
		m.searchInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.searchMode = false
		m.searchQuery = ""
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.clampCursor()
		m.updateTaskViewport()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.searchQuery = m.searchInput.Value()
	m.clampCursor()
	m.updateTaskViewport()
	return m, cmd
}
