package ui

import (
	"fmt"
	"strings"
)

// renderHeader renders the top status line.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	var parts []string
	parts = append(parts, styles.AccentText.Bold(true).Render("WINNOW"))

	total := len(m.snapshot.Tasks)
	visible := len(m.visibleTasks())
	parts = append(parts, styles.Text.Render(fmt.Sprintf("Tasks %d/%d", visible, total)))

	if summary := m.filterSummary(); summary != "" {
		parts = append(parts, styles.WarningText.Render("⚑ "+summary))
	}

	if m.snapshot.IsStale() {
		parts = append(parts, styles.DangerText.Render("task file unreadable"))
	} else if m.snapshot.LastError != nil {
		parts = append(parts, styles.WarningText.Render("reload failed"))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, "  │  "))
}

// renderCommandBar renders the second header line: the search field when
// focused, otherwise the key hints. The clear-filters hint appears only
// while a non-default filter is active.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	if m.searchMode {
		return styles.CommandBar.Width(m.width).Render("Search: " + m.searchInput.View())
	}

	hints := []string{
		"<f> Filters",
		"<j/k> Navigate",
	}
	if m.sheet.Selection().HasActive() {
		hints = append(hints, "<c> Clear filters")
	}
	if m.searchQuery != "" {
		hints = append(hints, fmt.Sprintf("<esc> Clear search (%q)", m.searchQuery))
	} else {
		hints = append(hints, "</> Search")
	}
	hints = append(hints, "<T> Theme", "<?> Help", "<q> Quit")

	return styles.CommandBar.Width(m.width).Render(strings.Join(hints, "   "))
}

// filterSummary names the active filters for the header, using catalog
// labels where available.
func (m Model) filterSummary() string {
	sel := m.sheet.Selection()
	if !sel.HasActive() {
		return ""
	}

	labels := make([]string, 0, 2)
	for _, id := range sel.Selected() {
		labels = append(labels, m.optionLabel(id))
	}
	return strings.Join(labels, ", ")
}

// optionLabel resolves a filter id to its catalog label, falling back to
// the raw id for selections outside the catalog.
func (m Model) optionLabel(id string) string {
	for _, opt := range m.config.Filters {
		if opt.ID == id {
			return opt.Label
		}
	}
	return id
}
