package ui

import (
	"fmt"
	"strings"

	"github.com/jspittman/winnow/internal/selection"
	"github.com/jspittman/winnow/internal/task"
)

// matchTask is the predicate the filter selection is applied with. A
// filter id matches a task by status or by project, so custom catalogs
// can slice either way.
func matchTask(t task.Task, id string) bool {
	return string(t.Status) == id || t.Project == id
}

// visibleTasks returns the snapshot's tasks after the filter selection
// and the search query.
func (m Model) visibleTasks() []task.Task {
	tasks := selection.Apply(m.sheet.Selection(), m.snapshot.Tasks, matchTask)

	query := strings.ToLower(strings.TrimSpace(m.searchQuery))
	if query == "" {
		return tasks
	}

	var out []task.Task
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), query) {
			out = append(out, t)
		}
	}
	return out
}

// updateTaskViewport rebuilds the viewport content and keeps the cursor
// row in view.
func (m *Model) updateTaskViewport() {
	if !m.ready {
		return
	}

	tasks := m.visibleTasks()
	styles := m.theme.Styles()

	if len(tasks) == 0 {
		m.taskViewport.SetContent(styles.MutedText.Render("  No tasks match the current filters."))
		return
	}

	lines := make([]string, 0, len(tasks))
	for i, t := range tasks {
		lines = append(lines, m.renderTaskLine(t, i == m.cursor))
	}
	m.taskViewport.SetContent(strings.Join(lines, "\n"))

	// Scroll the cursor row into the visible window.
	top := m.taskViewport.YOffset
	bottom := top + m.taskViewport.Height - 1
	if m.cursor < top {
		m.taskViewport.SetYOffset(m.cursor)
	} else if m.cursor > bottom {
		m.taskViewport.SetYOffset(m.cursor - m.taskViewport.Height + 1)
	}
}

// renderTaskLine renders one task row.
func (m Model) renderTaskLine(t task.Task, selected bool) string {
	styles := m.theme.Styles()

	badge := styles.StatusBadge(string(t.Status)).Render(fmt.Sprintf("%-9s", t.Status))
	title := truncate(t.Title, max(20, m.width-40))

	project := ""
	if t.Project != "" {
		project = styles.FaintText.Render(" [" + t.Project + "]")
	}

	age := ""
	if created := t.ParsedCreatedAt(); !created.IsZero() {
		age = styles.MutedText.Render("  " + humanizeSince(created))
	}

	line := fmt.Sprintf(" %s %s%s%s", badge, styles.Text.Render(title), project, age)
	if selected {
		return styles.Selected.Render("▌" + line)
	}
	return " " + line
}
