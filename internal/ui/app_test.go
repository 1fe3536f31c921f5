package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/jspittman/winnow/internal/config"
	"github.com/jspittman/winnow/internal/state"
	"github.com/jspittman/winnow/internal/task"
)

func testTasks() []task.Task {
	return []task.Task{
		{ID: 1, Title: "Ship the release", Status: task.StatusActive, Project: "release"},
		{ID: 2, Title: "Write the notes", Status: task.StatusCompleted, Project: "release"},
		{ID: 3, Title: "Unblock the deploy", Status: task.StatusBlocked, Project: "ops"},
	}
}

// newTestModel builds a ready model with the default catalog and the
// test task set loaded.
func newTestModel(t *testing.T, multi bool) Model {
	t.Helper()

	cfg := config.Config{
		Filters:       config.DefaultFilters(),
		DefaultFilter: "all",
		MultiSelect:   multi,
	}
	m := New(Options{Config: &cfg})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)

	updated, _ = m.Update(snapshotMsg(state.Snapshot{Tasks: testTasks()}))
	return updated.(Model)
}

// press runs one key through the full Update path.
func press(t *testing.T, m Model, k string) Model {
	t.Helper()
	updated, _ := m.Update(keyPress(k))
	return updated.(Model)
}

func taskTitles(tasks []task.Task) []string {
	titles := make([]string, 0, len(tasks))
	for _, tk := range tasks {
		titles = append(titles, tk.Title)
	}
	return titles
}

func TestNewDefaults(t *testing.T) {
	m := New(Options{})

	if m.theme.Name != "Nightfox" {
		t.Fatalf("theme = %q, want Nightfox", m.theme.Name)
	}
	if m.sheet.Visible() {
		t.Fatal("sheet should start closed")
	}
	if m.sheet.Selection().HasActive() {
		t.Fatal("no filter should be active at start")
	}
}

func TestVisibleTasksUnfiltered(t *testing.T) {
	m := newTestModel(t, false)

	got := taskTitles(m.visibleTasks())
	want := []string{"Ship the release", "Write the notes", "Unblock the deploy"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("visibleTasks mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterFlowSingleSelect(t *testing.T) {
	m := newTestModel(t, false)

	// Open the sheet and let the opening frame land.
	m = press(t, m, "f")
	if !m.sheet.Visible() {
		t.Fatal("sheet should be visible after f")
	}
	updated, _ := m.Update(sheetFrameMsg{})
	m = updated.(Model)

	// Move to "Active" and press it; single-select dismisses the sheet.
	m = press(t, m, "j")
	m = press(t, m, "enter")
	updated, _ = m.Update(sheetFrameMsg{})
	m = updated.(Model)

	if m.sheet.Visible() {
		t.Fatal("sheet should be closed after a single-select press")
	}
	got := taskTitles(m.visibleTasks())
	if diff := cmp.Diff([]string{"Ship the release"}, got); diff != "" {
		t.Fatalf("visibleTasks mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterFlowMultiSelectUnion(t *testing.T) {
	m := newTestModel(t, true)

	m = press(t, m, "f")
	updated, _ := m.Update(sheetFrameMsg{})
	m = updated.(Model)

	m = press(t, m, "j") // Active
	m = press(t, m, "space")
	m = press(t, m, "j") // Completed
	m = press(t, m, "space")

	got := taskTitles(m.visibleTasks())
	want := []string{"Ship the release", "Write the notes"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("union filter mismatch (-want +got):\n%s", diff)
	}
}

func TestClearFiltersKey(t *testing.T) {
	m := newTestModel(t, false)

	m = press(t, m, "f")
	updated, _ := m.Update(sheetFrameMsg{})
	m = updated.(Model)
	m = press(t, m, "j")
	m = press(t, m, "enter")
	updated, _ = m.Update(sheetFrameMsg{})
	m = updated.(Model)

	if !m.sheet.Selection().HasActive() {
		t.Fatal("expected an active filter before clearing")
	}

	m = press(t, m, "c")
	if m.sheet.Selection().HasActive() {
		t.Fatal("c should clear the active filter")
	}
	if len(m.visibleTasks()) != len(testTasks()) {
		t.Fatal("all tasks should be visible after clearing")
	}
}

func TestCommandBarShowsClearOnlyWhenActive(t *testing.T) {
	m := newTestModel(t, false)

	if strings.Contains(m.renderCommandBar(), "Clear filters") {
		t.Fatal("clear affordance should be hidden with the default filter")
	}

	m.sheet.sel = m.sheet.sel.Press("active")
	if !strings.Contains(m.renderCommandBar(), "Clear filters") {
		t.Fatal("clear affordance should be shown while a filter is active")
	}
}

func TestHeaderShowsFilterSummary(t *testing.T) {
	m := newTestModel(t, true)
	m.sheet.sel = m.sheet.sel.Press("active")
	m.sheet.sel = m.sheet.sel.Press("completed")

	header := m.renderHeader()
	if !strings.Contains(header, "Active, Completed") {
		t.Fatalf("header should list active filter labels, got:\n%s", header)
	}
	if !strings.Contains(header, "Tasks 2/3") {
		t.Fatalf("header should show visible/total counts, got:\n%s", header)
	}
}

func TestFilterSummaryFallsBackToRawID(t *testing.T) {
	m := newTestModel(t, false)
	m.sheet.sel = m.sheet.sel.Press("mystery")

	if got := m.filterSummary(); got != "mystery" {
		t.Fatalf("filterSummary = %q, want raw id for uncataloged filters", got)
	}
}

func TestSearchFiltersTasks(t *testing.T) {
	m := newTestModel(t, false)

	m = press(t, m, "/")
	if !m.searchMode {
		t.Fatal("/ should enter search mode")
	}

	for _, r := range "release" {
		m = press(t, m, string(r))
	}
	got := taskTitles(m.visibleTasks())
	if diff := cmp.Diff([]string{"Ship the release"}, got); diff != "" {
		t.Fatalf("search mismatch (-want +got):\n%s", diff)
	}

	// Enter keeps the query, esc afterwards clears it.
	m = press(t, m, "enter")
	if m.searchMode {
		t.Fatal("enter should leave search mode")
	}
	if m.searchQuery != "release" {
		t.Fatalf("searchQuery = %q, want release", m.searchQuery)
	}

	m = press(t, m, "esc")
	if m.searchQuery != "" {
		t.Fatalf("searchQuery = %q, want empty after esc", m.searchQuery)
	}
	if len(m.visibleTasks()) != len(testTasks()) {
		t.Fatal("all tasks should be visible after clearing the search")
	}
}

func TestSearchAndFilterCompose(t *testing.T) {
	m := newTestModel(t, true)
	m.sheet.sel = m.sheet.sel.Press("active")
	m.sheet.sel = m.sheet.sel.Press("completed")
	m.searchQuery = "notes"

	got := taskTitles(m.visibleTasks())
	if diff := cmp.Diff([]string{"Write the notes"}, got); diff != "" {
		t.Fatalf("composed filter mismatch (-want +got):\n%s", diff)
	}
}

func TestCursorClampsWhenListShrinks(t *testing.T) {
	m := newTestModel(t, false)
	m = press(t, m, "G")
	if m.cursor != 2 {
		t.Fatalf("cursor = %d, want 2", m.cursor)
	}

	updated, _ := m.Update(snapshotMsg(state.Snapshot{Tasks: testTasks()[:1]}))
	m = updated.(Model)
	if m.cursor != 0 {
		t.Fatalf("cursor = %d, want 0 after the list shrank", m.cursor)
	}
}

func TestHelpOverlayToggle(t *testing.T) {
	m := newTestModel(t, false)

	m = press(t, m, "?")
	if !m.showHelp {
		t.Fatal("? should open help")
	}
	if view := m.View(); !strings.Contains(view, "Keyboard Shortcuts") {
		t.Fatal("help overlay should render shortcut list")
	}

	// Any key closes help.
	m = press(t, m, "x")
	if m.showHelp {
		t.Fatal("any key should close help")
	}
}

func TestThemeCyclePersistsPrefs(t *testing.T) {
	m := newTestModel(t, false)
	m.prefsPath = t.TempDir() + "/prefs.toml"

	m = press(t, m, "T")
	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa after cycling", m.theme.Name)
	}
}

func TestViewRendersTasksAndSheet(t *testing.T) {
	m := newTestModel(t, false)

	view := m.View()
	if !strings.Contains(view, "Ship the release") {
		t.Fatalf("view should list tasks, got:\n%s", view)
	}
	if strings.Contains(view, "Filters") && strings.Contains(view, "[ ]") {
		t.Fatal("sheet should not render while closed")
	}

	m = press(t, m, "f")
	updated, _ := m.Update(sheetFrameMsg{})
	m = updated.(Model)

	view = m.View()
	if !strings.Contains(view, "All tasks") {
		t.Fatalf("open sheet should render the catalog, got:\n%s", view)
	}
}
