package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jspittman/winnow/internal/config"
	"github.com/jspittman/winnow/internal/prefs"
	"github.com/jspittman/winnow/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Config    *config.Config
	PollTick  time.Duration
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	config    *config.Config
	prefsPath string
	pollTick  time.Duration

	// UI state
	theme  Theme
	keys   keyMap
	width  int
	height int
	ready  bool

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time

	// Task list state
	cursor       int
	taskViewport viewport.Model

	// Filter sheet
	sheet Sheet

	// Search state
	searchInput textinput.Model
	searchMode  bool // input focused, keystrokes go to the textinput
	searchQuery string

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = time.Second
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = themeOrder[0]
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	cfg := opts.Config
	if cfg == nil {
		def := config.Config{
			Filters:       config.DefaultFilters(),
			DefaultFilter: "all",
		}
		cfg = &def
	}

	input := textinput.New()
	input.Placeholder = "search tasks"
	input.CharLimit = 64
	input.Width = 30

	return Model{
		ctx:         ctx,
		store:       opts.Store,
		config:      cfg,
		prefsPath:   prefsPath,
		pollTick:    pollTick,
		theme:       GetTheme(themeName),
		keys:        DefaultKeyMap(),
		sheet:       NewSheet(cfg.Filters, cfg.DefaultFilter, cfg.MultiSelect),
		searchInput: input,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.taskViewport = viewport.New(msg.Width, m.contentHeight())
		}
		m.ready = true
		m.taskViewport.Width = msg.Width
		m.taskViewport.Height = m.contentHeight()
		m.updateTaskViewport()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.lastUpdated = time.Now()
		m.clampCursor()
		m.updateTaskViewport()
		return m, nil

	case sheetFrameMsg:
		var cmd tea.Cmd
		m.sheet, cmd = m.sheet.advanceFrame()
		m.taskViewport.Height = m.contentHeight()
		m.updateTaskViewport()
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.taskViewport.View())

	if m.sheet.Visible() {
		b.WriteString("\n")
		b.WriteString(m.sheet.View(m.theme, m.width))
	}

	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always quits, regardless of what is focused.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.sheet.Visible() {
		var cmd tea.Cmd
		m.sheet, cmd = m.sheet.HandleKey(msg, m.keys)
		m.clampCursor()
		m.updateTaskViewport()
		return m, cmd
	}

	if m.searchMode {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		m.updateTaskViewport()
		return m, nil

	case key.Matches(msg, m.keys.OpenSheet):
		var cmd tea.Cmd
		m.sheet, cmd = m.sheet.Open()
		m.taskViewport.Height = m.contentHeight()
		m.updateTaskViewport()
		return m, cmd

	case key.Matches(msg, m.keys.ClearFilters):
		m.sheet = m.sheet.Clear()
		m.clampCursor()
		m.updateTaskViewport()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		m.searchInput.SetValue(m.searchQuery)
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Escape):
		if m.searchQuery != "" {
			m.searchQuery = ""
			m.clampCursor()
			m.updateTaskViewport()
		}
		return m, nil
	}

	return m.handleListKey(msg)
}

// handleListKey processes navigation in the task list.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.visibleTasks())
	if count == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.cursor < count-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = count - 1
	case key.Matches(msg, m.keys.HalfPageDown):
		m.cursor = min(count-1, m.cursor+m.taskViewport.Height/2)
	case key.Matches(msg, m.keys.HalfPageUp):
		m.cursor = max(0, m.cursor-m.taskViewport.Height/2)
	}

	m.updateTaskViewport()
	return m, nil
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return m, tea.Batch(cmds...)
}

// contentHeight returns the height available to the task viewport, after
// the two header lines and any visible sheet.
func (m Model) contentHeight() int {
	h := m.height - 2
	if m.sheet.Visible() {
		h -= m.sheetHeight()
	}
	if h < 1 {
		h = 1
	}
	return h
}

// sheetHeight is the number of terminal rows the sheet panel occupies,
// including its border and the joining newline.
func (m Model) sheetHeight() int {
	// title + blank + options + blank + hint, plus 2 border rows and the
	// separator line.
	return len(m.config.Filters) + 7
}

func (m *Model) clampCursor() {
	count := len(m.visibleTasks())
	if count == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= count {
		m.cursor = count - 1
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
