package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jspittman/winnow/internal/icons"
	"github.com/jspittman/winnow/internal/selection"
)

// sheetPhase is the lifecycle state of the filter sheet. Visibility is an
// explicit state value driven by frame messages; there is no imperative
// open/close handle and nothing renders lazily on first open.
type sheetPhase int

const (
	sheetClosed sheetPhase = iota
	sheetOpening
	sheetOpen
	sheetClosing
)

const sheetFrameInterval = 40 * time.Millisecond

// sheetFrameMsg advances the sheet through its opening/closing phases.
type sheetFrameMsg struct{}

func sheetFrameCmd() tea.Cmd {
	return tea.Tick(sheetFrameInterval, func(time.Time) tea.Msg {
		return sheetFrameMsg{}
	})
}

// Sheet is the filter selection sheet: a bottom-anchored panel listing
// the configured filter options. It owns the selection state machine and
// its own lifecycle; the host model forwards keys while the sheet is
// visible and reads Selection() to filter its content.
type Sheet struct {
	options []selection.Option
	glyphs  map[string]icons.Icon // option id -> icon, resolved up front
	sel     selection.Model
	phase   sheetPhase
	cursor  int
}

// NewSheet builds a sheet for the given catalog. Icon names are resolved
// once here; the catalog is expected to be config-validated already, so
// an unknown name simply renders no icon.
func NewSheet(options []selection.Option, defaultID string, multi bool) Sheet {
	glyphs := make(map[string]icons.Icon, len(options))
	for _, opt := range options {
		icon, err := icons.Parse(opt.Icon)
		if err != nil {
			icon = icons.None
		}
		glyphs[opt.ID] = icon
	}

	var selOpts []selection.ModelOption
	if multi {
		selOpts = append(selOpts, selection.WithMultiSelect())
	}

	return Sheet{
		options: options,
		glyphs:  glyphs,
		sel:     selection.New(defaultID, selOpts...),
	}
}

// Selection returns the current selection state.
func (s Sheet) Selection() selection.Model {
	return s.sel
}

// Visible reports whether the sheet occupies the screen in any phase.
func (s Sheet) Visible() bool {
	return s.phase != sheetClosed
}

// Open starts the closed → opening → open transition.
func (s Sheet) Open() (Sheet, tea.Cmd) {
	if s.phase != sheetClosed {
		return s, nil
	}
	s.phase = sheetOpening
	return s, sheetFrameCmd()
}

// Close starts the open → closing → closed transition.
func (s Sheet) Close() (Sheet, tea.Cmd) {
	if s.phase != sheetOpen && s.phase != sheetOpening {
		return s, nil
	}
	s.phase = sheetClosing
	return s, sheetFrameCmd()
}

// Clear resets the selection to the default filter. Works whether or not
// the sheet is visible, backing the host's clear-filters key.
func (s Sheet) Clear() Sheet {
	s.sel = s.sel.Clear()
	return s
}

// advanceFrame moves the sheet one lifecycle step forward.
func (s Sheet) advanceFrame() (Sheet, tea.Cmd) {
	switch s.phase {
	case sheetOpening:
		s.phase = sheetOpen
	case sheetClosing:
		s.phase = sheetClosed
	}
	return s, nil
}

// HandleKey processes keyboard input while the sheet is visible.
func (s Sheet) HandleKey(msg tea.KeyMsg, keys keyMap) (Sheet, tea.Cmd) {
	if s.phase != sheetOpen {
		// Ignore input mid-transition; the next frame lands momentarily.
		return s, nil
	}

	switch {
	case key.Matches(msg, keys.Escape), key.Matches(msg, keys.OpenSheet):
		return s.Close()

	case key.Matches(msg, keys.Down):
		if s.cursor < len(s.options)-1 {
			s.cursor++
		}

	case key.Matches(msg, keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}

	case key.Matches(msg, keys.Top):
		s.cursor = 0

	case key.Matches(msg, keys.Bottom):
		s.cursor = len(s.options) - 1

	case key.Matches(msg, keys.Press):
		if s.cursor < len(s.options) {
			s.sel = s.sel.Press(s.options[s.cursor].ID)
			// Single-select: a press settles the selection, so the
			// sheet dismisses itself like a picker.
			if !s.sel.MultiSelect() {
				return s.Close()
			}
		}

	case key.Matches(msg, keys.ClearFilters):
		s.sel = s.sel.Clear()
	}

	return s, nil
}

// View renders the sheet panel for the given width. During the opening
// and closing phases only the frame is drawn, so the panel appears to
// rise from and sink into the bottom edge.
func (s Sheet) View(theme Theme, width int) string {
	if s.phase == sheetClosed {
		return ""
	}

	styles := theme.Styles()
	innerWidth := width - 6
	if innerWidth < 20 {
		innerWidth = 20
	}

	if s.phase == sheetOpening || s.phase == sheetClosing {
		return styles.SheetBorder.Width(innerWidth).Render("")
	}

	var b strings.Builder

	mode := "single-select"
	if s.sel.MultiSelect() {
		mode = "multi-select"
	}
	b.WriteString(styles.SheetTitle.Render("Filters"))
	b.WriteString(styles.MutedText.Render("  (" + mode + ")"))
	b.WriteString("\n\n")

	for i, opt := range s.options {
		var checkbox string
		if s.sel.IsSelected(opt.ID) {
			checkbox = styles.Checkbox.Render("[✓]")
		} else {
			checkbox = styles.CheckboxEmpty.Render("[ ]")
		}

		glyph := s.glyphs[opt.ID].Glyph()
		label := styles.Text.Render(opt.Label)
		line := fmt.Sprintf("%s %s %s", checkbox, glyph, label)
		if i == s.cursor {
			line = styles.Selected.Render("› " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	hint := "[enter] toggle  [c] clear  [esc] close"
	b.WriteString(styles.FaintText.Render(hint))

	panel := styles.SheetBorder.Width(innerWidth).Render(b.String())
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, panel)
}
