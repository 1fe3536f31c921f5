package selection

import "slices"

// DefaultFilterID is the conventional identifier for "no filter active".
const DefaultFilterID = "all"

// Option describes a selectable filter exposed to the user.
// Options are immutable catalog entries supplied by the caller; the
// selection model itself never consults the catalog.
type Option struct {
	ID    string // stable identifier, unique within a catalog
	Label string // display label
	Icon  string // optional icon name, resolved by the presentation layer
}

// Model tracks the ordered set of selected filter identifiers.
//
// The set is never empty: every operation that would drain it falls back
// to the default identifier, so callers can always treat the first
// element as the active filter. The zero value is not ready for use;
// construct with New.
type Model struct {
	defaultID string
	multi     bool
	ids       []string
}

// ModelOption configures a Model at construction time.
type ModelOption func(*Model)

// WithMultiSelect enables multi-select mode, where any number of
// non-default filters may be active at once.
func WithMultiSelect() ModelOption {
	return func(m *Model) { m.multi = true }
}

// New creates a Model selecting only defaultID. An empty defaultID falls
// back to DefaultFilterID.
func New(defaultID string, opts ...ModelOption) Model {
	if defaultID == "" {
		defaultID = DefaultFilterID
	}
	m := Model{defaultID: defaultID}
	for _, opt := range opts {
		opt(&m)
	}
	m.ids = []string{m.defaultID}
	return m
}

// DefaultID returns the distinguished "no filter active" identifier.
func (m Model) DefaultID() string {
	return m.defaultID
}

// MultiSelect reports whether the model is in multi-select mode.
func (m Model) MultiSelect() bool {
	return m.multi
}

// Selected returns a copy of the ordered selection set.
func (m Model) Selected() []string {
	return slices.Clone(m.ids)
}

// IsSelected reports whether id is currently selected.
func (m Model) IsSelected(id string) bool {
	return slices.Contains(m.ids, id)
}

// Active returns the first selected identifier. It returns the default
// identifier if the set is somehow empty; under the non-empty invariant
// that branch is unreachable.
func (m Model) Active() string {
	if len(m.ids) == 0 {
		return m.defaultID
	}
	return m.ids[0]
}

// HasActive reports whether any filter other than the default is selected.
func (m Model) HasActive() bool {
	return m.Active() != m.defaultID
}

// Press applies a press on id and returns the updated model.
//
// Identifiers are accepted without validation against any catalog;
// unknown ids are tracked like any other. Pressing the default id always
// resets the set to exactly the default, in either mode.
func (m Model) Press(id string) Model {
	if m.multi {
		return m.pressMulti(id)
	}
	return m.pressSingle(id)
}

// pressSingle replaces the selection wholesale. Pressing the current
// non-default selection deselects it back to the default.
func (m Model) pressSingle(id string) Model {
	if id != m.defaultID && len(m.ids) == 1 && m.ids[0] == id {
		m.ids = []string{m.defaultID}
		return m
	}
	m.ids = []string{id}
	return m
}

// pressMulti toggles membership of id, keeping the default id exclusive:
// it is stripped when a real filter joins and restored when the last one
// leaves.
func (m Model) pressMulti(id string) Model {
	if id == m.defaultID {
		m.ids = []string{m.defaultID}
		return m
	}

	if i := slices.Index(m.ids, id); i >= 0 {
		remaining := slices.Delete(slices.Clone(m.ids), i, i+1)
		if len(remaining) == 0 {
			remaining = []string{m.defaultID}
		}
		m.ids = remaining
		return m
	}

	next := make([]string, 0, len(m.ids)+1)
	for _, existing := range m.ids {
		if existing != m.defaultID {
			next = append(next, existing)
		}
	}
	m.ids = append(next, id)
	return m
}

// Clear resets the selection to the default identifier.
func (m Model) Clear() Model {
	m.ids = []string{m.defaultID}
	return m
}

// Apply filters items through the selection. When no non-default filter
// is active it returns items unchanged without evaluating match. Otherwise
// it returns the subsequence of items for which match reports true for at
// least one selected identifier (union across the selection set).
func Apply[T any](m Model, items []T, match func(item T, id string) bool) []T {
	if !m.HasActive() {
		return items
	}

	var out []T
	for _, item := range items {
		for _, id := range m.ids {
			if match(item, id) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
