// Package selection implements the filter selection state machine behind
// the Winnow filter sheet.
//
// # Main Types
//
//   - [Model]: ordered selection set with a distinguished default id
//   - [Option]: a catalog entry (id, label, icon name)
//
// # Selection Modes
//
// The model operates in one of two modes, fixed at construction:
//
//  1. Single-select (default): at most one filter beyond the default can
//     be active. Pressing the active filter again deselects it.
//
//  2. Multi-select ([WithMultiSelect]): any number of non-default filters
//     can be active; results are unioned when applied.
//
// In both modes the selection set is never empty, and pressing the
// default id resets the set to exactly the default. A press that would
// drain the set falls back to the default as well, so the two modes share
// one recovery behavior.
//
// # Decoupling From the Catalog
//
// The model tracks identifiers only. It performs no validation against
// the configured option catalog; unknown ids pass through silently.
// Catalog validation belongs to the config layer.
//
// # Usage
//
//	m := selection.New("all")
//	m = m.Press("active")
//	visible := selection.Apply(m, tasks, func(t task.Task, id string) bool {
//		return string(t.Status) == id
//	})
//
// Model is a value type: operations return the updated model rather than
// mutating in place, matching Bubble Tea's update style.
package selection
