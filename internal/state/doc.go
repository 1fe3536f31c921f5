// Package state provides thread-safe state management for the Winnow
// application.
//
// # Overview
//
// The Store is the hand-off point between the background task reloader
// and the UI. The reloader writes fresh task lists; the UI reads
// immutable snapshots on its own schedule.
//
// # Concurrency Model
//
// A readers-writer lock guards the snapshot:
//
//   - Update(): write lock, single writer (the reload poller)
//   - Snapshot(): read lock, called from Bubble Tea commands
//
// The lock is held only while copying, never during file I/O or
// rendering. Both sides receive defensive copies, so neither can mutate
// data the other is reading.
//
// # Update Semantics
//
// On a successful reload the task list is replaced wholesale and the
// failure counter resets. On a failed reload the previous tasks are kept
// so the UI always has something to display, while LastError and
// ConsecutiveFailures surface the problem. Snapshot.IsStale reports when
// failures have persisted across polls.
//
// # Filtering Note
//
// The Store carries the unfiltered task list. Filter selection lives in
// the UI layer (internal/selection); filtering is applied per render,
// never persisted here. The filter selection itself has no cross-session
// lifetime at all: it is created when the UI starts and discarded with it.
package state
