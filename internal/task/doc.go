// Package task defines the task records Winnow browses and loads them
// from a local TOML file.
//
// # Task File Format
//
// Tasks live in a single TOML file (default
// ~/.local/share/winnow/tasks.toml):
//
//	[[tasks]]
//	id = 1
//	title = "Draft release notes"
//	status = "active"
//	project = "release"
//	created_at = "2026-08-20"
//
// Recognized statuses are active, completed, and blocked; a missing
// status defaults to active. Unknown statuses are kept as-is, since the
// filter catalog is configurable and may define matching filters for
// them.
//
// # Missing Files
//
// A missing task file yields the built-in sample set rather than an
// error, so the UI has something to show on first run. Parse failures
// are real errors and surface through the snapshot store.
package task
