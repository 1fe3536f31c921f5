// Package ui implements the Bubble Tea terminal interface for Winnow.
//
// # Structure
//
//   - app.go: root Model, message/command plumbing, key dispatch
//   - sheet.go: the filter sheet component and its lifecycle
//   - tasks.go: task list rendering and filter application
//   - search.go: the title search field
//   - header.go: status line and command bar
//   - theme.go, keys.go, help.go, helpers.go: chrome
//
// # The Filter Sheet
//
// The sheet is the reusable piece: it owns a selection.Model and renders
// the configured catalog as a bottom-anchored panel. Its visibility is an
// explicit lifecycle value, closed → opening → open → closing → closed,
// advanced by frame messages through the normal Update path. There is no
// imperative show/hide handle, no deferred first render, and no global
// first-interaction gate; a host embeds the Sheet, forwards key messages
// while it is visible, and reads Selection() to filter whatever it
// displays.
//
// # Data Flow
//
// The model polls the state store on a tick and re-renders from
// snapshots. Filtering is pure: every frame derives the visible task
// list from snapshot × selection × search query, so there is no cached
// filtered state to invalidate.
package ui
