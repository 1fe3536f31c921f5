// Package app provides the orchestration layer for the Winnow application.
//
// # Overview
//
// This package wires together configuration, the task source, state
// management, and the UI. It is the composition root where dependencies
// are initialized and connected; business logic lives in the domain
// packages.
//
// # Startup Sequence
//
//  1. Load the filter catalog config from ~/.config/winnow/config.toml
//  2. Load user preferences (theme) from ~/.config/winnow/prefs.toml
//  3. Create the task file source
//  4. Create the shared state.Store
//  5. Launch the background reload poller
//  6. Perform one synchronous load so the UI starts populated
//  7. Start the TUI and block until the user exits or the context cancels
//
// # Reload Behavior
//
// The poller re-reads the task file at a fixed cadence (default 2s). A
// failed read keeps the previous tasks visible and records the error;
// consecutive failures back the poller off exponentially, capped at 30s,
// so a persistently broken file does not cause log spam. Failures are
// logged with slog to stderr; the TUI surface stays quiet.
//
// # Error Handling
//
// Fatal errors returned from Run: invalid config (bad catalog, bad TOML)
// and task source setup failures. Reload failures after startup are
// recoverable and only surface through the store.
package app
