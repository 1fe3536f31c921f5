// Package config handles loading and validating Winnow configuration.
//
// # Overview
//
// The config file defines the filter catalog shown in the filter sheet,
// the default filter, the selection mode, and the task file location.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/winnow/config.toml (default)
//  3. If the config file doesn't exist, fall back to the built-in catalog
//
// # TOML Format
//
// Example config.toml:
//
//	default_filter = "all"
//	multi_select = true
//	tasks_path = "~/notes/tasks.toml"
//
//	[[filter]]
//	id = "all"
//	label = "All tasks"
//	icon = "list"
//
//	[[filter]]
//	id = "active"
//	label = "Active"
//	icon = "circle"
//
// # Validation
//
// Catalogs are validated at load time:
//
//   - ids must be non-empty and unique within the catalog
//   - labels must be non-empty
//   - icon names must be recognized by the icons package (empty allowed)
//   - the default filter id must appear in the catalog
//
// The selection state machine itself never validates ids; all catalog
// consistency checks happen here, once, at startup.
//
// # Error Handling
//
// Missing config files are NOT an error, the built-in catalog is used
// instead. Read failures, TOML parse failures, and validation failures
// are returned to the caller.
package config
