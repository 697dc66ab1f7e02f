// Package config provides the backing shortcut configuration and the
// application settings.
//
// # Layers
//
// The shortcut configuration has two layers:
//
//	┌─────────────────────────────┐
//	│  2. Custom Shortcuts        │  ← ~/.config/shortcuts/custom.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← read-only system actions
//	└─────────────────────────────┘
//
// Custom entries shadow defaults with the same key combination. Removing a
// default binding records it in the custom file's disabled list, so the
// removal survives a restart.
//
// # Configuration Files
//
//	# ~/.config/shortcuts/custom.toml
//	disabled = ["Super+Escape"]
//
//	[[shortcut]]
//	  keys = "Super+L"
//	  description = "Lock"
//	  action = "spawn"
//	  command = "loginctl lock-session"
//
//	# ~/.config/shortcuts/settings.toml
//	log_level = "info"
//	log_format = "text"
//
// Every write replaces the file atomically.
//
// # Error Handling
//
//   - ErrNotFound: the binding is not part of the configuration
//   - PersistError: the change could not be written to disk
//   - loader.ParseError: a configuration file is malformed
package config
