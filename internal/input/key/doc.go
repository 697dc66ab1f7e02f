// Package key provides key combination types and parsing for shortcut bindings.
//
// This package defines the fundamental types for representing a desktop
// key combination:
//
//   - Key: Identifies a keyboard key (special keys, function keys, media keys, or runes)
//   - Modifier: A set of modifier keys (Super, Ctrl, Alt, Shift)
//   - Combo: A modifier set plus exactly one non-modifier key
//
// # Key Specifications
//
// Key specifications can be written in multiple formats:
//
//   - Simple keys: "a", "1", "Print", "F5", "Escape"
//   - With modifiers: "Super+L", "Ctrl+Alt+T", "super+shift+Left"
//   - Vim-style: "<C-s>", "<A-f>", "<D-S-p>", "<CR>", "<Esc>"
//
// Modifier order does not matter and key names are case-insensitive, so
// "Shift+Super+l" and "Super+Shift+L" parse to equal combos. A specification
// that names only modifiers ("Super", "Ctrl+Shift") is rejected with ErrNoKey.
package key
