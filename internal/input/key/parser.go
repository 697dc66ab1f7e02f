package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
	ErrNoKey       = errors.New("key specification has no non-modifier key")
)

// ParseError describes why a key specification was rejected.
type ParseError struct {
	// Spec is the specification as given by the caller.
	Spec string
	// Detail names the offending part, if any.
	Detail string
	// Err is one of ErrEmptySpec, ErrInvalidSpec or ErrNoKey.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s %q: %s", e.Err, e.Spec, e.Detail)
	}
	return fmt.Sprintf("%s %q", e.Err, e.Spec)
}

// Unwrap returns the sentinel error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse parses a key specification string into a Combo.
//
// Supported formats:
//   - Single character: "a", "1", "@"
//   - Special keys: "Enter", "Escape", "Tab", "Print", "F5", "XF86AudioMute"
//   - With modifiers: "Super+L", "Alt+F4", "Ctrl+Shift+P", "Ctrl++"
//   - Vim-style: "<C-s>", "<A-f>", "<D-S-p>", "<CR>", "<Esc>"
//
// A specification that only names modifiers fails with ErrNoKey.
func Parse(spec string) (Combo, error) {
	combo, err := parse(strings.TrimSpace(spec))
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Spec = spec
			return Combo{}, perr
		}
		return Combo{}, &ParseError{Spec: spec, Err: err}
	}
	return combo, nil
}

func parse(spec string) (Combo, error) {
	if spec == "" {
		return Combo{}, ErrEmptySpec
	}

	// Check for Vim-style <...> notation
	if len(spec) > 1 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	if spec == "+" {
		return NewRuneCombo('+', ModNone), nil
	}

	// Check for modifier+key format (Super+L, Alt+F4)
	if strings.Contains(spec, "+") {
		return parseModifierStyle(spec)
	}

	return parseKeyWithModifiers(spec, ModNone)
}

// parseVimStyle parses Vim-style notation like "C-s", "A-F4", "CR", "Esc"
func parseVimStyle(inner string) (Combo, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Combo{}, ErrInvalidSpec
	}

	parts := strings.Split(inner, "-")
	keyPart := parts[len(parts)-1]

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "c":
			mods = mods.With(ModCtrl)
		case "a":
			mods = mods.With(ModAlt)
		case "s":
			mods = mods.With(ModShift)
		case "m", "d":
			mods = mods.With(ModSuper)
		default:
			return Combo{}, &ParseError{Err: ErrInvalidSpec, Detail: fmt.Sprintf("unknown modifier %q", p)}
		}
	}

	return parseKeyWithModifiers(keyPart, mods)
}

// parseModifierStyle parses "Super+L" style notation
func parseModifierStyle(spec string) (Combo, error) {
	parts := strings.Split(spec, "+")

	// "Ctrl++" names the plus key itself.
	if len(parts) >= 3 && parts[len(parts)-1] == "" && parts[len(parts)-2] == "" {
		parts = append(parts[:len(parts)-2], "plus")
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Combo{}, &ParseError{Err: ErrInvalidSpec, Detail: fmt.Sprintf("unknown modifier %q", strings.TrimSpace(p))}
		}
		mods = mods.With(mod)
	}

	return parseKeyWithModifiers(parts[len(parts)-1], mods)
}

// parseKeyWithModifiers parses a key part with already-known modifiers
func parseKeyWithModifiers(keyPart string, mods Modifier) (Combo, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		if mods.IsEmpty() {
			return Combo{}, ErrInvalidSpec
		}
		return Combo{}, ErrNoKey
	}

	// Vim and punctuation aliases
	switch strings.ToLower(keyPart) {
	case "lt":
		return NewRuneCombo('<', mods), nil
	case "gt":
		return NewRuneCombo('>', mods), nil
	case "bar":
		return NewRuneCombo('|', mods), nil
	case "bslash", "backslash":
		return NewRuneCombo('\\', mods), nil
	case "plus":
		return NewRuneCombo('+', mods), nil
	case "minus":
		return NewRuneCombo('-', mods), nil
	}

	if key := KeyFromName(keyPart); key != KeyNone {
		return NewSpecialCombo(key, mods), nil
	}

	if !utf8.ValidString(keyPart) {
		return Combo{}, &ParseError{Err: ErrInvalidSpec, Detail: "invalid UTF-8"}
	}
	runes := []rune(keyPart)
	if len(runes) == 1 {
		if runes[0] == utf8.RuneError {
			return Combo{}, &ParseError{Err: ErrInvalidSpec, Detail: "invalid UTF-8"}
		}
		return NewRuneCombo(runes[0], mods), nil
	}

	// Multi-letter modifier names in key position: "Super", "Ctrl+Shift".
	if ModifierFromName(keyPart) != ModNone {
		return Combo{}, ErrNoKey
	}

	return Combo{}, &ParseError{Err: ErrInvalidSpec, Detail: fmt.Sprintf("unknown key %q", keyPart)}
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Combo {
	combo, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return combo
}

// FormatSpec formats a combo as a specification string.
// This produces a canonical form that can be parsed back.
func FormatSpec(combo Combo) string {
	return combo.String()
}
