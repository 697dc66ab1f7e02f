package key

import (
	"unicode"
)

// Combo is a key combination: a modifier set plus one non-modifier key.
//
// Combo is comparable; two combos are equal iff their key, rune and
// modifier set match, so it can be used directly as a map key.
type Combo struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune combos, always lowercase.
	Rune rune

	// Modifiers contains the modifier keys held with Key.
	Modifiers Modifier
}

// NewRuneCombo creates a combo for a character key.
// Letters are folded to lowercase so "Super+L" and "Super+l" are equal.
func NewRuneCombo(r rune, mods Modifier) Combo {
	return Combo{
		Key:       KeyRune,
		Rune:      unicode.ToLower(r),
		Modifiers: mods,
	}
}

// NewSpecialCombo creates a combo for a special key.
func NewSpecialCombo(key Key, mods Modifier) Combo {
	return Combo{
		Key:       key,
		Modifiers: mods,
	}
}

// IsSet reports whether the combo names a key.
// Combos holding only modifiers, or nothing, are not set.
func (c Combo) IsSet() bool {
	switch c.Key {
	case KeyNone:
		return false
	case KeyRune:
		return c.Rune != 0
	default:
		return true
	}
}

// Equals returns true if two combos represent the same key combination.
func (c Combo) Equals(other Combo) bool {
	return c == other
}

// KeyName returns the display name of the non-modifier key.
func (c Combo) KeyName() string {
	if c.Key != KeyRune {
		return c.Key.String()
	}
	switch c.Rune {
	case 0:
		return ""
	case '+':
		return "plus"
	default:
		return string(unicode.ToUpper(c.Rune))
	}
}

// String returns the canonical readable form, e.g. "Super+Shift+L".
func (c Combo) String() string {
	if !c.IsSet() {
		return ""
	}
	if c.Modifiers.IsEmpty() {
		return c.KeyName()
	}
	return c.Modifiers.String() + "+" + c.KeyName()
}
