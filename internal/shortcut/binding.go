package shortcut

import (
	"github.com/dshills/shortcuts/internal/input/key"
)

// Binding is a key combination with an optional description.
//
// Identity is the combination only: two bindings with equal combos and
// different descriptions are the same binding.
type Binding struct {
	// Combo is the key combination that triggers the binding.
	Combo key.Combo

	// Description is the display name shown for the binding.
	Description string
}

// ParseBinding parses key text into a binding without a description.
// It fails exactly when key.Parse fails.
func ParseBinding(text string) (Binding, error) {
	combo, err := key.Parse(text)
	if err != nil {
		return Binding{}, err
	}
	return Binding{Combo: combo}, nil
}

// MustParseBinding is like ParseBinding but panics on error.
func MustParseBinding(text string) Binding {
	b, err := ParseBinding(text)
	if err != nil {
		panic(err)
	}
	return b
}

// Key returns the comparable identity of the binding.
func (b Binding) Key() key.Combo {
	return b.Combo
}

// IsSet reports whether the binding names a non-modifier key.
func (b Binding) IsSet() bool {
	return b.Combo.IsSet()
}

// WithDescription returns a copy of b with the description replaced.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// String returns the canonical key text, e.g. "Super+L".
func (b Binding) String() string {
	return b.Combo.String()
}

// Entry is one binding of the backing configuration together with the
// action it triggers.
type Entry struct {
	Binding Binding
	Action  Action
}
