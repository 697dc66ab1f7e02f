package shortcut

import "errors"

// Store errors.
var (
	// ErrBindingOwned is returned when adding a binding whose combination
	// already belongs to an action.
	ErrBindingOwned = errors.New("binding already owned")

	// ErrEmptyBinding is returned when adding a binding without a key.
	ErrEmptyBinding = errors.New("binding has no key")

	// ErrNotSpawn is returned when a custom shortcut targets an action
	// that does not spawn a command.
	ErrNotSpawn = errors.New("custom shortcuts must spawn a command")

	// ErrNoConfig is returned when the store has no backing configuration.
	ErrNoConfig = errors.New("no shortcut configuration")

	// ErrUnknownActionKind is returned for an unrecognized action kind.
	ErrUnknownActionKind = errors.New("unknown action kind")
)
