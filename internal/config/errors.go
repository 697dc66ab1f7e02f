package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrNotFound indicates the binding is not part of the configuration.
	ErrNotFound = errors.New("binding not found")

	// ErrInvalidEntry indicates a shortcut entry in a file is malformed.
	ErrInvalidEntry = errors.New("invalid shortcut entry")
)

// PersistError is returned when a change could not be saved. The in-memory
// configuration is left as it was before the change.
type PersistError struct {
	// Path is the file that could not be written.
	Path string
	// Op is the operation that failed ("add" or "remove").
	Op string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *PersistError) Error() string {
	return fmt.Sprintf("%s: saving %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *PersistError) Unwrap() error {
	return e.Err
}

// EntryError describes a shortcut entry that could not be loaded.
type EntryError struct {
	// Path is the file containing the entry.
	Path string
	// Index is the position of the entry within the file.
	Index int
	// Err describes what is wrong with the entry.
	Err error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	return fmt.Sprintf("%s: shortcut #%d: %v", e.Path, e.Index+1, e.Err)
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// Is matches ErrInvalidEntry.
func (e *EntryError) Is(target error) bool {
	return target == ErrInvalidEntry
}
