package app

import "fmt"

// InitError reports a component that failed to start, and the file it
// was working on when one is involved.
type InitError struct {
	Component string
	Path      string
	Err       error
}

func (e *InitError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("shortcuts: %s: %v", e.Component, e.Err)
	}
	return fmt.Sprintf("shortcuts: %s %s: %v", e.Component, e.Path, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}
