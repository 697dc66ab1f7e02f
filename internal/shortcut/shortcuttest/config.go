// Package shortcuttest provides an in-memory shortcut.Config for tests.
package shortcuttest

import (
	"errors"

	"github.com/dshills/shortcuts/internal/input/key"
	"github.com/dshills/shortcuts/internal/shortcut"
)

// ErrNotFound is returned by Remove for a binding the config does not hold.
var ErrNotFound = errors.New("binding not found")

// Config is an ordered in-memory shortcut.Config.
//
// AddErr and RemoveErr, when set, are returned by the next calls to Add
// and Remove without changing anything.
type Config struct {
	entries []shortcut.Entry

	AddErr    error
	RemoveErr error

	// Adds and Removes count successful mutations.
	Adds    int
	Removes int
}

// New returns a config holding entries in order.
func New(entries ...shortcut.Entry) *Config {
	return &Config{entries: append([]shortcut.Entry(nil), entries...)}
}

// Entry builds an entry from key text, panicking on invalid keys.
func Entry(keys, description string, action shortcut.Action) shortcut.Entry {
	b := shortcut.MustParseBinding(keys)
	b.Description = description
	return shortcut.Entry{Binding: b, Action: action}
}

func (c *Config) index(combo key.Combo) int {
	for i, e := range c.entries {
		if e.Binding.Combo == combo {
			return i
		}
	}
	return -1
}

// Contains implements shortcut.Config.
func (c *Config) Contains(b shortcut.Binding) (shortcut.Action, bool) {
	if i := c.index(b.Combo); i >= 0 {
		return c.entries[i].Action, true
	}
	return shortcut.Action{}, false
}

// Add implements shortcut.Config. An existing entry for the combination is
// replaced in place.
func (c *Config) Add(a shortcut.Action, b shortcut.Binding) error {
	if c.AddErr != nil {
		return c.AddErr
	}
	c.Adds++
	e := shortcut.Entry{Binding: b, Action: a}
	if i := c.index(b.Combo); i >= 0 {
		c.entries[i] = e
		return nil
	}
	c.entries = append(c.entries, e)
	return nil
}

// Remove implements shortcut.Config.
func (c *Config) Remove(b shortcut.Binding) error {
	if c.RemoveErr != nil {
		return c.RemoveErr
	}
	i := c.index(b.Combo)
	if i < 0 {
		return ErrNotFound
	}
	c.Removes++
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	return nil
}

// All implements shortcut.Config.
func (c *Config) All() []shortcut.Entry {
	return append([]shortcut.Entry(nil), c.entries...)
}

var _ shortcut.Config = (*Config)(nil)
