package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshills/shortcuts/internal/config/loader"
	"github.com/dshills/shortcuts/internal/input/key"
	"github.com/dshills/shortcuts/internal/logging"
	"github.com/dshills/shortcuts/internal/shortcut"
)

// CustomFileName is the name of the custom shortcuts file.
const CustomFileName = "custom.toml"

// customFile is the on-disk layout of the custom shortcuts file.
type customFile struct {
	Disabled  []string      `toml:"disabled,omitempty"`
	Shortcuts []customEntry `toml:"shortcut"`
}

type customEntry struct {
	Keys        string `toml:"keys"`
	Description string `toml:"description,omitempty"`
	Action      string `toml:"action"`
	Command     string `toml:"command,omitempty"`
	Name        string `toml:"name,omitempty"`
}

// File is the shortcut configuration: read-only built-in defaults
// overlaid by custom shortcuts persisted to a TOML file.
//
// File implements shortcut.Config. It is not safe for concurrent use.
type File struct {
	loader *loader.TOMLLoader
	log    *logging.Logger

	defaults []shortcut.Entry
	custom   []shortcut.Entry

	// disabled holds removed default bindings in the order they were
	// removed.
	disabled []key.Combo
}

// Option configures a File.
type Option func(*File)

// WithFS sets the file system used to read and write the custom file.
func WithFS(fs loader.FileSystem) Option {
	return func(f *File) {
		f.loader = loader.NewTOMLLoaderWithFS(fs, f.loader.Path())
	}
}

// WithDefaults replaces the built-in shortcuts.
func WithDefaults(entries []shortcut.Entry) Option {
	return func(f *File) {
		f.defaults = append([]shortcut.Entry(nil), entries...)
	}
}

// WithLogger sets the logger.
func WithLogger(log *logging.Logger) Option {
	return func(f *File) {
		if log != nil {
			f.log = log.WithComponent("config")
		}
	}
}

// Open loads the custom shortcuts file at path. A missing file is an
// empty configuration.
func Open(path string, opts ...Option) (*File, error) {
	f := &File{
		loader:   loader.NewTOMLLoader(path),
		log:      logging.Nop(),
		defaults: Defaults(),
	}
	for _, opt := range opts {
		opt(f)
	}

	if err := f.Reload(); err != nil {
		return nil, err
	}
	return f, nil
}

// DefaultDir returns the directory holding the configuration files:
// $XDG_CONFIG_HOME/shortcuts, or ~/.config/shortcuts.
func DefaultDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return filepath.Join(dir, "shortcuts"), nil
}

// Path returns the path of the custom shortcuts file.
func (f *File) Path() string {
	return f.loader.Path()
}

// Reload re-reads the custom shortcuts file, replacing the custom layer.
// On error the configuration is left unchanged.
func (f *File) Reload() error {
	var doc customFile
	if _, err := f.loader.Decode(&doc); err != nil {
		return err
	}

	custom := make([]shortcut.Entry, 0, len(doc.Shortcuts))
	for i, ce := range doc.Shortcuts {
		e, err := ce.entry()
		if err != nil {
			return &EntryError{Path: f.Path(), Index: i, Err: err}
		}
		if idx := indexOf(custom, e.Binding.Combo); idx >= 0 {
			f.log.Warn("duplicate shortcut, keeping the last", "keys", e.Binding.String())
			custom = append(custom[:idx], custom[idx+1:]...)
		}
		custom = append(custom, e)
	}

	disabled := make([]key.Combo, 0, len(doc.Disabled))
	for _, text := range doc.Disabled {
		combo, err := key.Parse(text)
		if err != nil {
			return fmt.Errorf("%s: disabled: %w", f.Path(), err)
		}
		disabled = append(disabled, combo)
	}

	f.custom = custom
	f.disabled = disabled
	f.log.Debug("loaded custom shortcuts", "path", f.Path(), "shortcuts", len(custom), "disabled", len(disabled))
	return nil
}

func (ce customEntry) entry() (shortcut.Entry, error) {
	b, err := shortcut.ParseBinding(ce.Keys)
	if err != nil {
		return shortcut.Entry{}, err
	}
	b.Description = ce.Description

	kind, err := shortcut.ParseActionKind(ce.Action)
	if err != nil {
		return shortcut.Entry{}, err
	}

	var action shortcut.Action
	switch kind {
	case shortcut.KindSpawn:
		if ce.Command == "" {
			return shortcut.Entry{}, errors.New("spawn shortcut without command")
		}
		action = shortcut.Spawn(ce.Command)
	case shortcut.KindSystem:
		if ce.Name == "" {
			return shortcut.Entry{}, errors.New("system shortcut without name")
		}
		action = shortcut.System(ce.Name)
	}
	return shortcut.Entry{Binding: b, Action: action}, nil
}

func toCustomEntry(e shortcut.Entry) customEntry {
	ce := customEntry{
		Keys:        key.FormatSpec(e.Binding.Combo),
		Description: e.Binding.Description,
		Action:      e.Action.Kind.String(),
	}
	if e.Action.Kind == shortcut.KindSystem {
		ce.Name = e.Action.Value
	} else {
		ce.Command = e.Action.Value
	}
	return ce
}

func indexOf(entries []shortcut.Entry, combo key.Combo) int {
	for i, e := range entries {
		if e.Binding.Combo == combo {
			return i
		}
	}
	return -1
}

func (f *File) isDisabled(combo key.Combo) bool {
	for _, c := range f.disabled {
		if c == combo {
			return true
		}
	}
	return false
}

// Contains implements shortcut.Config. Custom shortcuts shadow defaults.
func (f *File) Contains(b shortcut.Binding) (shortcut.Action, bool) {
	if i := indexOf(f.custom, b.Combo); i >= 0 {
		return f.custom[i].Action, true
	}
	if f.isDisabled(b.Combo) {
		return shortcut.Action{}, false
	}
	if i := indexOf(f.defaults, b.Combo); i >= 0 {
		return f.defaults[i].Action, true
	}
	return shortcut.Action{}, false
}

// All implements shortcut.Config. Active defaults come first, then the
// custom shortcuts in file order.
func (f *File) All() []shortcut.Entry {
	out := make([]shortcut.Entry, 0, len(f.defaults)+len(f.custom))
	for _, e := range f.defaults {
		if f.isDisabled(e.Binding.Combo) || indexOf(f.custom, e.Binding.Combo) >= 0 {
			continue
		}
		out = append(out, e)
	}
	return append(out, f.custom...)
}

// Custom returns the custom shortcuts in file order.
func (f *File) Custom() []shortcut.Entry {
	return append([]shortcut.Entry(nil), f.custom...)
}

// Add implements shortcut.Config. A custom entry for the same combination
// is replaced in place; otherwise the entry is appended.
func (f *File) Add(a shortcut.Action, b shortcut.Binding) error {
	if !b.IsSet() {
		return shortcut.ErrEmptyBinding
	}

	prev := f.custom
	next := append([]shortcut.Entry(nil), f.custom...)
	e := shortcut.Entry{Binding: b, Action: a}
	if i := indexOf(next, b.Combo); i >= 0 {
		next[i] = e
	} else {
		next = append(next, e)
	}

	f.custom = next
	if err := f.save(); err != nil {
		f.custom = prev
		return &PersistError{Path: f.Path(), Op: "add", Err: err}
	}
	return nil
}

// Remove implements shortcut.Config. Removing a default binding disables
// it.
func (f *File) Remove(b shortcut.Binding) error {
	prevCustom, prevDisabled := f.custom, f.disabled

	if i := indexOf(f.custom, b.Combo); i >= 0 {
		next := append([]shortcut.Entry(nil), f.custom[:i]...)
		f.custom = append(next, f.custom[i+1:]...)
	} else if indexOf(f.defaults, b.Combo) >= 0 && !f.isDisabled(b.Combo) {
		f.disabled = append(append([]key.Combo(nil), f.disabled...), b.Combo)
	} else {
		return fmt.Errorf("%w: %s", ErrNotFound, b)
	}

	if err := f.save(); err != nil {
		f.custom, f.disabled = prevCustom, prevDisabled
		return &PersistError{Path: f.Path(), Op: "remove", Err: err}
	}
	return nil
}

// Enable re-activates a disabled default binding.
func (f *File) Enable(b shortcut.Binding) error {
	prev := f.disabled
	next := make([]key.Combo, 0, len(f.disabled))
	for _, c := range f.disabled {
		if c != b.Combo {
			next = append(next, c)
		}
	}
	if len(next) == len(prev) {
		return fmt.Errorf("%w: %s", ErrNotFound, b)
	}

	f.disabled = next
	if err := f.save(); err != nil {
		f.disabled = prev
		return &PersistError{Path: f.Path(), Op: "enable", Err: err}
	}
	return nil
}

func (f *File) save() error {
	doc := customFile{
		Shortcuts: make([]customEntry, 0, len(f.custom)),
	}
	for _, c := range f.disabled {
		doc.Disabled = append(doc.Disabled, key.FormatSpec(c))
	}
	for _, e := range f.custom {
		doc.Shortcuts = append(doc.Shortcuts, toCustomEntry(e))
	}

	if err := f.loader.Save(doc); err != nil {
		return err
	}
	f.log.Debug("saved custom shortcuts", "path", f.Path(), "shortcuts", len(f.custom))
	return nil
}

var _ shortcut.Config = (*File)(nil)
