package shortcut

import (
	"fmt"

	"github.com/dshills/shortcuts/internal/input/key"
	"github.com/dshills/shortcuts/internal/logging"
)

// Model is one spawn action and every binding that triggers it.
type Model struct {
	// Action is the spawn action shared by all bindings of the model.
	Action Action

	// Description is the display name of the shortcut.
	Description string

	// Bindings holds the bindings in the order they were added.
	// No two bindings share a combination.
	Bindings []Binding

	// Modified is bumped every time the model changes.
	Modified uint
}

// Has reports whether the model contains the binding.
func (m *Model) Has(b Binding) bool {
	return m.indexOf(b.Combo) >= 0
}

func (m *Model) indexOf(c key.Combo) int {
	for i, mb := range m.Bindings {
		if mb.Combo == c {
			return i
		}
	}
	return -1
}

func (m *Model) clone() Model {
	out := *m
	out.Bindings = append([]Binding(nil), m.Bindings...)
	return out
}

// Store groups the spawn bindings of a Config by action.
//
// Store is not safe for concurrent use; callers mutate it from a single
// goroutine.
type Store struct {
	config Config
	log    *logging.Logger

	// models in first-seen order.
	models []*Model

	// byAction indexes models by their action.
	byAction map[Action]*Model
}

// NewStore creates a store backed by cfg. A nil logger disables logging.
// The store is empty until Rebuild is called.
func NewStore(cfg Config, log *logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{
		config:   cfg,
		log:      log.WithComponent("shortcut.store"),
		byAction: make(map[Action]*Model),
	}
}

// Config returns the backing configuration.
func (s *Store) Config() Config {
	return s.config
}

// Rebuild discards the models and regroups every spawn binding of the
// configuration. Repeated entries for an action merge their bindings and
// the last seen description wins. A binding without a description is
// described by its command.
func (s *Store) Rebuild() error {
	if s.config == nil {
		return ErrNoConfig
	}

	s.models = s.models[:0]
	s.byAction = make(map[Action]*Model)

	for _, e := range s.config.All() {
		if !e.Action.IsSpawn() || !e.Binding.IsSet() {
			continue
		}

		desc := e.Binding.Description
		if desc == "" {
			desc = e.Action.Value
		}

		m, ok := s.byAction[e.Action]
		if !ok {
			m = &Model{Action: e.Action}
			s.byAction[e.Action] = m
			s.models = append(s.models, m)
		}
		m.Description = desc
		if !m.Has(e.Binding) {
			m.Bindings = append(m.Bindings, e.Binding)
		}
	}

	s.log.Debug("rebuilt shortcut models", "models", len(s.models))
	return nil
}

// Models returns a snapshot of the models in first-seen order.
func (s *Store) Models() []Model {
	out := make([]Model, len(s.models))
	for i, m := range s.models {
		out[i] = m.clone()
	}
	return out
}

// Model returns a snapshot of the model for action.
func (s *Store) Model(a Action) (Model, bool) {
	m, ok := s.byAction[a]
	if !ok {
		return Model{}, false
	}
	return m.clone(), true
}

// Len returns the number of models.
func (s *Store) Len() int {
	return len(s.models)
}

// Contains reports the action owning b anywhere in the configuration,
// including built-in defaults and other custom shortcuts.
func (s *Store) Contains(b Binding) (Action, bool) {
	if s.config == nil {
		return Action{}, false
	}
	return s.config.Contains(b)
}

// Add binds b to the spawn action a and persists it.
//
// Add never overwrites: if the combination is owned by any action,
// ErrBindingOwned is returned and nothing changes. The model is only
// updated once the configuration accepted the binding.
func (s *Store) Add(a Action, b Binding) error {
	if s.config == nil {
		return ErrNoConfig
	}
	if !a.IsSpawn() {
		return fmt.Errorf("%w: %s", ErrNotSpawn, a)
	}
	if !b.IsSet() {
		return ErrEmptyBinding
	}
	if owner, ok := s.config.Contains(b); ok {
		return fmt.Errorf("%w: %s by %s", ErrBindingOwned, b, owner)
	}

	if err := s.config.Add(a, b); err != nil {
		return fmt.Errorf("add %s: %w", b, err)
	}

	m, ok := s.byAction[a]
	if !ok {
		m = &Model{Action: a, Description: a.Value}
		s.byAction[a] = m
		s.models = append(s.models, m)
	}
	if b.Description != "" {
		m.Description = b.Description
	}
	m.Bindings = append(m.Bindings, b)
	m.Modified++

	s.log.Info("shortcut added", "keys", b.String(), "action", a.String())
	return nil
}

// Remove deletes b wherever it lives and persists the change. A model
// left without bindings is dropped.
func (s *Store) Remove(b Binding) error {
	if s.config == nil {
		return ErrNoConfig
	}

	if err := s.config.Remove(b); err != nil {
		return fmt.Errorf("remove %s: %w", b, err)
	}

	for i, m := range s.models {
		idx := m.indexOf(b.Combo)
		if idx < 0 {
			continue
		}
		m.Bindings = append(m.Bindings[:idx], m.Bindings[idx+1:]...)
		m.Modified++
		if len(m.Bindings) == 0 {
			delete(s.byAction, m.Action)
			s.models = append(s.models[:i], s.models[i+1:]...)
		}
		break
	}

	s.log.Info("shortcut removed", "keys", b.String())
	return nil
}
