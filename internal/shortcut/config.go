package shortcut

// Config is the backing shortcut configuration.
//
// Contains answers for the whole configuration, built-in defaults and
// custom shortcuts alike. All returns every binding in configuration
// order. Add and Remove persist immediately; a returned error means the
// change could not be saved.
type Config interface {
	Contains(b Binding) (Action, bool)
	Add(a Action, b Binding) error
	Remove(b Binding) error
	All() []Entry
}

// Owners reports which action, if any, owns a binding.
type Owners interface {
	Contains(b Binding) (Action, bool)
}

// Mutator adds and removes bindings.
type Mutator interface {
	Add(a Action, b Binding) error
	Remove(b Binding) error
}
