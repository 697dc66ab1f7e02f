// Package shortcut reconciles custom keyboard shortcuts against the
// backing shortcut configuration.
//
// # Key Concepts
//
// Binding: A key combination plus an optional description. Two bindings
// are the same binding when their combinations are equal; the description
// never takes part in identity.
//
// Action: What a binding triggers. Custom shortcuts always spawn a
// command; system actions (launch terminal, close window, ...) come from
// the built-in defaults and are only consulted for conflicts.
//
// Store: The grouped-by-action view of every spawn binding in the
// configuration. The Store never overwrites a binding owned by another
// action.
//
// Resolve: Splits the bindings of a submitted draft into those that can be
// added directly and those that conflict with an existing owner.
//
// ReplaceQueue: The pending replace decisions. Decisions are presented one
// at a time, most recently queued first, and each is either applied (the
// binding moves to the new action) or cancelled.
//
// # Usage
//
//	store := shortcut.NewStore(cfg, log)
//	if err := store.Rebuild(); err != nil {
//	    return err
//	}
//
//	res := shortcut.Resolve(bindings, store, shortcut.Label)
//	for _, b := range res.Direct {
//	    _ = store.Add(shortcut.Spawn(command), b)
//	}
//	queue.Push(res.Queued...)
package shortcut
