package shortcut

// ReplaceQueue holds pending replace decisions. It is a stack: the most
// recently pushed conflict is presented first.
type ReplaceQueue struct {
	items []PendingConflict
}

// Push queues conflicts in order; the last one becomes the top.
func (q *ReplaceQueue) Push(conflicts ...PendingConflict) {
	q.items = append(q.items, conflicts...)
}

// Len returns the number of pending decisions.
func (q *ReplaceQueue) Len() int {
	return len(q.items)
}

// Empty reports whether no decision is pending.
func (q *ReplaceQueue) Empty() bool {
	return len(q.items) == 0
}

// Top returns the conflict currently presented to the user.
func (q *ReplaceQueue) Top() (PendingConflict, bool) {
	if len(q.items) == 0 {
		return PendingConflict{}, false
	}
	return q.items[len(q.items)-1], true
}

// Pending returns a copy of the queued conflicts, top first.
func (q *ReplaceQueue) Pending() []PendingConflict {
	out := make([]PendingConflict, len(q.items))
	for i := range q.items {
		out[i] = q.items[len(q.items)-1-i]
	}
	return out
}

func (q *ReplaceQueue) pop() (PendingConflict, bool) {
	c, ok := q.Top()
	if ok {
		q.items = q.items[:len(q.items)-1]
	}
	return c, ok
}

// Apply resolves the top conflict by moving its binding from the current
// owner to action, described by description. It reports whether the queue
// is now empty.
//
// The decision is consumed even when persisting fails: the error is
// returned and nothing is rolled back. An empty queue is a no-op.
func (q *ReplaceQueue) Apply(store Mutator, action Action, description string) (bool, error) {
	c, ok := q.pop()
	if !ok {
		return true, nil
	}

	if err := store.Remove(c.Binding); err != nil {
		return q.Empty(), err
	}
	b := c.Binding.WithDescription(description)
	if err := store.Add(action, b); err != nil {
		return q.Empty(), err
	}
	return q.Empty(), nil
}

// Cancel drops the top conflict, leaving the current owner in place. It
// reports whether the queue is now empty. An empty queue is a no-op.
func (q *ReplaceQueue) Cancel() bool {
	q.pop()
	return q.Empty()
}

// Clear drops every pending decision.
func (q *ReplaceQueue) Clear() {
	q.items = nil
}
