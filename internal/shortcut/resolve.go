package shortcut

import "github.com/dshills/shortcuts/internal/input/key"

// PendingConflict is a submitted binding whose combination is already
// owned by another action, waiting for a replace decision.
type PendingConflict struct {
	// Binding is the submitted binding.
	Binding Binding

	// Owner is the action currently owning the combination.
	Owner Action

	// OwnerLabel is the user-facing name of Owner.
	OwnerLabel string
}

// Resolution is the outcome of Resolve.
type Resolution struct {
	// Direct bindings can be added without replacing anything.
	Direct []Binding

	// Queued bindings conflict with an existing owner, in candidate order.
	Queued []PendingConflict
}

// HasConflicts reports whether any candidate conflicts.
func (r Resolution) HasConflicts() bool {
	return len(r.Queued) > 0
}

// Resolve partitions candidates by ownership. Each candidate lands in
// exactly one of Direct or Queued. A combination repeated in candidates
// is only considered once. A nil labeler uses Label.
func Resolve(candidates []Binding, owners Owners, labeler Labeler) Resolution {
	if labeler == nil {
		labeler = Label
	}

	var res Resolution
	seen := make(map[key.Combo]struct{}, len(candidates))
	for _, b := range candidates {
		if _, dup := seen[b.Key()]; dup {
			continue
		}
		seen[b.Key()] = struct{}{}

		if owner, ok := owners.Contains(b); ok {
			res.Queued = append(res.Queued, PendingConflict{
				Binding:    b,
				Owner:      owner,
				OwnerLabel: labeler(owner),
			})
			continue
		}
		res.Direct = append(res.Direct, b)
	}
	return res
}
