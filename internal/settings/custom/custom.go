// Package custom is the custom shortcuts settings page.
//
// The page lists every custom shortcut, lets the user add a new one
// through a draft form, and walks the user through replace decisions when
// submitted keys are already taken.
package custom

import (
	"github.com/dshills/shortcuts/internal/logging"
	"github.com/dshills/shortcuts/internal/settings/page"
	"github.com/dshills/shortcuts/internal/shortcut"
	"github.com/dshills/shortcuts/internal/shortcut/draft"
)

// ID is the page identifier.
const ID = "custom-shortcuts"

// Page coordinates the draft form, the model store and the replace queue.
//
// Page is not safe for concurrent use; all calls come from the UI loop.
type Page struct {
	store   *shortcut.Store
	draft   *draft.Draft
	queue   shortcut.ReplaceQueue
	labeler shortcut.Labeler
	log     *logging.Logger

	// submission is the draft whose conflicts are in the queue.
	submission draft.Submission

	drawerOpen bool
	shown      shortcut.Action
	lastErr    error
}

// New creates the page over store.
func New(store *shortcut.Store, log *logging.Logger) *Page {
	if log == nil {
		log = logging.Nop()
	}
	return &Page{
		store:   store,
		draft:   draft.New(log),
		labeler: shortcut.Label,
		log:     log.WithComponent("page.custom"),
	}
}

// SetLabeler replaces the owner labeler used for replace prompts.
func (p *Page) SetLabeler(l shortcut.Labeler) {
	p.labeler = l
}

// Info implements page.Page.
func (p *Page) Info() page.Info {
	return page.Info{
		ID:    ID,
		Title: "Custom Shortcuts",
		Icon:  "input-keyboard-symbolic",
	}
}

// Sections implements page.Page.
func (p *Page) Sections() []page.Section {
	descs := []string{"Add shortcut"}
	for _, m := range p.store.Models() {
		descs = append(descs, m.Description)
	}
	return []page.Section{{Title: "Custom Shortcuts", Descriptions: descs}}
}

// OnEnter implements page.Page by rebuilding the models from the
// configuration.
func (p *Page) OnEnter() error {
	return p.store.Rebuild()
}

// OnLeave implements page.Page. Unfinished work is abandoned.
func (p *Page) OnLeave() {
	p.draft.Close()
	p.queue.Clear()
	p.drawerOpen = false
	p.shown = shortcut.Action{}
}

// OnContextClose implements page.Page.
func (p *Page) OnContextClose() {
	if p.queue.Empty() {
		p.draft.Close()
	}
	p.drawerOpen = false
	p.shown = shortcut.Action{}
}

// Draft returns the add-shortcut form.
func (p *Page) Draft() *draft.Draft {
	return p.draft
}

// Models returns the custom shortcuts.
func (p *Page) Models() []shortcut.Model {
	return p.store.Models()
}

// Model returns the custom shortcut of a.
func (p *Page) Model(a shortcut.Action) (shortcut.Model, bool) {
	return p.store.Model(a)
}

// Pending returns the replace decision currently presented.
func (p *Page) Pending() (shortcut.PendingConflict, bool) {
	return p.queue.Top()
}

// PendingCount returns the number of replace decisions left.
func (p *Page) PendingCount() int {
	return p.queue.Len()
}

// DrawerOpen reports whether the add-shortcut drawer is shown. It stays
// open while replace decisions are pending.
func (p *Page) DrawerOpen() bool {
	return p.drawerOpen || !p.queue.Empty()
}

// OpenDrawer resets the form and shows it, focusing the name field. It
// does nothing while replace decisions of the last submission are pending.
func (p *Page) OpenDrawer() draft.Effect {
	if !p.queue.Empty() {
		return draft.Effect{}
	}
	p.draft.Open()
	p.drawerOpen = true
	p.shown = shortcut.Action{}
	return draft.Effect{Kind: draft.EffectFocus, Field: draft.FieldName}
}

// ShowShortcut switches the context drawer to an existing shortcut,
// closing the add form.
func (p *Page) ShowShortcut(a shortcut.Action) {
	p.drawerOpen = false
	p.shown = a
}

// Shown returns the shortcut whose details are shown, if any.
func (p *Page) Shown() (shortcut.Action, bool) {
	return p.shown, !p.shown.IsZero()
}

// LastError returns the most recent persistence failure and clears it.
func (p *Page) LastError() error {
	err := p.lastErr
	p.lastErr = nil
	return err
}

func (p *Page) fail(err error) {
	p.lastErr = err
	p.log.Error("saving shortcut failed", "error", err)
}

// Submit validates the form and commits it. Free keys are added right
// away; taken keys are queued for a replace decision. It reports whether
// the form was accepted; a rejected form stays open unchanged. Nothing is
// accepted while replace decisions are pending.
func (p *Page) Submit() bool {
	if !p.queue.Empty() {
		return false
	}
	sub, ok := p.draft.Submit()
	if !ok {
		return false
	}

	res := shortcut.Resolve(sub.Bindings, p.store, p.labeler)
	action := sub.Action()
	for _, b := range res.Direct {
		if err := p.store.Add(action, b.WithDescription(sub.Name)); err != nil {
			p.fail(err)
		}
	}
	p.log.Info("shortcut submitted",
		"session", p.draft.Session().String(),
		"name", sub.Name,
		"added", len(res.Direct),
		"conflicts", len(res.Queued),
	)

	p.submission = sub
	p.queue.Push(res.Queued...)
	if p.queue.Empty() {
		p.finish()
	}
	return true
}

// Apply replaces the owner of the presented conflict with the submitted
// shortcut.
func (p *Page) Apply() {
	c, ok := p.queue.Top()
	if !ok {
		return
	}
	drained, err := p.queue.Apply(p.store, p.submission.Action(), p.submission.Name)
	if err != nil {
		p.fail(err)
	} else {
		p.log.Info("shortcut replaced", "keys", c.Binding.String(), "previous", c.Owner.String())
	}
	if drained {
		p.finish()
	}
}

// Cancel keeps the current owner of the presented conflict.
func (p *Page) Cancel() {
	c, ok := p.queue.Top()
	if !ok {
		return
	}
	p.log.Debug("replace cancelled", "keys", c.Binding.String())
	if p.queue.Cancel() {
		p.finish()
	}
}

// Remove deletes a binding from the configuration.
func (p *Page) Remove(b shortcut.Binding) error {
	if err := p.store.Remove(b); err != nil {
		p.fail(err)
		return err
	}
	return nil
}

// finish closes the form once every decision is made.
func (p *Page) finish() {
	p.draft.Close()
	p.drawerOpen = false
	p.submission = draft.Submission{}
	if err := p.store.Rebuild(); err != nil {
		p.log.Warn("rebuilding shortcuts failed", "error", err)
	}
}

var _ page.Page = (*Page)(nil)
