package page

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Registry errors.
var (
	ErrDuplicateID = errors.New("page already registered")
	ErrEmptyID     = errors.New("page ID cannot be empty")
)

// Entity identifies a registered page.
type Entity int

// Handle is the typed result of registering a page.
type Handle[P Page] struct {
	entity Entity
	page   P
}

// Entity returns the registry entity of the page.
func (h Handle[P]) Entity() Entity {
	return h.entity
}

// Page returns the page with its concrete type.
func (h Handle[P]) Page() P {
	return h.page
}

// Registry holds pages in registration order and tracks the active page.
type Registry struct {
	pages  []Page
	byID   map[string]Entity
	active Entity
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[string]Entity),
		active: -1,
	}
}

// Register adds p to r.
func Register[P Page](r *Registry, p P) (Handle[P], error) {
	id := p.Info().ID
	if id == "" {
		return Handle[P]{}, ErrEmptyID
	}
	if _, ok := r.byID[id]; ok {
		return Handle[P]{}, fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}

	e := Entity(len(r.pages))
	r.pages = append(r.pages, p)
	r.byID[id] = e
	return Handle[P]{entity: e, page: p}, nil
}

// Get returns the page for e.
func (r *Registry) Get(e Entity) (Page, bool) {
	if e < 0 || int(e) >= len(r.pages) {
		return nil, false
	}
	return r.pages[e], true
}

// Lookup returns the entity of the page with the given ID.
func (r *Registry) Lookup(id string) (Entity, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// Pages returns the pages in registration order.
func (r *Registry) Pages() []Page {
	return append([]Page(nil), r.pages...)
}

// Active returns the visible page, if any.
func (r *Registry) Active() (Page, bool) {
	return r.Get(r.active)
}

// Activate makes e the visible page, calling OnLeave on the previous page
// and OnEnter on the new one.
func (r *Registry) Activate(e Entity) error {
	next, ok := r.Get(e)
	if !ok {
		return fmt.Errorf("unknown page entity %d", e)
	}
	if prev, ok := r.Active(); ok && e != r.active {
		prev.OnLeave()
	}
	r.active = e
	return next.OnEnter()
}

// Match is a search hit.
type Match struct {
	Entity  Entity
	Section Section
	// Score ranks fuzzy matches; higher is better.
	Score int
}

// SearchRegexp returns every section matching re, in page order.
func (r *Registry) SearchRegexp(re *regexp.Regexp) []Match {
	var out []Match
	for i, p := range r.pages {
		for _, s := range p.Sections() {
			if s.SearchMatches(re) {
				out = append(out, Match{Entity: Entity(i), Section: s})
			}
		}
	}
	return out
}

// searchSource adapts the registry sections to fuzzy.Source.
type searchSource []Match

func (s searchSource) String(i int) string {
	sec := s[i].Section
	return sec.Title + " " + strings.Join(sec.Descriptions, " ")
}

func (s searchSource) Len() int {
	return len(s)
}

// Search fuzzy-matches query against section titles and descriptions.
// Results are ordered best first. An empty query matches nothing.
func (r *Registry) Search(query string) []Match {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	var src searchSource
	for i, p := range r.pages {
		for _, s := range p.Sections() {
			src = append(src, Match{Entity: Entity(i), Section: s})
		}
	}

	results := fuzzy.FindFrom(query, src)
	out := make([]Match, len(results))
	for i, res := range results {
		m := src[res.Index]
		m.Score = res.Score
		out[i] = m
	}
	return out
}
