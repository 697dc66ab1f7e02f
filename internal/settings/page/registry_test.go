package page

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePage struct {
	info     Info
	sections []Section
	enterErr error

	entered, left, closed int
}

func (p *fakePage) Info() Info          { return p.info }
func (p *fakePage) Sections() []Section { return p.sections }
func (p *fakePage) OnEnter() error      { p.entered++; return p.enterErr }
func (p *fakePage) OnLeave()            { p.left++ }
func (p *fakePage) OnContextClose()     { p.closed++ }
func (p *fakePage) Counter() (int, int) { return p.entered, p.left }

func newPages() (*fakePage, *fakePage) {
	custom := &fakePage{
		info: Info{ID: "custom-shortcuts", Title: "Custom Shortcuts"},
		sections: []Section{{
			Title:        "Custom Shortcuts",
			Descriptions: []string{"Add shortcut", "Lock"},
		}},
	}
	system := &fakePage{
		info: Info{ID: "system-shortcuts", Title: "System Shortcuts"},
		sections: []Section{
			{Title: "Windows", Descriptions: []string{"Close window", "Maximize window"}},
			{Title: "Applications", Descriptions: []string{"Launch terminal"}},
		},
	}
	return custom, system
}

func TestRegisterTypedHandle(t *testing.T) {
	r := NewRegistry()
	custom, system := newPages()

	h, err := Register(r, custom)
	require.NoError(t, err)
	assert.Same(t, custom, h.Page())
	assert.Equal(t, Entity(0), h.Entity())

	// The handle keeps the concrete type.
	entered, _ := h.Page().Counter()
	assert.Equal(t, 0, entered)

	h2, err := Register(r, system)
	require.NoError(t, err)
	assert.Equal(t, Entity(1), h2.Entity())

	e, ok := r.Lookup("system-shortcuts")
	require.True(t, ok)
	assert.Equal(t, h2.Entity(), e)
	assert.Len(t, r.Pages(), 2)
}

func TestRegisterErrors(t *testing.T) {
	r := NewRegistry()
	custom, _ := newPages()

	_, err := Register(r, custom)
	require.NoError(t, err)
	_, err = Register(r, custom)
	assert.ErrorIs(t, err, ErrDuplicateID)

	_, err = Register(r, &fakePage{})
	assert.ErrorIs(t, err, ErrEmptyID)
}

func TestActivate(t *testing.T) {
	r := NewRegistry()
	custom, system := newPages()
	hc, _ := Register(r, custom)
	hs, _ := Register(r, system)

	_, ok := r.Active()
	assert.False(t, ok)

	require.NoError(t, r.Activate(hc.Entity()))
	assert.Equal(t, 1, custom.entered)

	require.NoError(t, r.Activate(hs.Entity()))
	assert.Equal(t, 1, custom.left)
	assert.Equal(t, 1, system.entered)

	active, ok := r.Active()
	require.True(t, ok)
	assert.Equal(t, "system-shortcuts", active.Info().ID)

	assert.Error(t, r.Activate(Entity(7)))

	boom := errors.New("boom")
	custom.enterErr = boom
	assert.ErrorIs(t, r.Activate(hc.Entity()), boom)
}

func TestSectionSearchMatches(t *testing.T) {
	s := Section{Title: "Custom Shortcuts", Descriptions: []string{"Lock", "Open browser"}}

	assert.True(t, s.SearchMatches(regexp.MustCompile(`(?i)custom`)))
	assert.True(t, s.SearchMatches(regexp.MustCompile(`browser$`)))
	assert.False(t, s.SearchMatches(regexp.MustCompile(`terminal`)))
}

func TestSearchRegexp(t *testing.T) {
	r := NewRegistry()
	custom, system := newPages()
	Register(r, custom)
	Register(r, system)

	matches := r.SearchRegexp(regexp.MustCompile(`(?i)window`))
	require.Len(t, matches, 1)
	assert.Equal(t, Entity(1), matches[0].Entity)
	assert.Equal(t, "Windows", matches[0].Section.Title)
}

func TestSearchFuzzy(t *testing.T) {
	r := NewRegistry()
	custom, system := newPages()
	Register(r, custom)
	Register(r, system)

	matches := r.Search("term")
	require.NotEmpty(t, matches)
	assert.Equal(t, "Applications", matches[0].Section.Title)

	assert.Empty(t, r.Search("   "))
	assert.Empty(t, r.Search("zzzzqqq"))
}
