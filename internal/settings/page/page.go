// Package page defines settings pages and the registry holding them.
//
// Pages of different concrete types live in one Registry behind the Page
// interface. Register returns a typed Handle, so the owner of a page keeps
// access to its concrete type without type assertions.
package page

import (
	"regexp"
)

// Info describes a page for navigation.
type Info struct {
	// ID is unique within a registry.
	ID string
	// Title is the display name.
	Title string
	// Icon names the page icon.
	Icon string
}

// Section is a searchable block of a page.
type Section struct {
	Title        string
	Descriptions []string
}

// SearchMatches reports whether the title or any description matches re.
func (s Section) SearchMatches(re *regexp.Regexp) bool {
	if re.MatchString(s.Title) {
		return true
	}
	for _, d := range s.Descriptions {
		if re.MatchString(d) {
			return true
		}
	}
	return false
}

// Page is a settings page.
type Page interface {
	// Info returns the page description.
	Info() Info

	// Sections returns the searchable content of the page.
	Sections() []Section

	// OnEnter is called when the page becomes visible.
	OnEnter() error

	// OnLeave is called when another page becomes visible.
	OnLeave()

	// OnContextClose is called when the page's context drawer is closed
	// from outside the page.
	OnContextClose()
}
