// Package tabs holds the tab selection state: an ordered, non-empty title list
// and one selected index that wraps around in both directions.
package tabs

import "errors"

// ErrNoTabs is returned by New for an empty title list
var ErrNoTabs = errors.New("tabs: at least one title required")

// Set is the tab selection state. Invariant: 0 <= selected < len(titles).
// Not safe for concurrent use; the application loop owns it.
type Set struct {
	titles   []string
	selected int
}

// New creates a set with the first tab selected
func New(titles ...string) (*Set, error) {
	if len(titles) == 0 {
		return nil, ErrNoTabs
	}
	return &Set{titles: append([]string(nil), titles...)}, nil
}

// Next selects the following tab, wrapping to the first
func (s *Set) Next() {
	s.selected = (s.selected + 1) % len(s.titles)
}

// Previous selects the preceding tab, wrapping to the last
func (s *Set) Previous() {
	if s.selected == 0 {
		s.selected = len(s.titles) - 1
		return
	}
	s.selected--
}

// Selected returns the index of the active tab
func (s *Set) Selected() int {
	return s.selected
}

// Title returns the title of the active tab
func (s *Set) Title() string {
	return s.titles[s.selected]
}

// Titles returns a copy of all titles in order
func (s *Set) Titles() []string {
	return append([]string(nil), s.titles...)
}

// Len returns the number of tabs
func (s *Set) Len() int {
	return len(s.titles)
}
