package tui

import (
	"github.com/lixenwraith/cvterm/terminal"
)

// Style bundles foreground, background, and attributes for text rendering.
// Zero colors mean "inherit from the cell underneath".
type Style struct {
	Fg   terminal.RGB
	Bg   terminal.RGB
	Attr terminal.Attr
}

// IsZero returns true if style has no colors or attributes set
func (s Style) IsZero() bool {
	return s.Fg.IsZero() && s.Bg.IsZero() && s.Attr == terminal.AttrNone
}

// Patch returns s with the set fields of over applied on top; attributes accumulate
func (s Style) Patch(over Style) Style {
	if !over.Fg.IsZero() {
		s.Fg = over.Fg
	}
	if !over.Bg.IsZero() {
		s.Bg = over.Bg
	}
	s.Attr |= over.Attr
	return s
}

// Inverted swaps foreground and background
func (s Style) Inverted() Style {
	s.Fg, s.Bg = s.Bg, s.Fg
	return s
}
