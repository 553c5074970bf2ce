// Package content defines the declarative panel tree shown in each tab and loads it
// from YAML. The tree is read-only once loaded; the renderer walks it every frame.
package content

import (
	"github.com/lixenwraith/cvterm/layout"
	"github.com/lixenwraith/cvterm/terminal/tui"
)

// Node is one element of a tab's panel tree: *Split, *Stack or *Block
type Node interface {
	node()
}

// Split partitions its rect among Children according to Constraints
type Split struct {
	Direction   layout.Direction
	Margin      int
	Constraints []layout.Constraint
	Children    []Node
}

// Stack draws every child into the same rect, in order
type Stack struct {
	Children []Node
}

// Block is a panel with an optional border, title and widget
type Block struct {
	Title       string
	TitleStyle  tui.Style
	Borders     bool
	Line        tui.LineType
	BorderStyle tui.Style
	Style       tui.Style
	Widget      Widget // nil for an empty panel or spacer
}

func (*Split) node() {}
func (*Stack) node() {}
func (*Block) node() {}

// Widget is the content drawn inside a Block: *Paragraph, *Gauge, *List or *Tabs
type Widget interface {
	widget()
}

// Paragraph is markup text, see tui.ParseMarkup
type Paragraph struct {
	Text string
	Wrap bool
}

// Gauge is a horizontal progress bar. Style.Fg colors the filled part and
// Style.Bg the rest.
type Gauge struct {
	Label   string
	Percent int
	Style   tui.Style
}

// List shows one item per row; Selected is nil when nothing is highlighted
type List struct {
	Items          []string
	Selected       *int
	HighlightStyle tui.Style
}

// Tabs is a strip of tab titles with one highlighted
type Tabs struct {
	Titles         []string
	Selected       int
	HighlightStyle tui.Style
}

func (*Paragraph) widget() {}
func (*Gauge) widget()     {}
func (*List) widget()      {}
func (*Tabs) widget()      {}

// Tab is one titled page of the deck
type Tab struct {
	Title string
	Root  Node
}

// Header styles the tab strip above the pages
type Header struct {
	Title          string
	Style          tui.Style
	HighlightStyle tui.Style
	BorderStyle    tui.Style
}

// Deck is the full content set: an ordered, non-empty list of tabs
type Deck struct {
	Header Header
	Tabs   []Tab
}

// Titles returns the tab titles in order
func (d *Deck) Titles() []string {
	titles := make([]string, len(d.Tabs))
	for i, t := range d.Tabs {
		titles[i] = t.Title
	}
	return titles
}
