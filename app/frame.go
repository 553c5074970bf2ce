package app

import (
	"github.com/lixenwraith/cvterm/constants"
	"github.com/lixenwraith/cvterm/content"
	"github.com/lixenwraith/cvterm/layout"
)

// frameRoot composes the screen: the tab strip panel above the active tab's tree
func (a *App) frameRoot() content.Node {
	h := a.deck.Header
	header := &content.Block{
		Title:       h.Title,
		Borders:     true,
		Style:       h.Style,
		BorderStyle: h.BorderStyle,
		Widget: &content.Tabs{
			Titles:         a.tabs.Titles(),
			Selected:       a.tabs.Selected(),
			HighlightStyle: h.HighlightStyle,
		},
	}

	return &content.Split{
		Direction:   layout.Vertical,
		Constraints: []layout.Constraint{layout.Fixed(constants.HeaderHeight), layout.Min(0)},
		Children:    []content.Node{header, a.deck.Tabs[a.tabs.Selected()].Root},
	}
}
