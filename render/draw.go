package render

import (
	"github.com/lixenwraith/cvterm/constants"
	"github.com/lixenwraith/cvterm/content"
	"github.com/lixenwraith/cvterm/layout"
	"github.com/lixenwraith/cvterm/terminal/tui"
)

// Draw paints node into r. Writes never leave r or the buffer. The result depends
// only on the arguments and the buffer contents under r.
func Draw(buf *Buffer, node content.Node, r layout.Rect, theme tui.Theme) {
	r = r.Intersect(buf.Bounds())
	if r.Empty() {
		return
	}

	switch n := node.(type) {
	case *content.Split:
		rects := layout.Split(r, n.Direction, n.Constraints, n.Margin)
		for i, child := range n.Children {
			if i >= len(rects) {
				break
			}
			if rects[i].Empty() {
				continue
			}
			Draw(buf, child, rects[i], theme)
		}
	case *content.Stack:
		for _, child := range n.Children {
			Draw(buf, child, r, theme)
		}
	case *content.Block:
		drawBlock(buf.Region(r), n, theme)
	}
}

func drawBlock(reg tui.Region, b *content.Block, theme tui.Theme) {
	base := theme.Base().Patch(b.Style)
	reg.FillStyle(tui.Style{Fg: base.Fg, Bg: base.Bg})

	titleStyle := base.Patch(tui.Style{Fg: theme.Title}).Patch(b.TitleStyle)
	inner := reg
	switch {
	case b.Borders:
		borderStyle := base.Patch(tui.Style{Fg: theme.Border}).Patch(b.BorderStyle)
		inner = reg.Block(b.Title, titleStyle, b.Line, borderStyle)
	case b.Title != "":
		inner = reg.Title(b.Title, titleStyle)
	}
	if inner.Empty() || b.Widget == nil {
		return
	}

	switch w := b.Widget.(type) {
	case *content.Paragraph:
		inner.Paragraph(w.Text, base, w.Wrap, constants.TabWidth)
	case *content.Gauge:
		filled, empty := gaugeStyles(w.Style, theme)
		inner.Gauge(w.Percent, w.Label, filled, empty)
	case *content.List:
		selected := -1
		if w.Selected != nil {
			selected = *w.Selected
		}
		highlight := tui.Style{Bg: theme.Highlight}.Patch(w.HighlightStyle)
		inner.List(w.Items, selected, base, highlight)
	case *content.Tabs:
		inactive := base
		if b.Style.Fg.IsZero() {
			inactive.Fg = theme.TabInactive
		}
		active := inactive.Patch(tui.Style{Fg: theme.TabActive}).Patch(w.HighlightStyle)
		inner.TabBar(0, w.Titles, w.Selected, tui.TabBarOpts{
			ActiveStyle:   active,
			InactiveStyle: inactive,
			Separator:     constants.TabSeparator,
		})
	}
}

// gaugeStyles maps a gauge style to bar segments: fg colors the filled part,
// bg the remainder, theme colors fill in what is unset
func gaugeStyles(st tui.Style, theme tui.Theme) (filled, empty tui.Style) {
	filled = tui.Style{Bg: theme.GaugeFilled, Attr: st.Attr}
	empty = tui.Style{Bg: theme.GaugeEmpty, Attr: st.Attr}
	if !st.Fg.IsZero() {
		filled.Bg = st.Fg
	}
	if !st.Bg.IsZero() {
		empty.Bg = st.Bg
	}
	return filled, empty
}
