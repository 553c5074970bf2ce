package tui

import "github.com/lixenwraith/cvterm/terminal"

// Text renders text at position, truncates at region edge.
// Returns the number of columns consumed.
func (r Region) Text(x, y int, s string, fg, bg terminal.RGB, attr terminal.Attr) int {
	return r.TextStyled(x, y, s, Style{Fg: fg, Bg: bg, Attr: attr})
}

// TextStyled renders text layered over existing cells, see Put
func (r Region) TextStyled(x, y int, s string, st Style) int {
	if y < 0 || y >= r.H {
		return 0
	}
	col := x
	for _, ch := range s {
		w := RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > r.W {
			break
		}
		r.Put(col, y, ch, st)
		// Second half of a wide rune, skipped by the output writer
		if w == 2 {
			r.Put(col+1, y, 0, st)
		}
		col += w
	}
	return col - x
}

// TextCenter renders text centered on row
func (r Region) TextCenter(y int, s string, st Style) int {
	x := (r.W - DisplayWidth(s)) / 2
	return r.TextStyled(max(x, 0), y, s, st)
}

// Spans renders a styled line at (x, y) over base, clipped at the region edge
func (r Region) Spans(x, y int, line Line, base Style) int {
	col := x
	for _, sp := range line {
		if col >= r.W {
			break
		}
		col += r.TextStyled(col, y, sp.Text, base.Patch(sp.Style))
	}
	return col - x
}
