package tui

import "github.com/lixenwraith/cvterm/terminal"

// Region represents a rectangular area within a cell buffer
// All coordinates are relative to the region's origin
type Region struct {
	Cells  []terminal.Cell
	TotalW int // Total width of the underlying cell buffer
	X, Y   int // Absolute position in cell buffer
	W, H   int // Region dimensions
}

// NewRegion creates a region referencing a cell slice with bounds
func NewRegion(cells []terminal.Cell, totalW, x, y, w, h int) Region {
	return Region{
		Cells:  cells,
		TotalW: totalW,
		X:      x,
		Y:      y,
		W:      max(w, 0),
		H:      max(h, 0),
	}
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x > r.W {
		x = r.W
	}
	if y > r.H {
		y = r.H
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}

	return Region{
		Cells:  r.Cells,
		TotalW: r.TotalW,
		X:      r.X + x,
		Y:      r.Y + y,
		W:      max(w, 0),
		H:      max(h, 0),
	}
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Empty reports whether the region covers no cells
func (r Region) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// index returns the backing slice index of (x, y), or -1 when clipped
func (r Region) index(x, y int) int {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return -1
	}
	absX := r.X + x
	absY := r.Y + y
	if absX < 0 || absY < 0 || absX >= r.TotalW {
		return -1
	}
	idx := absY*r.TotalW + absX
	if idx >= len(r.Cells) {
		return -1
	}
	return idx
}

// Cell sets a single cell with bounds checking
func (r Region) Cell(x, y int, ch rune, fg, bg terminal.RGB, attr terminal.Attr) {
	if idx := r.index(x, y); idx >= 0 {
		r.Cells[idx] = terminal.Cell{Rune: ch, Fg: fg, Bg: bg, Attrs: attr}
	}
}

// Put writes ch with st layered over the existing cell: unset colors keep what is there
func (r Region) Put(x, y int, ch rune, st Style) {
	idx := r.index(x, y)
	if idx < 0 {
		return
	}
	c := r.Cells[idx]
	c.Rune = ch
	if !st.Fg.IsZero() {
		c.Fg = st.Fg
	}
	if !st.Bg.IsZero() {
		c.Bg = st.Bg
	}
	c.Attrs = st.Attr
	r.Cells[idx] = c
}

// At returns the cell at (x, y), zero when out of bounds
func (r Region) At(x, y int) terminal.Cell {
	if idx := r.index(x, y); idx >= 0 {
		return r.Cells[idx]
	}
	return terminal.Cell{}
}

// Fill fills entire region with background color
func (r Region) Fill(bg terminal.RGB) {
	r.FillStyle(Style{Bg: bg})
}

// FillStyle blanks the region and applies st on top of the existing colors
func (r Region) FillStyle(st Style) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Put(x, y, ' ', st)
		}
	}
}

// Clear fills region with spaces and zero colors
func (r Region) Clear() {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)
		}
	}
}

// Bounds returns absolute position and dimensions
func (r Region) Bounds() (x, y, w, h int) {
	return r.X, r.Y, r.W, r.H
}
