// Package render paints content trees into a cell buffer that is flushed to a terminal.
package render

import (
	"github.com/lixenwraith/cvterm/layout"
	"github.com/lixenwraith/cvterm/terminal"
	"github.com/lixenwraith/cvterm/terminal/tui"
)

// Buffer is the frame being composed, backed by terminal.Cell for zero-copy flush
type Buffer struct {
	cells  []terminal.Cell
	width  int
	height int
	bg     terminal.RGB
}

// NewBuffer creates a cleared buffer with the given dimensions and background
func NewBuffer(width, height int, bg terminal.RGB) *Buffer {
	b := &Buffer{bg: bg}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]terminal.Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to blanks on the background color using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = terminal.Cell{Rune: ' ', Bg: b.bg}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// SetBackground changes the clear color; takes effect on the next Clear
func (b *Buffer) SetBackground(bg terminal.RGB) {
	b.bg = bg
}

// Size returns buffer dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Bounds returns the whole buffer as a rect
func (b *Buffer) Bounds() layout.Rect {
	return layout.NewRect(0, 0, b.width, b.height)
}

// Cells exposes the backing slice, row-major
func (b *Buffer) Cells() []terminal.Cell {
	return b.cells
}

// Get returns the cell at (x, y), zero when out of bounds
func (b *Buffer) Get(x, y int) terminal.Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return terminal.Cell{}
	}
	return b.cells[y*b.width+x]
}

// Region returns a drawing region for r clipped to the buffer
func (b *Buffer) Region(r layout.Rect) tui.Region {
	r = r.Intersect(b.Bounds())
	return tui.NewRegion(b.cells, b.width, r.X, r.Y, r.W, r.H)
}

// FlushTo writes the buffer to the terminal
func (b *Buffer) FlushTo(term terminal.Terminal) {
	term.Flush(b.cells, b.width, b.height)
}
