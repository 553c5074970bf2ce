// Package layout partitions terminal rectangles into child rectangles from
// declarative size constraints.
package layout

import "fmt"

// Rect is a rectangular area of the screen in character cells.
// W and H are never negative; a zero-area Rect is valid and draws nothing.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect builds a Rect, clamping negative sizes to zero
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: max(w, 0), H: max(h, 0)}
}

func (r Rect) String() string {
	return fmt.Sprintf("{%d,%d %dx%d}", r.X, r.Y, r.W, r.H)
}

// Right returns the first column past the rect
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first row past the rect
func (r Rect) Bottom() int { return r.Y + r.H }

// Area returns the number of cells covered
func (r Rect) Area() int { return r.W * r.H }

// Empty reports whether the rect covers no cells
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether the cell (x, y) lies inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks the rect by n on all four sides.
// A margin larger than half an extent collapses that extent to zero around its center.
func (r Rect) Inset(n int) Rect {
	if n <= 0 {
		return r
	}
	x, w := insetAxis(r.X, r.W, n)
	y, h := insetAxis(r.Y, r.H, n)
	return Rect{X: x, Y: y, W: w, H: h}
}

func insetAxis(pos, size, n int) (int, int) {
	if size-2*n <= 0 {
		return pos + size/2, 0
	}
	return pos + n, size - 2*n
}

// Intersect returns the overlapping area of r and o, empty when disjoint
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Overlaps reports whether r and o share at least one cell
func (r Rect) Overlaps(o Rect) bool {
	return !r.Intersect(o).Empty()
}
