package layout

// Split divides r along dir into one child per constraint.
//
// margin shrinks r on every side first (negative counts as zero). Fixed and
// Percent children are sized in list order, each clamped to what is left.
// Min children then take their floor from what remains and share the rest
// evenly, earlier ones receiving the division remainder. Without any Min
// child the last child absorbs the leftover.
//
// The children are disjoint and exactly tile the post-margin rect. An empty
// constraint list or a zero extent along dir yields nil.
func Split(r Rect, dir Direction, cs []Constraint, margin int) []Rect {
	if len(cs) == 0 {
		return nil
	}

	inner := r.Inset(margin)
	extent := inner.H
	if dir == Horizontal {
		extent = inner.W
	}
	if extent <= 0 {
		return nil
	}

	sizes := allocate(extent, cs)

	out := make([]Rect, len(cs))
	offset := 0
	for i, size := range sizes {
		if dir == Horizontal {
			out[i] = Rect{X: inner.X + offset, Y: inner.Y, W: size, H: inner.H}
		} else {
			out[i] = Rect{X: inner.X, Y: inner.Y + offset, W: inner.W, H: size}
		}
		offset += size
	}
	return out
}

// allocate returns sizes summing to exactly extent
func allocate(extent int, cs []Constraint) []int {
	sizes := make([]int, len(cs))
	remaining := extent
	var mins []int

	for i, c := range cs {
		var s int
		switch c.Kind {
		case KindFixed:
			s = max(c.Value, 0)
		case KindPercent:
			s = extent * min(max(c.Value, 0), 100) / 100
		case KindMin:
			mins = append(mins, i)
			continue
		}
		s = min(s, remaining)
		sizes[i] = s
		remaining -= s
	}

	if len(mins) == 0 {
		sizes[len(sizes)-1] += remaining
		return sizes
	}

	for _, i := range mins {
		floor := min(max(cs[i].Value, 0), remaining)
		sizes[i] = floor
		remaining -= floor
	}

	share, extra := remaining/len(mins), remaining%len(mins)
	for j, i := range mins {
		sizes[i] += share
		if j < extra {
			sizes[i]++
		}
	}
	return sizes
}
