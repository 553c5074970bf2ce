package tui

// List renders one item per row from the top, truncated to the region width.
// Empty items leave blank rows. When selected is a valid index its row is filled
// with the highlight style. Returns the number of rows rendered.
func (r Region) List(items []string, selected int, st, highlight Style) int {
	if r.Empty() || len(items) == 0 {
		return 0
	}

	rendered := 0
	for y := 0; y < r.H && y < len(items); y++ {
		rowStyle := st
		if y == selected {
			rowStyle = st.Patch(highlight)
			r.Sub(0, y, r.W, 1).FillStyle(rowStyle)
		}
		r.TextStyled(0, y, Truncate(items[y], r.W), rowStyle)
		rendered++
	}
	return rendered
}
