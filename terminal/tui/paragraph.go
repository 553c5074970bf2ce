package tui

// Paragraph draws markup text into the region starting at the top row.
// Explicit newlines always break; with wrap each line is re-flowed to the region
// width, otherwise lines are clipped. Rows past the bottom are dropped.
// Returns the number of rows drawn.
func (r Region) Paragraph(text string, base Style, wrap bool, tabWidth int) int {
	if r.Empty() {
		return 0
	}

	y := 0
	for _, line := range SplitLines(ParseMarkup(ExpandTabs(text, tabWidth))) {
		rows := []Line{line}
		if wrap {
			rows = WrapLine(line, r.W)
		}
		for _, row := range rows {
			if y >= r.H {
				return y
			}
			r.Spans(0, y, row, base)
			y++
		}
	}
	return y
}
