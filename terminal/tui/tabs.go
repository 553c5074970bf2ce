package tui

// defaultSeparator is drawn between tabs when TabBarOpts leaves it empty
const defaultSeparator = " │ "

// TabBounds stores position and size of a rendered tab
type TabBounds struct {
	X, W int
}

// TabBarOpts configures tab bar rendering
type TabBarOpts struct {
	ActiveStyle   Style
	InactiveStyle Style
	Separator     string // Between tabs, default " │ "
	Padding       int    // Horizontal padding inside each tab
}

// TabBar renders horizontal tab strip at row y
// Returns bounds of each visible tab; tabs past the right edge get a zero width
func (r Region) TabBar(y int, titles []string, active int, opts TabBarOpts) []TabBounds {
	if y < 0 || y >= r.H || len(titles) == 0 {
		return nil
	}
	if opts.Separator == "" {
		opts.Separator = defaultSeparator
	}

	bounds := make([]TabBounds, len(titles))
	sepW := DisplayWidth(opts.Separator)
	x := 0

	for i, title := range titles {
		if x >= r.W {
			bounds[i] = TabBounds{X: r.W}
			continue
		}

		style := opts.InactiveStyle
		if i == active {
			style = opts.ActiveStyle
		}

		start := x
		for j := 0; j < opts.Padding && x < r.W; j++ {
			r.Put(x, y, ' ', style)
			x++
		}
		x += r.TextStyled(x, y, Truncate(title, r.W-x), style)
		for j := 0; j < opts.Padding && x < r.W; j++ {
			r.Put(x, y, ' ', style)
			x++
		}
		bounds[i] = TabBounds{X: start, W: x - start}

		if i < len(titles)-1 && x+sepW <= r.W {
			x += r.TextStyled(x, y, opts.Separator, opts.InactiveStyle)
		}
	}

	return bounds
}
