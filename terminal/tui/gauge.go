package tui

import "strconv"

// ClampPercent limits p to [0, 100]
func ClampPercent(p int) int {
	return min(max(p, 0), 100)
}

// GaugeLabel returns the default "<n>%" label for a clamped percentage
func GaugeLabel(percent int) string {
	return strconv.Itoa(ClampPercent(percent)) + "%"
}

// Gauge fills every row of the region as a horizontal bar. percent is clamped to
// [0, 100] and the filled width truncates. filled and empty supply the bar colors
// through their Bg. The label is centered on the middle row, with its colors
// inverted against the bar segment beneath each character. An empty label
// defaults to the percentage.
func (r Region) Gauge(percent int, label string, filled, empty Style) {
	if r.Empty() {
		return
	}
	percent = ClampPercent(percent)
	fillW := r.W * percent / 100

	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			if x < fillW {
				r.Put(x, y, ' ', filled)
			} else {
				r.Put(x, y, ' ', empty)
			}
		}
	}

	if label == "" {
		label = GaugeLabel(percent)
	}
	label = Clip(label, r.W)
	labelY := r.H / 2
	col := (r.W - DisplayWidth(label)) / 2

	onFilled := Style{Fg: empty.Bg, Bg: filled.Bg, Attr: filled.Attr}
	onEmpty := Style{Fg: filled.Bg, Bg: empty.Bg, Attr: empty.Attr}
	for _, ch := range label {
		w := RuneWidth(ch)
		if w == 0 {
			continue
		}
		st := onEmpty
		if col < fillW {
			st = onFilled
		}
		r.Put(col, labelY, ch, st)
		if w == 2 {
			r.Put(col+1, labelY, 0, st)
		}
		col += w
	}
}
