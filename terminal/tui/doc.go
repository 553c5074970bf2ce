// Package tui provides immediate-mode drawing primitives over a terminal cell buffer.
//
// Region is the core abstraction: a clipped rectangular window into a
// row-major []terminal.Cell. Every drawing call is relative to the region
// origin and silently discards writes outside it, so widgets never need
// their own bounds checks.
//
// Styles layer: a zero Fg or Bg in a Style leaves the color already in the
// cell untouched, which lets text inherit the panel background it is drawn on.
//
// Usage pattern:
//
//	cells := make([]terminal.Cell, w*h)
//	root := tui.NewRegion(cells, w, 0, 0, w, h)
//	root.Fill(theme.Bg)
//
//	inner := root.Block("Skills", tui.Style{Fg: theme.Title}, tui.LineSingle, tui.Style{Fg: theme.Border})
//	inner.Gauge(0, 1, 72, "", filled, empty)
//
//	term.Flush(cells, w, h)
package tui
