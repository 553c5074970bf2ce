package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// ellipsis marks truncated text
const ellipsis = "…"

// DisplayWidth returns the number of terminal columns s occupies
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// RuneWidth returns the columns a single rune occupies, 0 for combining marks
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// Truncate truncates string with … suffix if it exceeds width columns
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return ellipsis
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// Clip cuts s to at most width columns without a marker
func Clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "")
}

// PadRight pads string with spaces to width columns
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// ExpandTabs replaces each tab with tabWidth spaces
func ExpandTabs(s string, tabWidth int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", max(tabWidth, 0)))
}
