package tui

import "github.com/lixenwraith/cvterm/terminal"

// Theme defines the colors used when content leaves a style unset
type Theme struct {
	Bg terminal.RGB
	Fg terminal.RGB

	Border    terminal.RGB
	Title     terminal.RGB
	Highlight terminal.RGB

	GaugeFilled terminal.RGB
	GaugeEmpty  terminal.RGB

	TabActive   terminal.RGB
	TabInactive terminal.RGB
}

// DefaultTheme provides reasonable defaults
var DefaultTheme = Theme{
	Bg:          terminal.RGB{R: 20, G: 20, B: 30},
	Fg:          terminal.RGB{R: 200, G: 200, B: 200},
	Border:      terminal.RGB{R: 60, G: 80, B: 100},
	Title:       terminal.RGB{R: 80, G: 200, B: 80},
	Highlight:   terminal.RGB{R: 50, G: 50, B: 70},
	GaugeFilled: terminal.RGB{R: 80, G: 160, B: 220},
	GaugeEmpty:  terminal.RGB{R: 40, G: 40, B: 55},
	TabActive:   terminal.RGB{R: 255, G: 215, B: 0},
	TabInactive: terminal.RGB{R: 140, G: 140, B: 140},
}

// Base returns the style every panel starts from
func (t Theme) Base() Style {
	return Style{Fg: t.Fg, Bg: t.Bg}
}
