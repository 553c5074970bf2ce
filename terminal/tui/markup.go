package tui

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cvterm/terminal"
)

// Span is a run of text sharing one style
type Span struct {
	Text  string
	Style Style
}

// Line is one row of styled spans
type Line []Span

// String returns the plain text of the line
func (l Line) String() string {
	var b strings.Builder
	for _, sp := range l {
		b.WriteString(sp.Text)
	}
	return b.String()
}

// Width returns the display width of the line
func (l Line) Width() int {
	w := 0
	for _, sp := range l {
		w += DisplayWidth(sp.Text)
	}
	return w
}

// ParseMarkup splits s into styled spans. A span is written
//
//	{mod=bold;fg=yellow some text}
//
// with keys fg, bg and mod separated by ';', then one space, then the text up to
// the closing brace. Anything that does not parse, including unknown keys or
// values and a missing brace, is kept verbatim as plain text.
func ParseMarkup(s string) []Span {
	var spans []Span
	var plain strings.Builder

	flushPlain := func() {
		if plain.Len() > 0 {
			spans = append(spans, Span{Text: plain.String()})
			plain.Reset()
		}
	}

	for i := 0; i < len(s); {
		if s[i] != '{' {
			next := strings.IndexByte(s[i:], '{')
			if next < 0 {
				plain.WriteString(s[i:])
				break
			}
			plain.WriteString(s[i : i+next])
			i += next
			continue
		}

		st, text, n, ok := parseSpan(s[i:])
		if !ok {
			plain.WriteByte('{')
			i++
			continue
		}
		flushPlain()
		if text != "" {
			spans = append(spans, Span{Text: text, Style: st})
		}
		i += n
	}
	flushPlain()
	return spans
}

// parseSpan parses one "{style text}" at the start of s, returning the bytes consumed
func parseSpan(s string) (Style, string, int, bool) {
	end := strings.IndexByte(s, '}')
	if end < 0 {
		return Style{}, "", 0, false
	}
	body := s[1:end]
	if strings.IndexByte(body, '{') >= 0 {
		return Style{}, "", 0, false
	}

	attrs, text, ok := strings.Cut(body, " ")
	if !ok || attrs == "" {
		return Style{}, "", 0, false
	}

	st, ok := ParseStyleSpec(attrs)
	if !ok {
		return Style{}, "", 0, false
	}
	return st, text, end + 1, true
}

// ParseStyleSpec parses "key=value;key=value" with keys fg, bg and mod
func ParseStyleSpec(s string) (Style, bool) {
	var st Style
	for _, field := range strings.Split(s, ";") {
		key, val, ok := strings.Cut(field, "=")
		if !ok || val == "" {
			return Style{}, false
		}
		switch strings.TrimSpace(key) {
		case "fg":
			c, ok := ParseColor(val)
			if !ok {
				return Style{}, false
			}
			st.Fg = c
		case "bg":
			c, ok := ParseColor(val)
			if !ok {
				return Style{}, false
			}
			st.Bg = c
		case "mod":
			a, ok := ParseModifiers(val)
			if !ok {
				return Style{}, false
			}
			st.Attr |= a
		default:
			return Style{}, false
		}
	}
	return st, true
}

var modifierNames = map[string]terminal.Attr{
	"bold":        terminal.AttrBold,
	"dim":         terminal.AttrDim,
	"italic":      terminal.AttrItalic,
	"underline":   terminal.AttrUnderline,
	"underlined":  terminal.AttrUnderline,
	"blink":       terminal.AttrBlink,
	"slow_blink":  terminal.AttrBlink,
	"rapid_blink": terminal.AttrBlink,
	"reverse":     terminal.AttrReverse,
	"reversed":    terminal.AttrReverse,
}

// ParseModifiers parses one or more '|' separated modifier names
func ParseModifiers(s string) (terminal.Attr, bool) {
	var a terminal.Attr
	for _, name := range strings.Split(s, "|") {
		m, ok := modifierNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return terminal.AttrNone, false
		}
		a |= m
	}
	return a, true
}

// basicColorAliases maps the 16-color terminal names tcell lacks onto its W3C table
var basicColorAliases = map[string]string{
	"magenta":      "fuchsia",
	"cyan":         "aqua",
	"lightred":     "#ff5555",
	"lightmagenta": "#ff55ff",
}

// nearBlack stands in for black, since the zero RGB means "inherit"
var nearBlack = terminal.RGB{R: 1, G: 1, B: 1}

// ParseColor resolves a color name (W3C/X11 names as known to tcell plus the basic
// terminal names, with '_' and '-' ignored) or a #rrggbb value
func ParseColor(s string) (terminal.RGB, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(name, "#") {
		name = strings.NewReplacer("_", "", "-", "").Replace(name)
	}
	if name == "reset" || name == "default" {
		return terminal.RGB{}, true
	}
	if alias, ok := basicColorAliases[name]; ok {
		name = alias
	}

	c := tcell.GetColor(name)
	if c == tcell.ColorDefault || !c.Valid() {
		return terminal.RGB{}, false
	}
	rgb := terminal.RGBFromTcell(c)
	if rgb.IsZero() {
		rgb = nearBlack
	}
	return rgb, true
}

// MustColor is ParseColor for names known to be valid; it panics otherwise
func MustColor(s string) terminal.RGB {
	c, ok := ParseColor(s)
	if !ok {
		panic("tui: unknown color " + s)
	}
	return c
}
