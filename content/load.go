package content

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/cvterm/layout"
	"github.com/lixenwraith/cvterm/terminal/tui"
)

// YAML document shape. A node carries exactly one of split, stack or block.
type (
	rawDeck struct {
		Header *rawHeader `yaml:"header"`
		Tabs   []rawTab   `yaml:"tabs"`
	}

	rawHeader struct {
		Title          *string   `yaml:"title"`
		Style          *rawStyle `yaml:"style"`
		HighlightStyle *rawStyle `yaml:"highlight_style"`
		BorderStyle    *rawStyle `yaml:"border_style"`
	}

	rawTab struct {
		Title string   `yaml:"title"`
		Root  *rawNode `yaml:"root"`
	}

	rawNode struct {
		Split *rawSplit  `yaml:"split"`
		Stack []*rawNode `yaml:"stack"`
		Block *rawBlock  `yaml:"block"`
	}

	rawSplit struct {
		Direction   string     `yaml:"direction"`
		Margin      int        `yaml:"margin"`
		Constraints []string   `yaml:"constraints"`
		Children    []*rawNode `yaml:"children"`
	}

	rawBlock struct {
		Title       string        `yaml:"title"`
		TitleStyle  *rawStyle     `yaml:"title_style"`
		Borders     string        `yaml:"borders"`
		BorderStyle *rawStyle     `yaml:"border_style"`
		Style       *rawStyle     `yaml:"style"`
		Paragraph   *rawParagraph `yaml:"paragraph"`
		Gauge       *rawGauge     `yaml:"gauge"`
		List        *rawList      `yaml:"list"`
	}

	rawStyle struct {
		Fg  string   `yaml:"fg"`
		Bg  string   `yaml:"bg"`
		Mod []string `yaml:"mod"`
	}

	rawParagraph struct {
		Text string `yaml:"text"`
		Wrap *bool  `yaml:"wrap"`
	}

	rawGauge struct {
		Label   string    `yaml:"label"`
		Percent int       `yaml:"percent"`
		Style   *rawStyle `yaml:"style"`
	}

	rawList struct {
		Items          []string  `yaml:"items"`
		Selected       *int      `yaml:"selected"`
		HighlightStyle *rawStyle `yaml:"highlight_style"`
	}
)

// DefaultHeader is used for header fields the document leaves out
var DefaultHeader = Header{
	Title:          "Tabs",
	Style:          tui.Style{Fg: tui.MustColor("green")},
	HighlightStyle: tui.Style{Fg: tui.MustColor("yellow")},
}

// Load decodes and validates a deck. Unknown fields are rejected.
func Load(r io.Reader) (*Deck, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var raw rawDeck
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, invalid("tabs", ErrNoTabs, "empty document")
		}
		return nil, fmt.Errorf("decode content: %w", err)
	}

	d, err := raw.build()
	if err != nil {
		return nil, err
	}
	if err := Validate(d); err != nil {
		return nil, err
	}
	return d, nil
}

// LoadFile loads a deck from a YAML file
func LoadFile(path string) (*Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content: %w", err)
	}
	defer f.Close()

	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func (raw *rawDeck) build() (*Deck, error) {
	d := &Deck{Header: DefaultHeader}

	if h := raw.Header; h != nil {
		if h.Title != nil {
			d.Header.Title = *h.Title
		}
		var err error
		if d.Header.Style, err = h.Style.build("header.style", d.Header.Style); err != nil {
			return nil, err
		}
		if d.Header.HighlightStyle, err = h.HighlightStyle.build("header.highlight_style", d.Header.HighlightStyle); err != nil {
			return nil, err
		}
		if d.Header.BorderStyle, err = h.BorderStyle.build("header.border_style", d.Header.BorderStyle); err != nil {
			return nil, err
		}
	}

	for i, t := range raw.Tabs {
		path := "tabs[" + strconv.Itoa(i) + "]"
		root, err := t.Root.build(path + ".root")
		if err != nil {
			return nil, err
		}
		d.Tabs = append(d.Tabs, Tab{Title: t.Title, Root: root})
	}
	return d, nil
}

func (n *rawNode) build(path string) (Node, error) {
	if n == nil {
		return nil, invalid(path, ErrNodeKind, "missing node")
	}

	kinds := 0
	if n.Split != nil {
		kinds++
	}
	if n.Stack != nil {
		kinds++
	}
	if n.Block != nil {
		kinds++
	}
	if kinds != 1 {
		return nil, invalid(path, ErrNodeKind, fmt.Sprintf("expected exactly one of split, stack, block; got %d", kinds))
	}

	switch {
	case n.Split != nil:
		return n.Split.build(path + ".split")
	case n.Stack != nil:
		s := &Stack{}
		for i, c := range n.Stack {
			child, err := c.build(path + ".stack[" + strconv.Itoa(i) + "]")
			if err != nil {
				return nil, err
			}
			s.Children = append(s.Children, child)
		}
		return s, nil
	default:
		return n.Block.build(path + ".block")
	}
}

func (s *rawSplit) build(path string) (*Split, error) {
	dir := layout.Vertical
	if s.Direction != "" {
		var err error
		if dir, err = layout.ParseDirection(s.Direction); err != nil {
			return nil, invalid(path+".direction", ErrNodeKind, err.Error())
		}
	}

	out := &Split{Direction: dir, Margin: s.Margin}
	for i, cs := range s.Constraints {
		c, err := layout.ParseConstraint(cs)
		if err != nil {
			kind := ErrConstraint
			if errors.Is(err, layout.ErrPercentRange) {
				kind = ErrPercentRange
			}
			return nil, invalid(path+".constraints["+strconv.Itoa(i)+"]", kind, err.Error())
		}
		out.Constraints = append(out.Constraints, c)
	}
	if len(s.Constraints) != len(s.Children) {
		return nil, invalid(path, ErrConstraintCount,
			fmt.Sprintf("constraints (%d) and children (%d) differ", len(s.Constraints), len(s.Children)))
	}
	for i, c := range s.Children {
		child, err := c.build(path + ".children[" + strconv.Itoa(i) + "]")
		if err != nil {
			return nil, err
		}
		out.Children = append(out.Children, child)
	}
	return out, nil
}

func (b *rawBlock) build(path string) (*Block, error) {
	out := &Block{Title: b.Title}

	switch b.Borders {
	case "", "none":
	case "all":
		out.Borders = true
	default:
		line, ok := tui.ParseLineType(b.Borders)
		if !ok {
			return nil, invalid(path+".borders", ErrStyle, fmt.Sprintf("unknown border %q", b.Borders))
		}
		out.Borders = true
		out.Line = line
	}

	var err error
	if out.TitleStyle, err = b.TitleStyle.build(path+".title_style", tui.Style{}); err != nil {
		return nil, err
	}
	if out.BorderStyle, err = b.BorderStyle.build(path+".border_style", tui.Style{}); err != nil {
		return nil, err
	}
	if out.Style, err = b.Style.build(path+".style", tui.Style{}); err != nil {
		return nil, err
	}

	widgets := 0
	if b.Paragraph != nil {
		widgets++
		wrap := true
		if b.Paragraph.Wrap != nil {
			wrap = *b.Paragraph.Wrap
		}
		out.Widget = &Paragraph{Text: b.Paragraph.Text, Wrap: wrap}
	}
	if b.Gauge != nil {
		widgets++
		st, err := b.Gauge.Style.build(path+".gauge.style", tui.Style{})
		if err != nil {
			return nil, err
		}
		out.Widget = &Gauge{Label: b.Gauge.Label, Percent: b.Gauge.Percent, Style: st}
	}
	if b.List != nil {
		widgets++
		hl, err := b.List.HighlightStyle.build(path+".list.highlight_style", tui.Style{})
		if err != nil {
			return nil, err
		}
		out.Widget = &List{Items: b.List.Items, Selected: b.List.Selected, HighlightStyle: hl}
	}
	if widgets > 1 {
		return nil, invalid(path, ErrNodeKind, "more than one widget in block")
	}
	return out, nil
}

// build resolves the style on top of def; a nil style yields def
func (s *rawStyle) build(path string, def tui.Style) (tui.Style, error) {
	if s == nil {
		return def, nil
	}
	st := def
	if s.Fg != "" {
		c, ok := tui.ParseColor(s.Fg)
		if !ok {
			return tui.Style{}, invalid(path+".fg", ErrStyle, fmt.Sprintf("unknown color %q", s.Fg))
		}
		st.Fg = c
	}
	if s.Bg != "" {
		c, ok := tui.ParseColor(s.Bg)
		if !ok {
			return tui.Style{}, invalid(path+".bg", ErrStyle, fmt.Sprintf("unknown color %q", s.Bg))
		}
		st.Bg = c
	}
	if len(s.Mod) > 0 {
		a, ok := tui.ParseModifiers(strings.Join(s.Mod, "|"))
		if !ok {
			return tui.Style{}, invalid(path+".mod", ErrStyle, fmt.Sprintf("unknown modifier in %v", s.Mod))
		}
		st.Attr |= a
	}
	return st, nil
}
