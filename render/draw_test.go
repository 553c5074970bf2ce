package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cvterm/content"
	"github.com/lixenwraith/cvterm/layout"
	"github.com/lixenwraith/cvterm/terminal"
	"github.com/lixenwraith/cvterm/terminal/tui"
)

var theme = tui.DefaultTheme

func rowText(b *Buffer, y int) string {
	w, _ := b.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		if r := b.Get(x, y).Rune; r != 0 {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func TestBufferClearUsesBackground(t *testing.T) {
	bg := terminal.RGB{R: 1, G: 2, B: 3}
	b := NewBuffer(7, 3, bg)
	for _, c := range b.Cells() {
		assert.Equal(t, terminal.Cell{Rune: ' ', Bg: bg}, c)
	}

	b.Resize(2, 2)
	w, h := b.Size()
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, h)
	assert.Len(t, b.Cells(), 4)

	b.Resize(-1, 5)
	assert.Empty(t, b.Cells())
}

func TestDrawIsIdempotent(t *testing.T) {
	deck, err := content.Default()
	require.NoError(t, err)

	for i, tab := range deck.Tabs {
		a := NewBuffer(120, 40, theme.Bg)
		b := NewBuffer(120, 40, theme.Bg)
		Draw(a, tab.Root, a.Bounds(), theme)
		Draw(b, tab.Root, b.Bounds(), theme)
		Draw(b, tab.Root, b.Bounds(), theme)
		assert.Equal(t, a.Cells(), b.Cells(), "tab %d", i)
	}
}

func TestDrawStaysInsideRect(t *testing.T) {
	deck, err := content.Default()
	require.NoError(t, err)

	bg := terminal.RGB{R: 9, G: 9, B: 9}
	r := layout.NewRect(10, 5, 50, 20)
	for _, tab := range deck.Tabs {
		b := NewBuffer(80, 30, bg)
		Draw(b, tab.Root, r, theme)
		for y := 0; y < 30; y++ {
			for x := 0; x < 80; x++ {
				if r.Contains(x, y) {
					continue
				}
				require.Equal(t, terminal.Cell{Rune: ' ', Bg: bg}, b.Get(x, y), "cell (%d,%d) in %q", x, y, tab.Title)
			}
		}
	}
}

func TestDrawSurvivesTinySizes(t *testing.T) {
	deck, err := content.Default()
	require.NoError(t, err)

	for w := 0; w <= 6; w++ {
		for h := 0; h <= 6; h++ {
			b := NewBuffer(w, h, theme.Bg)
			for _, tab := range deck.Tabs {
				assert.NotPanics(t, func() { Draw(b, tab.Root, b.Bounds(), theme) })
			}
		}
	}
}

func TestDrawBlockWithParagraph(t *testing.T) {
	node := &content.Block{
		Title:   "About",
		Borders: true,
		Widget:  &content.Paragraph{Text: "hello {mod=bold world}", Wrap: true},
	}
	b := NewBuffer(10, 4, theme.Bg)
	Draw(b, node, b.Bounds(), theme)

	assert.Equal(t, "┌About───┐", rowText(b, 0))
	assert.Equal(t, "│hello   │", rowText(b, 1))
	assert.Equal(t, "│world   │", rowText(b, 2))
	assert.Equal(t, "└────────┘", rowText(b, 3))

	assert.Equal(t, terminal.AttrBold, b.Get(1, 2).Attrs)
	assert.Equal(t, theme.Title, b.Get(1, 0).Fg)
	assert.Equal(t, theme.Border, b.Get(0, 0).Fg)
	assert.Equal(t, theme.Fg, b.Get(1, 1).Fg)
}

func TestDrawTitledGaugeWithoutBorders(t *testing.T) {
	magenta := tui.MustColor("magenta")
	node := &content.Block{
		Title:  "AWS",
		Widget: &content.Gauge{Label: "85 / 100", Percent: 85, Style: tui.Style{Fg: magenta}},
	}
	b := NewBuffer(20, 2, theme.Bg)
	Draw(b, node, b.Bounds(), theme)

	assert.Equal(t, "AWS", strings.TrimSpace(rowText(b, 0)))
	assert.Equal(t, "      85 / 100      ", rowText(b, 1))
	assert.Equal(t, magenta, b.Get(0, 1).Bg)
	assert.Equal(t, magenta, b.Get(16, 1).Bg)
	assert.Equal(t, theme.GaugeEmpty, b.Get(17, 1).Bg)
}

func TestDrawSplitSkipsZeroExtent(t *testing.T) {
	node := &content.Split{
		Direction:   layout.Vertical,
		Constraints: []layout.Constraint{layout.Fixed(0), layout.Min(0)},
		Children: []content.Node{
			&content.Block{Title: "hidden"},
			&content.Block{Title: "shown"},
		},
	}
	b := NewBuffer(10, 2, theme.Bg)
	Draw(b, node, b.Bounds(), theme)
	assert.Equal(t, "shown     ", rowText(b, 0))
}

func TestDrawListAndTabs(t *testing.T) {
	sel := 1
	hl := tui.MustColor("blue")
	node := &content.Split{
		Direction:   layout.Vertical,
		Constraints: []layout.Constraint{layout.Fixed(1), layout.Min(0)},
		Children: []content.Node{
			&content.Block{Widget: &content.Tabs{Titles: []string{"A", "B"}, Selected: 1}},
			&content.Block{Widget: &content.List{Items: []string{"x", "y"}, Selected: &sel, HighlightStyle: tui.Style{Bg: hl}}},
		},
	}
	b := NewBuffer(8, 3, theme.Bg)
	Draw(b, node, b.Bounds(), theme)

	assert.Equal(t, "A │ B   ", rowText(b, 0))
	assert.Equal(t, theme.TabActive, b.Get(4, 0).Fg)
	assert.Equal(t, theme.TabInactive, b.Get(0, 0).Fg)
	assert.Equal(t, hl, b.Get(7, 2).Bg)
	assert.Equal(t, theme.Bg, b.Get(7, 1).Bg)
}
