package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// tcellTerm implements Terminal over a tcell.Screen
type tcellTerm struct {
	screen tcell.Screen

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// NewTcell wraps screen as a Terminal. The screen must not be initialized yet;
// Init and Fini own its lifecycle.
func NewTcell(screen tcell.Screen) Terminal {
	return &tcellTerm{screen: screen}
}

// NewTcellScreen creates a tcell-backed Terminal for the controlling tty
func NewTcellScreen() (Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTcell(screen), nil
}

func (t *tcellTerm) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()
	t.screen.Clear()
	t.initialized = true
	return nil
}

func (t *tcellTerm) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.screen.Clear()
	t.screen.Show()
	t.screen.Fini()
	t.finalized = true
}

func (t *tcellTerm) Size() (int, int) {
	return t.screen.Size()
}

func (t *tcellTerm) ColorMode() ColorMode {
	if t.screen.Colors() >= 1<<24 {
		return ColorModeTrueColor
	}
	return ColorMode256
}

func (t *tcellTerm) Flush(cells []Cell, width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	if w, h := t.screen.Size(); w != width || h != height || len(cells) < width*height {
		return
	}

	for y := 0; y < height; y++ {
		row := cells[y*width : (y+1)*width]
		for x, c := range row {
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			t.screen.SetContent(x, y, r, nil, TcellStyle(c.Fg, c.Bg, c.Attrs))
		}
	}
	t.screen.Show()
}

func (t *tcellTerm) Clear(bg RGB) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.screen.Fill(' ', tcell.StyleDefault.Background(TcellColor(bg)))
	t.screen.Show()
}

func (t *tcellTerm) SetCursorVisible(visible bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	if visible {
		t.screen.ShowCursor(0, 0)
	} else {
		t.screen.HideCursor()
	}
}

func (t *tcellTerm) Sync() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.screen.Sync()
}

// PollEvent blocks until tcell delivers an event this package understands
func (t *tcellTerm) PollEvent() Event {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			// Screen finalized
			return Event{Type: EventClosed}
		case *tcell.EventKey:
			return eventFromTcellKey(ev)
		case *tcell.EventResize:
			w, h := ev.Size()
			return Event{Type: EventResize, Width: w, Height: h}
		case *tcell.EventInterrupt:
			if posted, ok := ev.Data().(Event); ok {
				return posted
			}
			return Event{Type: EventInterrupt}
		case *tcell.EventError:
			return Event{Type: EventError, Err: ev}
		}
	}
}

func (t *tcellTerm) PostEvent(ev Event) {
	t.screen.PostEvent(tcell.NewEventInterrupt(ev))
}

// TcellColor converts an RGB value to a tcell color
func TcellColor(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// RGBFromTcell converts a tcell color to RGB. Palette colors resolve through tcell's table;
// the default color maps to the zero value.
func RGBFromTcell(c tcell.Color) RGB {
	if c == tcell.ColorDefault || !c.Valid() {
		return RGB{}
	}
	r, g, b := c.RGB()
	if r < 0 {
		return RGB{}
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// TcellStyle builds a tcell style from cell colors and attributes
func TcellStyle(fg, bg RGB, a Attr) tcell.Style {
	return tcell.StyleDefault.
		Foreground(TcellColor(fg)).
		Background(TcellColor(bg)).
		Attributes(TcellAttrs(a))
}

// TcellAttrs converts Attr to tcell.AttrMask
func TcellAttrs(a Attr) tcell.AttrMask {
	var mask tcell.AttrMask
	if a&AttrBold != 0 {
		mask |= tcell.AttrBold
	}
	if a&AttrDim != 0 {
		mask |= tcell.AttrDim
	}
	if a&AttrItalic != 0 {
		mask |= tcell.AttrItalic
	}
	if a&AttrUnderline != 0 {
		mask |= tcell.AttrUnderline
	}
	if a&AttrBlink != 0 {
		mask |= tcell.AttrBlink
	}
	if a&AttrReverse != 0 {
		mask |= tcell.AttrReverse
	}
	return mask
}

// AttrFromTcell converts tcell.AttrMask to Attr, dropping attributes with no equivalent
func AttrFromTcell(mask tcell.AttrMask) Attr {
	var a Attr
	if mask&tcell.AttrBold != 0 {
		a |= AttrBold
	}
	if mask&tcell.AttrDim != 0 {
		a |= AttrDim
	}
	if mask&tcell.AttrItalic != 0 {
		a |= AttrItalic
	}
	if mask&tcell.AttrUnderline != 0 {
		a |= AttrUnderline
	}
	if mask&tcell.AttrBlink != 0 {
		a |= AttrBlink
	}
	if mask&tcell.AttrReverse != 0 {
		a |= AttrReverse
	}
	return a
}

// tcellKeys maps tcell's named keys to Key. Ctrl+letter is handled by offset.
var tcellKeys = map[tcell.Key]Key{
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBacktab:    KeyBacktab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyInsert:     KeyInsert,
	tcell.KeyF1:         KeyF1,
	tcell.KeyF2:         KeyF2,
	tcell.KeyF3:         KeyF3,
	tcell.KeyF4:         KeyF4,
	tcell.KeyF5:         KeyF5,
	tcell.KeyF6:         KeyF6,
	tcell.KeyF7:         KeyF7,
	tcell.KeyF8:         KeyF8,
	tcell.KeyF9:         KeyF9,
	tcell.KeyF10:        KeyF10,
	tcell.KeyF11:        KeyF11,
	tcell.KeyF12:        KeyF12,
	tcell.KeyCtrlSpace:  KeyCtrlSpace,
}

func eventFromTcellKey(ev *tcell.EventKey) Event {
	out := Event{Type: EventKey}

	mods := ev.Modifiers()
	if mods&tcell.ModShift != 0 {
		out.Modifiers |= ModShift
	}
	if mods&tcell.ModAlt != 0 {
		out.Modifiers |= ModAlt
	}
	if mods&tcell.ModCtrl != 0 {
		out.Modifiers |= ModCtrl
	}

	k := ev.Key()
	switch {
	case k == tcell.KeyRune && mods&tcell.ModCtrl != 0 && ev.Rune() >= 'a' && ev.Rune() <= 'z':
		out.Key = KeyCtrlA + Key(ev.Rune()-'a')
	case k == tcell.KeyRune:
		out.Key = KeyRune
		out.Rune = ev.Rune()
	case tcellKeys[k] != KeyNone:
		out.Key = tcellKeys[k]
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		out.Key = KeyCtrlA + Key(k-tcell.KeyCtrlA)
	default:
		out.Key = KeyNone
	}
	return out
}
