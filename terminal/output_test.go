package terminal

import (
	"bytes"
	"strings"
	"testing"
)

func TestOutputFlushWritesDirtyCells(t *testing.T) {
	var buf bytes.Buffer
	o := newOutputBuffer(&buf, ColorModeTrueColor)

	cells := make([]Cell, 4*2)
	cells[0] = Cell{Rune: 'H', Fg: RGB{255, 255, 0}, Attrs: AttrBold}
	cells[1] = Cell{Rune: 'i', Fg: RGB{255, 255, 0}, Attrs: AttrBold}
	o.flush(cells, 4, 2)

	out := buf.String()
	if !strings.Contains(out, "Hi") {
		t.Errorf("Expected contiguous run \"Hi\" in output, got %q", out)
	}
	if !strings.Contains(out, "\x1b[0;1;38;2;255;255;0;48;2;0;0;0m") {
		t.Errorf("Expected combined SGR for bold yellow, got %q", out)
	}
}

func TestOutputFlushUnchangedFrameWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	o := newOutputBuffer(&buf, ColorModeTrueColor)

	cells := make([]Cell, 3*3)
	for i := range cells {
		cells[i] = Cell{Rune: 'x'}
	}
	o.flush(cells, 3, 3)
	buf.Reset()

	o.flush(cells, 3, 3)
	if got := buf.String(); got != string(csiSGR0) {
		t.Errorf("Expected only attribute reset for identical frame, got %q", got)
	}
}

func TestOutputForceFullRedraw(t *testing.T) {
	var buf bytes.Buffer
	o := newOutputBuffer(&buf, ColorMode256)

	cells := []Cell{{Rune: 'a'}, {Rune: 'b'}}
	o.flush(cells, 2, 1)
	buf.Reset()

	o.forceFullRedraw()
	o.flush(cells, 2, 1)
	if !strings.Contains(buf.String(), "ab") {
		t.Errorf("Expected full repaint after forceFullRedraw, got %q", buf.String())
	}
}

func TestOutputShortBufferIgnored(t *testing.T) {
	var buf bytes.Buffer
	o := newOutputBuffer(&buf, ColorMode256)

	o.flush(make([]Cell, 3), 4, 4)
	if buf.Len() != 0 {
		t.Errorf("Expected no output for undersized buffer, got %q", buf.String())
	}
}
