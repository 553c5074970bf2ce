package terminal

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"
)

type readResult struct {
	data []byte
	err  error
}

// fakeBackend feeds scripted reads and records writes
type fakeBackend struct {
	mu      sync.Mutex
	out     bytes.Buffer
	w, h    int
	reads   chan readResult
	initErr error
	inited  bool
	finied  bool
}

func newFakeBackend(w, h int) *fakeBackend {
	return &fakeBackend{w: w, h: h, reads: make(chan readResult, 8)}
}

func (b *fakeBackend) Init() error {
	b.inited = b.initErr == nil
	return b.initErr
}

func (b *fakeBackend) Fini() { b.finied = true }

func (b *fakeBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.w, b.h
}

func (b *fakeBackend) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.out.Write(p)
}

func (b *fakeBackend) Read(stopCh <-chan struct{}) ([]byte, error) {
	select {
	case r := <-b.reads:
		return r.data, r.err
	case <-stopCh:
		return nil, nil
	}
}

func (b *fakeBackend) SetResizeHandler(func(width, height int)) {}

func (b *fakeBackend) written() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.out.String()
}

func pollWithTimeout(t *testing.T, term Terminal) Event {
	t.Helper()
	ch := make(chan Event, 1)
	go func() { ch <- term.PollEvent() }()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("PollEvent did not return")
		return Event{}
	}
}

func TestTerminalInitAndFini(t *testing.T) {
	b := newFakeBackend(10, 4)
	term := newTerm(b, ColorModeTrueColor)

	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	out := b.written()
	for _, seq := range [][]byte{csiAltScreenEnter, csiCursorHide, csiAutoWrapOff} {
		if !strings.Contains(out, string(seq)) {
			t.Errorf("Expected %q after Init", seq)
		}
	}

	term.Fini()
	term.Fini()
	if !b.finied {
		t.Error("Expected backend Fini to be called")
	}
	out = b.written()
	if !strings.Contains(out, string(csiCursorShow)) || !strings.Contains(out, string(csiAltScreenExit)) {
		t.Error("Expected cursor restore and alt screen exit after Fini")
	}
}

func TestTerminalInitError(t *testing.T) {
	b := newFakeBackend(10, 4)
	b.initErr = ErrNotTerminal
	term := newTerm(b, ColorMode256)

	if err := term.Init(); !errors.Is(err, ErrNotTerminal) {
		t.Errorf("Expected ErrNotTerminal, got %v", err)
	}
	// Fini before a successful Init is a no-op
	term.Fini()
	if b.finied {
		t.Error("Expected backend Fini to be skipped")
	}
}

func TestTerminalFlushDropsStaleFrame(t *testing.T) {
	b := newFakeBackend(4, 2)
	term := newTerm(b, ColorModeTrueColor)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer term.Fini()

	before := len(b.written())
	cells := make([]Cell, 3*2)
	for i := range cells {
		cells[i] = Cell{Rune: 'z'}
	}
	term.Flush(cells, 3, 2)
	if strings.Contains(b.written()[before:], "z") {
		t.Error("Expected frame with mismatched size to be dropped")
	}

	cells = make([]Cell, 4*2)
	for i := range cells {
		cells[i] = Cell{Rune: 'z'}
	}
	term.Flush(cells, 4, 2)
	if !strings.Contains(b.written()[before:], "zzzz") {
		t.Error("Expected matching frame to be written")
	}
}

func TestTerminalPollEventKeys(t *testing.T) {
	b := newFakeBackend(10, 4)
	term := newTerm(b, ColorMode256)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer term.Fini()

	b.reads <- readResult{data: []byte("\x1b[C")}
	ev := pollWithTimeout(t, term)
	if ev.Type != EventKey || ev.Key != KeyRight {
		t.Errorf("Expected right arrow, got %+v", ev)
	}
}

func TestTerminalPollEventReadError(t *testing.T) {
	b := newFakeBackend(10, 4)
	term := newTerm(b, ColorMode256)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer term.Fini()

	readErr := errors.New("read failed")
	b.reads <- readResult{err: readErr}
	ev := pollWithTimeout(t, term)
	if ev.Type != EventError || !errors.Is(ev.Err, readErr) {
		t.Errorf("Expected error event, got %+v", ev)
	}
}

func TestTerminalPollEventEOF(t *testing.T) {
	b := newFakeBackend(10, 4)
	term := newTerm(b, ColorMode256)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer term.Fini()

	b.reads <- readResult{err: io.EOF}
	if ev := pollWithTimeout(t, term); ev.Type != EventClosed {
		t.Errorf("Expected closed event, got %+v", ev)
	}
}

func TestTerminalPostEvent(t *testing.T) {
	b := newFakeBackend(10, 4)
	term := newTerm(b, ColorMode256)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer term.Fini()

	term.PostEvent(Event{Type: EventInterrupt})
	if ev := pollWithTimeout(t, term); ev.Type != EventInterrupt {
		t.Errorf("Expected posted interrupt, got %+v", ev)
	}
}

func TestEmergencyResetWritesRestoreSequences(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)
	out := buf.String()
	if !strings.Contains(out, string(csiCursorShow)) || !strings.Contains(out, string(csiAltScreenExit)) {
		t.Errorf("Expected cursor show and alt screen exit, got %q", out)
	}
}

func TestTerminalFiniReleasesPoller(t *testing.T) {
	b := newFakeBackend(10, 4)
	term := newTerm(b, ColorMode256)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	ch := make(chan Event, 1)
	go func() { ch <- term.PollEvent() }()
	term.Fini()

	select {
	case ev := <-ch:
		if ev.Type != EventClosed {
			t.Errorf("Expected closed event after Fini, got %+v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("PollEvent still blocked after Fini")
	}
}
