package terminal

import (
	"testing"
)

func drainEvents(r *inputReader) []Event {
	var out []Event
	for {
		select {
		case ev := <-r.eventCh:
			out = append(out, ev)
		default:
			return out
		}
	}
}

func TestParseInputKeys(t *testing.T) {
	tests := []struct {
		name string
		in   string
		key  Key
		rn   rune
		mod  Modifier
	}{
		{"printable", "q", KeyRune, 'q', ModNone},
		{"left arrow csi", "\x1b[D", KeyLeft, 0, ModNone},
		{"right arrow csi", "\x1b[C", KeyRight, 0, ModNone},
		{"left arrow ss3", "\x1bOD", KeyLeft, 0, ModNone},
		{"ctrl right", "\x1b[1;5C", KeyRight, 0, ModCtrl},
		{"ctrl c", "\x03", KeyCtrlC, 0, ModNone},
		{"enter", "\r", KeyEnter, 0, ModNone},
		{"delete key", "\x7f", KeyBackspace, 0, ModNone},
		{"alt letter", "\x1bx", KeyRune, 'x', ModAlt},
		{"utf8", "é", KeyRune, 'é', ModNone},
		{"f5", "\x1b[15~", KeyF5, 0, ModNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newInputReader(nil)
			consumed := r.parseInput([]byte(tt.in))
			if consumed != len(tt.in) {
				t.Errorf("Expected %d bytes consumed, got %d", len(tt.in), consumed)
			}
			events := drainEvents(r)
			if len(events) != 1 {
				t.Fatalf("Expected 1 event, got %d", len(events))
			}
			ev := events[0]
			if ev.Type != EventKey || ev.Key != tt.key || ev.Rune != tt.rn || ev.Modifiers != tt.mod {
				t.Errorf("Expected key=%v rune=%q mod=%d, got key=%v rune=%q mod=%d",
					tt.key, tt.rn, tt.mod, ev.Key, ev.Rune, ev.Modifiers)
			}
		})
	}
}

func TestParseInputIncompleteSequenceWaits(t *testing.T) {
	r := newInputReader(nil)

	if consumed := r.parseInput([]byte("a\x1b[")); consumed != 1 {
		t.Errorf("Expected only the rune to be consumed, got %d", consumed)
	}
	if consumed := r.parseInput([]byte{0xc3}); consumed != 0 {
		t.Errorf("Expected partial UTF-8 to wait, got %d consumed", consumed)
	}

	events := drainEvents(r)
	if len(events) != 1 || events[0].Rune != 'a' {
		t.Errorf("Expected a single 'a' event, got %+v", events)
	}
}

func TestParseInputSequenceOfKeys(t *testing.T) {
	r := newInputReader(nil)
	r.parseInput([]byte("\x1b[C\x1b[Dq"))

	events := drainEvents(r)
	want := []Key{KeyRight, KeyLeft, KeyRune}
	if len(events) != len(want) {
		t.Fatalf("Expected %d events, got %d", len(want), len(events))
	}
	for i, k := range want {
		if events[i].Key != k {
			t.Errorf("Event %d: expected %v, got %v", i, k, events[i].Key)
		}
	}
}

func TestParseInputUnknownCSISwallowed(t *testing.T) {
	r := newInputReader(nil)
	in := []byte("\x1b[99z")
	if consumed := r.parseInput(in); consumed != len(in) {
		t.Errorf("Expected unknown sequence to be consumed, got %d", consumed)
	}
	if events := drainEvents(r); len(events) != 0 {
		t.Errorf("Expected no events for unknown sequence, got %+v", events)
	}
}
