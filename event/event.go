// Package event merges keyboard input and a periodic tick into one ordered stream
// for the application loop.
package event

import (
	"github.com/lixenwraith/cvterm/terminal"
)

// Type tags an Event
type Type int

const (
	// KeyPress carries one decoded key
	// Producer: ReadKeys | Fields: Key, Rune, Modifiers
	KeyPress Type = iota

	// Tick fires on every ticker interval
	// Producer: Tick | Fields: none
	Tick

	// Resize reports new terminal dimensions; the next frame picks them up
	// Producer: ReadKeys | Fields: Width, Height
	Resize

	// InputError reports a failed keyboard read; the keyboard producer has stopped
	// Producer: ReadKeys | Fields: Err
	InputError
)

var typeNames = [...]string{
	KeyPress:   "key",
	Tick:       "tick",
	Resize:     "resize",
	InputError: "input_error",
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// Event is one item of the queue, consumed exactly once
type Event struct {
	Type      Type
	Key       terminal.Key
	Rune      rune
	Modifiers terminal.Modifier
	Width     int
	Height    int
	Err       error
}

// NewKey wraps a key press
func NewKey(key terminal.Key, r rune, mods terminal.Modifier) Event {
	return Event{Type: KeyPress, Key: key, Rune: r, Modifiers: mods}
}

// NewTick returns a tick event
func NewTick() Event {
	return Event{Type: Tick}
}

// NewResize returns a resize event
func NewResize(w, h int) Event {
	return Event{Type: Resize, Width: w, Height: h}
}

// NewInputError wraps a keyboard read failure
func NewInputError(err error) Event {
	return Event{Type: InputError, Err: err}
}

// IsRune reports whether e is a press of the plain rune r
func (e Event) IsRune(r rune) bool {
	return e.Type == KeyPress && e.Key == terminal.KeyRune && e.Rune == r
}

// IsKey reports whether e is a press of the named key k
func (e Event) IsKey(k terminal.Key) bool {
	return e.Type == KeyPress && e.Key == k
}
