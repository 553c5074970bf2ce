package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cvterm/terminal"
)

// scriptPoller returns scripted events, then blocks until released
type scriptPoller struct {
	events  []terminal.Event
	release chan struct{}
}

func (p *scriptPoller) PollEvent() terminal.Event {
	if len(p.events) == 0 {
		<-p.release
		return terminal.Event{Type: terminal.EventClosed}
	}
	ev := p.events[0]
	p.events = p.events[1:]
	return ev
}

func runReadKeys(t *testing.T, p *scriptPoller, q *Queue, quit func(Event) bool) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		ReadKeys(p, q, quit)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		close(p.release)
		t.Fatal("ReadKeys did not return")
	}
}

func drain(q *Queue) []Event {
	var out []Event
	for {
		ev, ok := q.TryNext()
		if !ok {
			return out
		}
		out = append(out, ev)
	}
}

func isQ(ev Event) bool { return ev.IsRune('q') }

func TestReadKeysStopsAfterQuit(t *testing.T) {
	p := &scriptPoller{
		events: []terminal.Event{
			{Type: terminal.EventKey, Key: terminal.KeyLeft},
			{Type: terminal.EventResize, Width: 100, Height: 30},
			{Type: terminal.EventInterrupt},
			{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'q'},
			{Type: terminal.EventKey, Key: terminal.KeyRight},
		},
		release: make(chan struct{}),
	}
	q := NewQueue()
	runReadKeys(t, p, q, isQ)

	got := drain(q)
	require.Len(t, got, 3)
	assert.True(t, got[0].IsKey(terminal.KeyLeft))
	assert.Equal(t, NewResize(100, 30), got[1])
	assert.True(t, got[2].IsRune('q'))
	assert.Len(t, p.events, 1, "key after quit must not be read")
}

func TestReadKeysPushesInputError(t *testing.T) {
	readErr := errors.New("read /dev/tty: input/output error")
	p := &scriptPoller{
		events: []terminal.Event{
			{Type: terminal.EventKey, Key: terminal.KeyRight},
			{Type: terminal.EventError, Err: readErr},
		},
		release: make(chan struct{}),
	}
	q := NewQueue()
	runReadKeys(t, p, q, isQ)

	got := drain(q)
	require.Len(t, got, 2)
	assert.Equal(t, InputError, got[1].Type)
	assert.ErrorIs(t, got[1].Err, readErr)
}

func TestReadKeysStopsOnClosed(t *testing.T) {
	p := &scriptPoller{
		events:  []terminal.Event{{Type: terminal.EventClosed}},
		release: make(chan struct{}),
	}
	q := NewQueue()
	runReadKeys(t, p, q, nil)
	assert.Equal(t, 0, q.Len())
}

func TestRunTickerPushesUntilCancelled(t *testing.T) {
	q := NewQueue()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		RunTicker(ctx, 5*time.Millisecond, q)
		close(done)
	}()

	for i := 0; i < 3; i++ {
		waitCtx, waitCancel := context.WithTimeout(context.Background(), 2*time.Second)
		ev, err := q.Next(waitCtx)
		waitCancel()
		require.NoError(t, err)
		assert.Equal(t, Tick, ev.Type)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("RunTicker did not stop on cancel")
	}
}

func TestProducerAdapters(t *testing.T) {
	q := NewQueue()
	p := &scriptPoller{
		events:  []terminal.Event{{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'q'}},
		release: make(chan struct{}),
	}
	Keys(p, isQ)(context.Background(), q)
	assert.Equal(t, 1, q.Len())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	Ticker(time.Millisecond)(ctx, q)
}
