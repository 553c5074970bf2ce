package event

import (
	"context"
	"log/slog"
	"time"

	"github.com/lixenwraith/cvterm/terminal"
)

// Producer feeds a queue until ctx is done or its source ends
type Producer func(ctx context.Context, q *Queue)

// Poller is the blocking input source, satisfied by terminal.Terminal
type Poller interface {
	PollEvent() terminal.Event
}

// ReadKeys forwards key presses and resizes from src until one of:
//   - quit reports true for a pushed key (the key is still delivered)
//   - src reports a read error, pushed as InputError
//   - src reports closed input
//
// The queue is never closed.
func ReadKeys(src Poller, q *Queue, quit func(Event) bool) {
	for {
		tev := src.PollEvent()
		switch tev.Type {
		case terminal.EventKey:
			ev := NewKey(tev.Key, tev.Rune, tev.Modifiers)
			q.Push(ev)
			if quit != nil && quit(ev) {
				slog.Debug("keyboard producer stopping on quit key", "key", tev.Key.String())
				return
			}
		case terminal.EventResize:
			q.Push(NewResize(tev.Width, tev.Height))
		case terminal.EventError:
			slog.Debug("keyboard read failed", "error", tev.Err)
			q.Push(NewInputError(tev.Err))
			return
		case terminal.EventClosed:
			slog.Debug("keyboard input closed")
			return
		}
	}
}

// Keys adapts ReadKeys to a Producer. ctx is not observed: src unblocks when the
// terminal is finalized.
func Keys(src Poller, quit func(Event) bool) Producer {
	return func(_ context.Context, q *Queue) {
		ReadKeys(src, q, quit)
	}
}

// RunTicker pushes a Tick every interval until ctx is done. Ticks are never coalesced.
func RunTicker(ctx context.Context, interval time.Duration, q *Queue) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			q.Push(NewTick())
		}
	}
}

// Ticker adapts RunTicker to a Producer
func Ticker(interval time.Duration) Producer {
	return func(ctx context.Context, q *Queue) {
		RunTicker(ctx, interval, q)
	}
}
