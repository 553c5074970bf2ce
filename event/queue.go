package event

import (
	"context"
	"sync"
)

// Queue is an unbounded FIFO for events
// Thread-Safety:
//   - Push: any number of producers, never blocks, never drops
//   - Next: single consumer (application loop)
//
// Ordering is arrival order across all producers
type Queue struct {
	mu    sync.Mutex
	items []Event
	wake  chan struct{} // Holds at most one pending wakeup
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{wake: make(chan struct{}, 1)}
}

// Push appends an event and wakes the consumer
func (q *Queue) Push(ev Event) {
	q.mu.Lock()
	q.items = append(q.items, ev)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Next blocks until an event is available or ctx is done
func (q *Queue) Next(ctx context.Context) (Event, error) {
	for {
		if ev, ok := q.pop(); ok {
			return ev, nil
		}
		select {
		case <-q.wake:
		case <-ctx.Done():
			return Event{}, ctx.Err()
		}
	}
}

// TryNext returns the oldest event without blocking
func (q *Queue) TryNext() (Event, bool) {
	return q.pop()
}

// Len returns the backlog size
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *Queue) pop() (Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return Event{}, false
	}
	ev := q.items[0]
	q.items[0] = Event{}
	q.items = q.items[1:]
	if len(q.items) == 0 {
		// Drop the drained backing array
		q.items = nil
	}
	return ev, true
}
