package tui

import "github.com/vovakirdan/tile-arcade/internal/core"

// eventQueue buffers input events between scheduler frames and hands
// them over in arrival order. Bubble Tea delivers all messages on one
// goroutine, so no locking is needed.
type eventQueue struct {
	pending []core.Event
}

func (q *eventQueue) push(ev core.Event) {
	q.pending = append(q.pending, ev)
}

// Poll drains the queue. Implements loop.InputSource.
func (q *eventQueue) Poll() []core.Event {
	evs := q.pending
	q.pending = nil
	return evs
}
