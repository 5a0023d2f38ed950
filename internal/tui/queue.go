package tui

import (
	"context"
	"sync"

	"handoff/internal/selection"
)

// Queue turns a blocking dispatch, such as selection.Session.Dispatch, into a
// Dispatcher that never blocks. Actions are forwarded in order by one goroutine
// until ctx is done or dispatch reports the owner stopped.
func Queue(ctx context.Context, dispatch Dispatcher) Dispatcher {
	q := &queue{wake: make(chan struct{}, 1)}
	go q.pump(ctx, dispatch)

	return q.push
}

type queue struct {
	mu      sync.Mutex
	pending []selection.Action
	stopped bool
	wake    chan struct{}
}

func (q *queue) push(action selection.Action) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.stopped {
		return false
	}
	q.pending = append(q.pending, action)

	select {
	case q.wake <- struct{}{}:
	default:
	}

	return true
}

func (q *queue) pump(ctx context.Context, dispatch Dispatcher) {
	defer q.stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-q.wake:
		}

		q.mu.Lock()
		batch := q.pending
		q.pending = nil
		q.mu.Unlock()

		for _, action := range batch {
			if !dispatch(action) {
				return
			}
		}
	}
}

func (q *queue) stop() {
	q.mu.Lock()
	q.stopped = true
	q.pending = nil
	q.mu.Unlock()
}
