package api

import (
	"sync"

	"github.com/SirJonasM/fpga-router/pkg/router"
)

// Broadcaster fans each Row produced by a route() invocation out to every
// currently connected /stream websocket client, implementing
// router.IterationLogger so it composes with router.MultiLogger alongside
// the run's other loggers (§10.1: one StructuredLogger per run, plus this
// one live observer).
type Broadcaster struct {
	mu   sync.Mutex
	subs map[chan router.Row]struct{}
}

// NewBroadcaster returns an empty Broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[chan router.Row]struct{})}
}

// Log fans r out to every subscriber, dropping it for a subscriber whose
// buffer is full rather than blocking the negotiation loop.
func (b *Broadcaster) Log(r router.Row) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- r:
		default:
		}
	}
}

// Subscribe registers a new buffered channel of Rows and returns it along
// with an unsubscribe function the caller must invoke when done.
func (b *Broadcaster) Subscribe() (<-chan router.Row, func()) {
	ch := make(chan router.Row, 32)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	return ch, func() {
		b.mu.Lock()
		delete(b.subs, ch)
		b.mu.Unlock()
		close(ch)
	}
}
