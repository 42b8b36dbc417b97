// Package bus provides the in-process signal bus used to invalidate the
// event catalog from outside the core (e.g. an admin surface). Fan-out is
// synchronous: PublishDeleted returns only after every subscriber has run,
// so caches are pruned before any authoritative re-fetch starts.
package bus

import "sync"

// EventDeleted carries the identity of a removed event.
type EventDeleted struct {
	EventID   string
	EventSlug string
}

// Bus dispatches eventsUpdated and eventDeleted signals to subscribers in
// subscription order. Safe for concurrent use.
type Bus struct {
	mu      sync.RWMutex
	updated []func()
	deleted []func(EventDeleted)
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{}
}

// SubscribeUpdated registers a callback for the eventsUpdated signal.
func (b *Bus) SubscribeUpdated(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.updated = append(b.updated, fn)
}

// SubscribeDeleted registers a callback for the eventDeleted signal.
func (b *Bus) SubscribeDeleted(fn func(EventDeleted)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.deleted = append(b.deleted, fn)
}

// PublishUpdated fires the eventsUpdated signal.
func (b *Bus) PublishUpdated() {
	b.mu.RLock()
	subs := make([]func(), len(b.updated))
	copy(subs, b.updated)
	b.mu.RUnlock()

	for _, fn := range subs {
		fn()
	}
}

// PublishDeleted fires the eventDeleted signal.
func (b *Bus) PublishDeleted(e EventDeleted) {
	b.mu.RLock()
	subs := make([]func(EventDeleted), len(b.deleted))
	copy(subs, b.deleted)
	b.mu.RUnlock()

	for _, fn := range subs {
		fn(e)
	}
}
