package broadcast

import (
	"sync"

	"pedidos/internal/core/domain/model/kernel"
)

// Registry is the set of live subscribers. The map never leaves the mutex;
// callers get copies from Snapshot.
type Registry struct {
	mu          sync.RWMutex
	subscribers map[kernel.UUID]*Subscriber
	buffer      int
	closed      bool
}

// NewRegistry creates an empty registry whose subscribers queue buffer frames.
func NewRegistry(buffer int) *Registry {
	if buffer <= 0 {
		buffer = DefaultBufferSize
	}
	return &Registry{
		subscribers: make(map[kernel.UUID]*Subscriber),
		buffer:      buffer,
	}
}

// Subscribe creates and registers a new subscriber.
func (r *Registry) Subscribe() *Subscriber {
	sub := NewSubscriber(r.buffer)
	r.Register(sub)
	return sub
}

// Register adds sub. Registering the same subscriber twice keeps one entry.
// After Close, sub is not added and its Done channel is closed at once.
func (r *Registry) Register(sub *Subscriber) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		sub.close()
		return
	}
	r.subscribers[sub.ID()] = sub
	r.mu.Unlock()
}

// Close disconnects every subscriber and refuses new ones. Streams end as soon
// as they observe Done, which lets the HTTP server drain on shutdown.
func (r *Registry) Close() {
	r.mu.Lock()
	r.closed = true
	subs := make([]*Subscriber, 0, len(r.subscribers))
	for id, sub := range r.subscribers {
		subs = append(subs, sub)
		delete(r.subscribers, id)
	}
	r.mu.Unlock()

	for _, sub := range subs {
		sub.close()
	}
}

// Unregister removes sub and closes its Done channel. It reports whether sub
// was still registered, so repeated calls are harmless.
func (r *Registry) Unregister(sub *Subscriber) bool {
	r.mu.Lock()
	_, ok := r.subscribers[sub.ID()]
	delete(r.subscribers, sub.ID())
	r.mu.Unlock()

	sub.close()
	return ok
}

// Snapshot returns the subscribers registered at the time of the call.
func (r *Registry) Snapshot() []*Subscriber {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Subscriber, 0, len(r.subscribers))
	for _, sub := range r.subscribers {
		out = append(out, sub)
	}
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.subscribers)
}
