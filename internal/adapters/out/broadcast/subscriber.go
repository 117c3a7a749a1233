// Package broadcast fans order events out to live server-sent-event streams.
//
// Each connected client is a Subscriber with a bounded queue. The Registry owns
// the set of subscribers and the Broadcaster writes one pre-framed message into
// every queue without ever waiting on a slow client: a subscriber whose queue is
// full is disconnected and has to reload the order list after reconnecting.
// There is no replay; a subscriber only sees events fired after it registered.
package broadcast

import (
	"sync"

	"pedidos/internal/core/domain/model/kernel"
)

// DefaultBufferSize is the queue length used when none is configured.
const DefaultBufferSize = 64

// Subscriber is one live event stream. Only its HTTP handler reads Messages.
type Subscriber struct {
	id    kernel.UUID
	queue chan []byte
	done  chan struct{}
	once  sync.Once
}

// NewSubscriber creates a subscriber whose queue holds buffer frames.
func NewSubscriber(buffer int) *Subscriber {
	if buffer <= 0 {
		buffer = DefaultBufferSize
	}
	return &Subscriber{
		id:    kernel.NewUUID(),
		queue: make(chan []byte, buffer),
		done:  make(chan struct{}),
	}
}

func (s *Subscriber) ID() kernel.UUID {
	return s.id
}

// Messages yields framed events ready to be written to the response.
// The channel is never closed; watch Done to know when to stop.
func (s *Subscriber) Messages() <-chan []byte {
	return s.queue
}

// Done is closed once the subscriber has been unregistered.
func (s *Subscriber) Done() <-chan struct{} {
	return s.done
}

// enqueue never blocks. It reports false when the subscriber is closed or its
// queue is full.
func (s *Subscriber) enqueue(frame []byte) bool {
	select {
	case <-s.done:
		return false
	default:
	}

	select {
	case s.queue <- frame:
		return true
	default:
		return false
	}
}

func (s *Subscriber) close() {
	s.once.Do(func() {
		close(s.done)
	})
}
