package commands

import (
	"context"
	"sync"

	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/ports"
)

// EventSequencer makes commit and publish a single step, so events leave in
// the order their writes were committed. Every handler that writes orders
// must share one sequencer.
type EventSequencer struct {
	mu        sync.Mutex
	publisher ports.EventPublisher
}

func NewEventSequencer(publisher ports.EventPublisher) *EventSequencer {
	return &EventSequencer{publisher: publisher}
}

// CommitAndPublish commits tx and, only if that succeeds, publishes event before
// any other commit can complete through this sequencer.
func (s *EventSequencer) CommitAndPublish(ctx context.Context, tx TxManager, event order.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	s.publisher.Publish(ctx, event)
	return nil
}
