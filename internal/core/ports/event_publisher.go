package ports

import (
	"context"

	"pedidos/internal/core/domain/model/order"
)

// EventPublisher delivers order events after the matching write has committed.
// Delivery is best-effort: implementations log their own failures and never
// report them to the caller, so a persisted mutation is never rolled back or
// retried because of a slow or dead listener.
type EventPublisher interface {
	Publish(ctx context.Context, event order.Event)
}
