// Package ports defines the contracts between the order core and its adapters.
// Storage, transaction and event-delivery implementations live under internal/adapters.
package ports

import (
	"context"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
)

// OrderRepository is the canonical store of orders. Every method reports backing
// store failures as *errs.PersistenceError.
type OrderRepository interface {
	// Insert assigns the id and receipt time, persists the order in Received status
	// and returns the stored record.
	Insert(ctx context.Context, details order.Details) (*order.Order, error)

	// Get returns the order or an *errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// ListAll returns every order ascending by receipt time, ties broken by id.
	ListAll(ctx context.Context) ([]*order.Order, error)

	// UpdateStatusForIDs sets status on every order whose id is in ids and returns
	// how many rows changed. Ids that match nothing are ignored.
	UpdateStatusForIDs(ctx context.Context, ids []kernel.OrderID, status order.Status) (int64, error)

	// DeleteByID removes the order and returns it as it was. A missing order is
	// reported as *errs.ObjectNotFoundError, never as a persistence failure.
	DeleteByID(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// MaxID returns the highest id ever stored, or zero for an empty store.
	MaxID(ctx context.Context) (kernel.OrderID, error)
}
