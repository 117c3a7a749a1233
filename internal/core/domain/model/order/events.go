package order

import "pedidos/internal/core/domain/model/kernel"

// Event names as they appear on the wire.
const (
	OrderCreatedEventName  = "orderCreated"
	StatusUpdatedEventName = "statusUpdated"
	OrderDeletedEventName  = "orderDeleted"
)

// Event is a lifecycle fact about orders that has already been persisted.
type Event interface {
	Name() string
}

// OrderCreated carries the full stored order.
type OrderCreated struct {
	Order *Order
}

func (OrderCreated) Name() string { return OrderCreatedEventName }

// StatusUpdated carries the ids exactly as requested, including any that matched
// no order, and the status applied to the matching ones.
type StatusUpdated struct {
	IDs    []kernel.OrderID
	Status Status
}

func (StatusUpdated) Name() string { return StatusUpdatedEventName }

// OrderDeleted carries the id of the removed order.
type OrderDeleted struct {
	ID kernel.OrderID
}

func (OrderDeleted) Name() string { return OrderDeletedEventName }
