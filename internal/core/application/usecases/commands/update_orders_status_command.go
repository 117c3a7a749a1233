package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/guard"
)

var ErrUpdateOrdersStatusCommandIsNotConstructed = errors.New(
	"UpdateOrdersStatusCommand must be created via NewUpdateOrdersStatusCommand constructor",
)

// UpdateOrdersStatusCommand moves a batch of orders to one status.
// The ids are kept exactly as requested so the published event can echo them.
type UpdateOrdersStatusCommand struct { //nolint:recvcheck //using for validation
	ids    []kernel.OrderID
	status order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrdersStatusCommand parses the wire status. Id validation happens in
// the StatusTransitionEngine so the rule lives in one place.
func NewUpdateOrdersStatusCommand(ids []int64, status string) (UpdateOrdersStatusCommand, error) {
	parsed, err := order.ParseStatus(status)
	if err != nil {
		return UpdateOrdersStatusCommand{}, err
	}

	orderIDs := make([]kernel.OrderID, 0, len(ids))
	for _, raw := range ids {
		orderIDs = append(orderIDs, kernel.OrderID(raw))
	}

	return UpdateOrdersStatusCommand{
		ids:    orderIDs,
		status: parsed,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrdersStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrdersStatusCommandIsNotConstructed)
}

// IDs returns a copy of the requested ids, duplicates and unknown ids included.
func (c UpdateOrdersStatusCommand) IDs() []kernel.OrderID {
	return append(make([]kernel.OrderID, 0, len(c.ids)), c.ids...)
}

func (c UpdateOrdersStatusCommand) Status() order.Status {
	return c.status
}
