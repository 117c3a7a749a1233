package commands

import (
	"errors"
	"fmt"

	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderItem is one requested line as received from the client.
type CreateOrderItem struct {
	Name     string
	Quantity int
}

// CreateOrderCommand represents a client submitting a new shipment order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Acme", "2024-01-01", 3, []CreateOrderItem{{Name: "box", Quantity: 3}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	details order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the submitted fields and items.
// All violations are joined into one error.
func NewCreateOrderCommand(
	company, orderDate string,
	totalVolumes int,
	items []CreateOrderItem,
) (CreateOrderCommand, error) {
	domainItems := make([]order.Item, 0, len(items))
	itemErrs := make([]error, 0)
	for i, raw := range items {
		item, err := order.NewItem(raw.Name, raw.Quantity)
		if err != nil {
			itemErrs = append(itemErrs, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err))
			continue
		}
		domainItems = append(domainItems, item)
	}

	details, err := order.NewDetails(company, orderDate, totalVolumes, domainItems)
	if err = errors.Join(append(itemErrs, err)...); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Details returns the validated order details.
func (c CreateOrderCommand) Details() order.Details {
	return c.details
}
