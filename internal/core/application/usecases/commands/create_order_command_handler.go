package commands

import (
	"context"

	"pedidos/internal/core/domain/model/order"
)

// CreateOrderCommandHandler persists a new order and announces it.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, sequencer)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// every live dashboard has been handed an orderCreated event for created
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	sequencer  *EventSequencer
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, sequencer *EventSequencer) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		sequencer:  sequencer,
	}
}

// Handle inserts the order inside a transaction. orderCreated is published only
// after Commit succeeds; on any error nothing is published.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	created, err := uow.OrderRepository().Insert(ctx, cmd.Details())
	if err != nil {
		return nil, err
	}

	if err = h.sequencer.CommitAndPublish(ctx, uow, order.OrderCreated{Order: created}); err != nil {
		return nil, err
	}

	return created, nil
}
