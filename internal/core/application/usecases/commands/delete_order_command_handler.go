package commands

import (
	"context"

	"pedidos/internal/core/domain/model/order"
)

// DeleteOrderCommandHandler removes an order and announces the removal.
// A missing order comes back as *errs.ObjectNotFoundError and nothing is published.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	sequencer  *EventSequencer
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory, sequencer *EventSequencer) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		sequencer:  sequencer,
	}
}

// Handle returns the removed order.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) (*order.Order, error) {
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

	deleted, err := uow.OrderRepository().DeleteByID(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.sequencer.CommitAndPublish(ctx, uow, order.OrderDeleted{ID: deleted.ID()}); err != nil {
		return nil, err
	}

	return deleted, nil
}
