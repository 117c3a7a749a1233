package commands

import (
	"context"

	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/domain/services"
)

// UpdateOrdersStatusCommandHandler applies a batch status transition.
//
// Example:
//
//	cmd, _ := NewUpdateOrdersStatusCommand([]int64{42, 99}, "picking")
//	updated, err := handler.Handle(ctx, cmd)
//	// err == nil even if only 42 exists; updated == 1
type UpdateOrdersStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	engine     services.StatusTransitionEngine
	sequencer  *EventSequencer
}

func NewUpdateOrdersStatusCommandHandler(
	uowFactory OrderUoWFactory,
	sequencer *EventSequencer,
) UpdateOrdersStatusCommandHandler {
	return UpdateOrdersStatusCommandHandler{
		uowFactory: uowFactory,
		engine:     services.NewStatusTransitionEngine(),
		sequencer:  sequencer,
	}
}

// Handle runs the transition in one transaction and returns the number of
// matched orders. statusUpdated is published after commit with the ids as
// requested, even when some or all of them matched nothing.
func (h *UpdateOrdersStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrdersStatusCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	updated, err := h.engine.Apply(ctx, uow.OrderRepository(), cmd.IDs(), cmd.Status())
	if err != nil {
		return 0, err
	}

	event := order.StatusUpdated{IDs: cmd.IDs(), Status: cmd.Status()}
	if err = h.sequencer.CommitAndPublish(ctx, uow, event); err != nil {
		return 0, err
	}

	return updated, nil
}
