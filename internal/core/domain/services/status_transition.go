package services

import (
	"context"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"
)

// ErrIDsAreRequired is returned for an empty batch.
var ErrIDsAreRequired = errs.NewValueIsRequiredError("ids")

// StatusUpdater is the slice of the repository the engine needs.
type StatusUpdater interface {
	UpdateStatusForIDs(ctx context.Context, ids []kernel.OrderID, status order.Status) (int64, error)
}

// StatusTransitionEngine applies a status to a batch of orders.
//
// Business rules:
//   - The status must be Received, Picking or Finalized
//   - The batch must name at least one id
//   - Ids that match no order are skipped silently, zero and negative ids included
//   - The batch succeeds or fails as a whole; there is no per-id outcome
//
// Example:
//
//	engine := services.NewStatusTransitionEngine()
//	updated, err := engine.Apply(ctx, uow.OrderRepository(), ids, order.Picking)
type StatusTransitionEngine struct{}

func NewStatusTransitionEngine() StatusTransitionEngine {
	return StatusTransitionEngine{}
}

// Apply validates the batch and hands it to the updater in one call.
// Returns the number of orders that matched.
func (StatusTransitionEngine) Apply(
	ctx context.Context,
	updater StatusUpdater,
	ids []kernel.OrderID,
	status order.Status,
) (int64, error) {
	if err := status.Validate(); err != nil {
		return 0, err
	}

	if len(ids) == 0 {
		return 0, ErrIDsAreRequired
	}

	unique := dedupe(ids)
	if len(unique) == 0 {
		return 0, nil
	}

	return updater.UpdateStatusForIDs(ctx, unique, status)
}

// dedupe drops repeats and ids no order can carry, keeping first-seen order.
func dedupe(ids []kernel.OrderID) []kernel.OrderID {
	seen := make(map[kernel.OrderID]struct{}, len(ids))
	unique := make([]kernel.OrderID, 0, len(ids))
	for _, id := range ids {
		if id.Validate() != nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
