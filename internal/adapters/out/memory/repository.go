package memory

import (
	"cmp"
	"context"
	"slices"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"
)

// Repository implements ports.OrderRepository over a Store.
type Repository struct {
	store *Store
	uow   *UnitOfWork
}

// run hands fn the staged state of the open unit of work, or else takes the
// store and commits fn's changes when write is set.
func (r *Repository) run(ctx context.Context, write bool, fn func(st *state) error) error {
	if r.uow != nil && r.uow.staged != nil {
		return fn(r.uow.staged)
	}

	if err := r.store.acquire(ctx); err != nil {
		return err
	}
	defer r.store.release()

	if !write {
		st := r.store.state
		return fn(&st)
	}

	next := r.store.state.clone()
	if err := fn(&next); err != nil {
		return err
	}
	return r.store.commitLocked(next)
}

func (r *Repository) Insert(ctx context.Context, details order.Details) (*order.Order, error) {
	var created *order.Order
	err := r.run(ctx, true, func(st *state) error {
		o, err := order.NewOrder(r.store.ids.Next(), r.store.clock.Now(), details)
		if err != nil {
			return err
		}

		st.orders[o.ID()] = record{
			id:         o.ID(),
			details:    o.Details(),
			receivedAt: o.ReceivedAt(),
			status:     o.Status(),
		}
		st.maxID = max(st.maxID, o.ID())
		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *Repository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var found *order.Order
	err := r.run(ctx, false, func(st *state) error {
		rec, ok := st.orders[id]
		if !ok {
			return errs.NewObjectNotFoundError("orderId", id)
		}
		o, err := rec.toDomain()
		found = o
		return err
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (r *Repository) ListAll(ctx context.Context) ([]*order.Order, error) {
	var orders []*order.Order
	err := r.run(ctx, false, func(st *state) error {
		records := sortedRecords(st)
		orders = make([]*order.Order, 0, len(records))
		for _, rec := range records {
			o, err := rec.toDomain()
			if err != nil {
				return err
			}
			orders = append(orders, o)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *Repository) UpdateStatusForIDs(
	ctx context.Context,
	ids []kernel.OrderID,
	status order.Status,
) (int64, error) {
	if err := status.Validate(); err != nil {
		return 0, err
	}

	var updated int64
	err := r.run(ctx, true, func(st *state) error {
		seen := make(map[kernel.OrderID]struct{}, len(ids))
		for _, id := range ids {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}

			rec, ok := st.orders[id]
			if !ok {
				continue
			}
			rec.status = status
			st.orders[id] = rec
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

func (r *Repository) DeleteByID(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var deleted *order.Order
	err := r.run(ctx, true, func(st *state) error {
		rec, ok := st.orders[id]
		if !ok {
			return errs.NewObjectNotFoundError("orderId", id)
		}
		o, err := rec.toDomain()
		if err != nil {
			return err
		}
		delete(st.orders, id)
		deleted = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func (r *Repository) MaxID(ctx context.Context) (kernel.OrderID, error) {
	var maxID kernel.OrderID
	err := r.run(ctx, false, func(st *state) error {
		maxID = st.maxID
		return nil
	})
	return maxID, err
}

// sortedRecords orders by receipt time, then id.
func sortedRecords(st *state) []record {
	records := make([]record, 0, len(st.orders))
	for _, rec := range st.orders {
		records = append(records, rec)
	}
	slices.SortFunc(records, func(a, b record) int {
		if c := a.receivedAt.Compare(b.receivedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})
	return records
}
