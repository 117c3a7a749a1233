package queries

import (
	"context"

	"pedidos/internal/core/domain/model/order"
)

// OrderLister is the read side of the order repository.
type OrderLister interface {
	ListAll(ctx context.Context) ([]*order.Order, error)
}

// ListOrdersQueryHandler returns the dashboard's initial snapshot. Clients load it
// once and then follow the event stream, so the result is the stored orders
// themselves and shares their wire shape with orderCreated payloads.
type ListOrdersQueryHandler struct {
	lister OrderLister
}

func NewListOrdersQueryHandler(lister OrderLister) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{lister: lister}
}

// Handle returns all orders ascending by receipt time. An empty store yields an
// empty, non-nil slice.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.lister.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = make([]*order.Order, 0)
	}
	return orders, nil
}
