package http

import (
	"log/slog"
	"net/http"

	"pedidos/internal/adapters/in/http/servers"
	"pedidos/internal/adapters/out/broadcast"
	"pedidos/internal/adapters/wire"
	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// SubscriberRegistry is what the event stream needs from the broadcast registry.
type SubscriberRegistry interface {
	Subscribe() *broadcast.Subscriber
	Unregister(sub *broadcast.Subscriber) bool
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	updateOrdersStatusHandler commands.UpdateOrdersStatusCommandHandler
	deleteOrderHandler        commands.DeleteOrderCommandHandler

	// Query handlers
	listOrdersHandler queries.ListOrdersQueryHandler

	registry SubscriberRegistry
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrdersStatusHandler commands.UpdateOrdersStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	registry SubscriberRegistry,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		updateOrdersStatusHandler: updateOrdersStatusHandler,
		deleteOrderHandler:        deleteOrderHandler,
		listOrdersHandler:         listOrdersHandler,
		registry:                  registry,
		logger:                    logger.With("component", "http_server"),
	}
}

// ListOrders handles GET /api/pedidos - returns every order, oldest first.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, wire.Orders(orders))
}

// CreateOrder handles POST /api/pedidos - stores an order and announces it.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, failure("Invalid request body"))
	}

	var items []commands.CreateOrderItem
	if body.Items != nil {
		items = make([]commands.CreateOrderItem, 0, len(*body.Items))
		for _, item := range *body.Items {
			items = append(items, commands.CreateOrderItem{Name: item.Name, Quantity: item.Quantity})
		}
	}

	cmd, err := commands.NewCreateOrderCommand(body.Company, body.OrderDate, body.TotalVolumes, items)
	if err != nil {
		return s.fail(ctx, err, "Invalid order data")
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to store order")
	}

	s.logger.InfoContext(ctx.Request().Context(), "Order received",
		"orderId", created.ID().Int64(),
		"company", created.Details().Company(),
		"orderDate", created.Details().OrderDate(),
		"totalVolumes", created.Details().TotalVolumes(),
	)
	return ctx.JSON(http.StatusOK, success("Order received and stored"))
}

// UpdateOrdersStatus handles PATCH /api/pedidos/status - moves a batch of orders.
// Unknown ids do not fail the request.
func (s *Server) UpdateOrdersStatus(ctx echo.Context) error {
	var body servers.UpdateOrdersStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, failure("Invalid request body"))
	}

	cmd, err := commands.NewUpdateOrdersStatusCommand(body.Ids, body.Status)
	if err != nil {
		return s.fail(ctx, err, "Invalid status update")
	}

	updated, err := s.updateOrdersStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to update orders")
	}

	s.logger.InfoContext(ctx.Request().Context(), "Order status updated",
		"requested", len(body.Ids),
		"updated", updated,
		"status", cmd.Status().String(),
	)
	return ctx.JSON(http.StatusOK, servers.Result{Success: true})
}

// DeleteOrder handles DELETE /api/pedidos/{id}.
func (s *Server) DeleteOrder(ctx echo.Context, id int64) error {
	cmd, err := commands.NewDeleteOrderCommand(kernel.OrderID(id))
	if err != nil {
		return s.fail(ctx, err, "Invalid order id")
	}

	if _, err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to delete order")
	}

	s.logger.InfoContext(ctx.Request().Context(), "Order deleted", "orderId", id)
	return ctx.JSON(http.StatusOK, success("Order deleted"))
}
