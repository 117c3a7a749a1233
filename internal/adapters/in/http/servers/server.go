package servers

import (
	"fmt"
	"net/http"

	"pedidos/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List every stored order, oldest first
	// (GET /api/pedidos)
	ListOrders(ctx echo.Context) error
	// Submit a new order
	// (POST /api/pedidos)
	CreateOrder(ctx echo.Context) error
	// Move a batch of orders to one status
	// (PATCH /api/pedidos/status)
	UpdateOrdersStatus(ctx echo.Context) error
	// Server-sent events with orderCreated, statusUpdated and orderDeleted
	// (GET /api/pedidos/stream)
	StreamOrderEvents(ctx echo.Context) error
	// Delete one order
	// (DELETE /api/pedidos/{id})
	DeleteOrder(ctx echo.Context, id int64) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	return w.Handler.ListOrders(ctx)
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

// UpdateOrdersStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrdersStatus(ctx echo.Context) error {
	return w.Handler.UpdateOrdersStatus(ctx)
}

// StreamOrderEvents converts echo context to params.
func (w *ServerInterfaceWrapper) StreamOrderEvents(ctx echo.Context) error {
	return w.Handler.StreamOrderEvents(ctx)
}

// DeleteOrder converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "id" -------------
	var id int64

	err = runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.DeleteOrder(ctx, id)
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for registration.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths,
// so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/pedidos", wrapper.ListOrders)
	router.POST(baseURL+"/api/pedidos", wrapper.CreateOrder)
	router.PATCH(baseURL+"/api/pedidos/status", wrapper.UpdateOrdersStatus)
	router.GET(baseURL+"/api/pedidos/stream", wrapper.StreamOrderEvents)
	router.DELETE(baseURL+"/api/pedidos/:id", wrapper.DeleteOrder)
}

// GetSwagger returns the parsed OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(api.OpenAPI)
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI document: %w", err)
	}
	return swagger, nil
}
