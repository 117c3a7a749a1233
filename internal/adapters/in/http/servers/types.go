// Package servers holds the HTTP contract described by api/openapi.yaml: the
// request and response models, the ServerInterface the adapter implements and
// the echo wrapper that binds path parameters before calling it.
//
// The code is maintained by hand in the layout oapi-codegen produces for echo.
// Keep it in step with api/openapi.yaml; server_test.go checks the routes and
// that the embedded document loads.
package servers

import "time"

// Defines values for OrderStatus.
const (
	OrderStatusFinalized OrderStatus = "finalized"
	OrderStatusPicking   OrderStatus = "picking"
	OrderStatusReceived  OrderStatus = "received"
)

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// Item defines model for Item.
type Item struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Company      string  `json:"company"`
	Items        *[]Item `json:"items,omitempty"`
	OrderDate    string  `json:"orderDate"`
	TotalVolumes int     `json:"totalVolumes"`
}

// Order defines model for Order.
type Order struct {
	Company      string      `json:"company"`
	Id           int64       `json:"id"`
	Items        []Item      `json:"items"`
	OrderDate    string      `json:"orderDate"`
	ReceivedAt   time.Time   `json:"receivedAt"`
	Status       OrderStatus `json:"status"`
	TotalVolumes int         `json:"totalVolumes"`
}

// Result defines model for Result.
type Result struct {
	Message *string `json:"message,omitempty"`
	Success bool    `json:"success"`
}

// StatusUpdate defines model for StatusUpdate.
type StatusUpdate struct {
	Ids    []int64 `json:"ids"`
	Status string  `json:"status"`
}

// StatusUpdatedEvent defines model for StatusUpdatedEvent.
type StatusUpdatedEvent struct {
	Ids       []int64     `json:"ids"`
	NewStatus OrderStatus `json:"newStatus"`
}

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// UpdateOrdersStatusJSONRequestBody defines body for UpdateOrdersStatus for application/json ContentType.
type UpdateOrdersStatusJSONRequestBody = StatusUpdate
