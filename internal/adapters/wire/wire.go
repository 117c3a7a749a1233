// Package wire renders orders and order events in their public JSON form. The
// HTTP responses, the SSE stream and the Kafka sink all go through it, so an
// orderCreated payload is byte-for-byte an element of GET /api/pedidos.
package wire

import (
	"encoding/json"
	"fmt"

	"pedidos/internal/adapters/in/http/servers"
	"pedidos/internal/core/domain/model/order"
)

// Message is an encoded event. Key is the order id, or empty for batch events.
type Message struct {
	Name string
	Key  string
	Data []byte
}

func Status(s order.Status) servers.OrderStatus {
	return servers.OrderStatus(s.String())
}

func Order(o *order.Order) servers.Order {
	details := o.Details()
	items := make([]servers.Item, 0, len(details.Items()))
	for _, item := range details.Items() {
		items = append(items, servers.Item{Name: item.Name(), Quantity: item.Quantity()})
	}

	return servers.Order{
		Company:      details.Company(),
		Id:           o.ID().Int64(),
		Items:        items,
		OrderDate:    details.OrderDate(),
		ReceivedAt:   o.ReceivedAt(),
		Status:       Status(o.Status()),
		TotalVolumes: details.TotalVolumes(),
	}
}

func Orders(orders []*order.Order) []servers.Order {
	out := make([]servers.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, Order(o))
	}
	return out
}

// Payload returns the value serialized as the data of event.
func Payload(event order.Event) (any, string, error) {
	switch e := event.(type) {
	case order.OrderCreated:
		if err := e.Order.Validate(); err != nil {
			return nil, "", err
		}
		return Order(e.Order), e.Order.ID().String(), nil
	case order.StatusUpdated:
		ids := make([]int64, 0, len(e.IDs))
		for _, id := range e.IDs {
			ids = append(ids, id.Int64())
		}
		return servers.StatusUpdatedEvent{Ids: ids, NewStatus: Status(e.Status)}, "", nil
	case order.OrderDeleted:
		return e.ID.Int64(), e.ID.String(), nil
	default:
		return nil, "", fmt.Errorf("unsupported event %T", event)
	}
}

// Encode serializes event once for every transport.
func Encode(event order.Event) (Message, error) {
	payload, key, err := Payload(event)
	if err != nil {
		return Message{}, err
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, fmt.Errorf("encode %s: %w", event.Name(), err)
	}

	return Message{Name: event.Name(), Key: key, Data: data}, nil
}
