package broadcast

import (
	"context"
	"encoding/json"
	"log/slog"

	"pedidos/internal/adapters/wire"
	"pedidos/internal/core/domain/model/order"
)

var (
	// ConnectedFrame is written first on every new stream.
	ConnectedFrame = []byte(": connected\n\n")
	// PingFrame is an SSE comment; clients ignore it.
	PingFrame = []byte(": ping\n\n")
)

// Frame formats one named server-sent event. data must not contain newlines,
// which holds for anything produced by encoding/json.
func Frame(name string, data []byte) []byte {
	frame := make([]byte, 0, len("event: \ndata: \n\n")+len(name)+len(data))
	frame = append(frame, "event: "...)
	frame = append(frame, name...)
	frame = append(frame, "\ndata: "...)
	frame = append(frame, data...)
	frame = append(frame, "\n\n"...)
	return frame
}

// Broadcaster delivers events to every registered subscriber. It implements
// ports.EventPublisher.
type Broadcaster struct {
	registry *Registry
	logger   *slog.Logger
}

func NewBroadcaster(registry *Registry, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		registry: registry,
		logger:   logger.With("component", "broadcaster"),
	}
}

// Broadcast serializes payload once and queues it for every subscriber.
// It returns how many subscribers accepted the frame.
func (b *Broadcaster) Broadcast(name string, payload any) int {
	data, err := json.Marshal(payload)
	if err != nil {
		b.logger.Error("Failed to encode event", "event", name, "error", err)
		return 0
	}
	return b.deliver(name, Frame(name, data))
}

// Publish maps a domain event to its wire payload and broadcasts it.
func (b *Broadcaster) Publish(ctx context.Context, event order.Event) {
	payload, _, err := wire.Payload(event)
	if err != nil {
		b.logger.ErrorContext(ctx, "Failed to encode event", "event", event.Name(), "error", err)
		return
	}

	delivered := b.Broadcast(event.Name(), payload)
	b.logger.DebugContext(ctx, "Event broadcast", "event", event.Name(), "subscribers", delivered)
}

// Heartbeat queues a comment frame so that dead connections fail their next write.
func (b *Broadcaster) Heartbeat() int {
	return b.deliver("ping", PingFrame)
}

func (b *Broadcaster) deliver(name string, frame []byte) int {
	delivered := 0
	for _, sub := range b.registry.Snapshot() {
		if sub.enqueue(frame) {
			delivered++
			continue
		}
		if b.registry.Unregister(sub) {
			b.logger.Warn("Subscriber disconnected: queue full",
				"subscriber", sub.ID().String(),
				"event", name,
			)
		}
	}
	return delivered
}
