package http

import (
	"net/http"

	"pedidos/internal/adapters/out/broadcast"

	"github.com/labstack/echo/v4"
)

// StreamOrderEvents handles GET /api/pedidos/stream.
//
// The subscriber is registered before the first byte is written, so every event
// published after the ": connected" comment reaches this client. This goroutine
// is the only writer to the response. The stream ends when the client goes away,
// when the broadcaster drops the subscriber for falling behind, or when a write fails.
func (s *Server) StreamOrderEvents(ctx echo.Context) error {
	sub := s.registry.Subscribe()
	defer s.registry.Unregister(sub)

	reqCtx := ctx.Request().Context()
	logger := s.logger.With("subscriber", sub.ID().String())

	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)

	if _, err := res.Write(broadcast.ConnectedFrame); err != nil {
		return nil
	}
	res.Flush()

	logger.InfoContext(reqCtx, "Subscriber connected")
	defer logger.InfoContext(reqCtx, "Subscriber disconnected")

	for {
		select {
		case <-reqCtx.Done():
			return nil
		case <-sub.Done():
			return nil
		case frame := <-sub.Messages():
			if _, err := res.Write(frame); err != nil {
				logger.DebugContext(reqCtx, "Stream write failed", "error", err)
				return nil
			}
			res.Flush()
		}
	}
}
