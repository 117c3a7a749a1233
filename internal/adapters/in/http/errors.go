package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"pedidos/internal/adapters/in/http/servers"
	"pedidos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func success(message string) servers.Result {
	return servers.Result{Success: true, Message: &message}
}

func failure(message string) servers.Result {
	return servers.Result{Success: false, Message: &message}
}

// fail maps a use case error to its status code. Validation details are returned
// to the client; storage failures are logged and answered with message only.
func (s *Server) fail(ctx echo.Context, err error, message string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, failure("Order not found"))
	case errs.IsValidation(err):
		return ctx.JSON(http.StatusBadRequest, failure(message+": "+err.Error()))
	default:
		s.logger.ErrorContext(ctx.Request().Context(), message, "error", err)
		return ctx.JSON(http.StatusInternalServerError, failure(message))
	}
}

// NewHTTPErrorHandler renders echo errors (unknown routes, bad path parameters,
// recovered panics) in the same Result shape as handler errors.
func NewHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			message = fmt.Sprint(he.Message)
		} else {
			logger.ErrorContext(ctx.Request().Context(), "Unhandled error", "error", err)
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(code)
		} else {
			writeErr = ctx.JSON(code, failure(message))
		}
		if writeErr != nil {
			logger.ErrorContext(ctx.Request().Context(), "Failed to write error response", "error", writeErr)
		}
	}
}
