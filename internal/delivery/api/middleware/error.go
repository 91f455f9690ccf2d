package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"vitashop/internal/delivery/api/response"
	deliverycontext "vitashop/internal/delivery/context"
	domainerrors "vitashop/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.Any("error", err), slog.String("code", appErr.ErrorCode()))
			_ = response.InternalServerError(c)

			return
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode())

		return
	}

	// Routing, method and body-limit errors raised by echo itself
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError {
		_ = response.Error(c, httpErr.Code, statusCode(httpErr.Code))

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c)
}

// statusCode turns an HTTP status into an upper snake case code, e.g. 405 -> METHOD_NOT_ALLOWED.
func statusCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "HTTP_ERROR"
	}

	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}
