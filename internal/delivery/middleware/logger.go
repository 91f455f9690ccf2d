// Package middleware holds transport-agnostic echo middleware shared by the API server.
package middleware

import (
	"log/slog"
	"time"

	"vitashop/config"
	deliverycontext "vitashop/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// quietPaths are probed constantly by orchestrators and only logged at debug level.
var quietPaths = map[string]struct{}{
	"/health": {},
}

// LoggerMiddleware writes one access log line per request.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle runs the handler, lets the error handler write the response, then logs it.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			// Render now so the logged status is the one the client sees.
			c.Error(err)
		}

		m.logRequest(c, start, err)

		return nil
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	attrs := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Int64("bytes_out", res.Size),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}

	if userID, ok := deliverycontext.GetUserID(c); ok {
		attrs = append(attrs, slog.String("user_id", userID.String()))
	}
	if m.debug {
		attrs = append(attrs,
			slog.String("query", req.URL.RawQuery),
			slog.String("user_agent", req.UserAgent()),
		)
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	m.logger.LogAttrs(req.Context(), m.level(c.Path(), res.Status), "HTTP request", attrs...)
}

func (m *LoggerMiddleware) level(route string, status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	}

	if _, quiet := quietPaths[route]; quiet {
		return slog.LevelDebug
	}

	return slog.LevelInfo
}
