package middleware

import (
	"log/slog"
	"strings"

	"vitashop/internal/delivery/api/response"
	deliverycontext "vitashop/internal/delivery/context"
	"vitashop/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the bearer token into a user ID.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the access token and stores the user ID on both the echo
// context and the request context. Requests without a valid token get 401 UNAUTHORIZED.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)

		authHeader := req.Header.Get(echo.HeaderAuthorization)
		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || strings.TrimSpace(tokenString) == "" {
			return response.Unauthorized(c)
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			logger.Debug("Rejected access token", slog.Any("error", err))

			return response.Unauthorized(c)
		}

		deliverycontext.SetUserID(c, claims.UserID)

		ctx := deliverycontext.WithUserID(req.Context(), claims.UserID)
		ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", claims.UserID.String())))
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

// GetUserID returns the authenticated user's ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetUserID(c)
}
