package context

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// KeyUserID is the key for storing the authenticated user's ID.
const KeyUserID ContextKey = "user_id"

// SetUserID stores the authenticated user's ID in echo.Context.
func SetUserID(c echo.Context, userID uuid.UUID) {
	c.Set(string(KeyUserID), userID)
}

// GetUserID extracts the authenticated user's ID from echo.Context.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(string(KeyUserID)).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}

	return userID, true
}

// WithUserID returns a new context with the authenticated user's ID.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, KeyUserID, userID)
}

// GetUserIDFromContext extracts the authenticated user's ID from standard context.Context.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(KeyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}
