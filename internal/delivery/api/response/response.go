package response

import (
	"net/http"

	domainerrors "vitashop/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Body is the envelope of every JSON response. Message carries the business code.
type Body struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Success returns 200 with the SUCCESS code and an optional payload
func Success(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, Body{
		Message: domainerrors.CodeSuccess,
		Data:    data,
	})
}

// Empty returns 200 with the EMPTY code and no payload
func Empty(c echo.Context) error {
	return c.JSON(http.StatusOK, Body{Message: domainerrors.CodeEmpty})
}

// Error returns a response carrying only a business code
func Error(c echo.Context, statusCode int, code string) error {
	return c.JSON(statusCode, Body{Message: code})
}

// KeyError returns a 400 KEY_ERROR
func KeyError(c echo.Context) error {
	return Error(c, http.StatusBadRequest, domainerrors.CodeKeyError)
}

// NotFound returns a 404 DOES_NOT_EXIST
func NotFound(c echo.Context) error {
	return Error(c, http.StatusNotFound, domainerrors.CodeDoesNotExist)
}

// Unauthorized returns a 401 UNAUTHORIZED
func Unauthorized(c echo.Context) error {
	return Error(c, http.StatusUnauthorized, domainerrors.CodeUnauthorized)
}

// InternalServerError returns a 500 INTERNAL_ERROR
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, domainerrors.CodeInternalError)
}

// HandleAppError renders domain errors with their status and code. Any other error is
// returned to echo so the central error handler can log and mask it.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode())
	}

	return errors.WithStack(err)
}
