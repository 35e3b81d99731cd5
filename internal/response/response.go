// Package response holds the JSON error envelope shared by all handlers.
// Success bodies are the model types serialized directly.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// APIError is the standard error response shape.
type APIError struct {
	Status  string `json:"status"` // always "error"
	Message string `json:"message"`
	Path    string `json:"path"`
}

func pathFromContext(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().URL.Path
}

// Error sends a JSON error response with the given HTTP status.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, APIError{
		Status:  "error",
		Message: message,
		Path:    pathFromContext(c),
	})
}

// NotFound sends 404 with the given message.
func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, message)
}

// InternalError sends 500 with the given message.
func InternalError(c echo.Context, message string) error {
	return Error(c, http.StatusInternalServerError, message)
}

// NoContent sends an empty 204.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}
