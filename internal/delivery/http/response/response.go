// Package response defines the unified JSON envelope of the API.
package response

import (
	"github.com/labstack/echo/v4"
)

// Response is the unified API response structure.
type Response struct {
	Status  string     `json:"status"` // "success" or "error"
	Message string     `json:"message,omitempty"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the machine-readable error information.
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g. "ORDER_NOT_FOUND"
	Details string `json:"details,omitempty"` // Optional detailed description
}

// Success writes a successful response.
func Success(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, Response{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// Error writes an error response.
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	return c.JSON(statusCode, Response{
		Status:  "error",
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}
