// Package errors defines the application error taxonomy. Every business-rule
// violation is surfaced as an AppError carrying both an HTTP status and a
// stable business error code.
package errors

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying detailed information.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error values.
var (
	// Authentication
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email or password",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"missing or invalid credentials",
		"",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"an account with this email already exists",
		"",
	)

	// Authorization
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"you do not have permission to access this resource",
		"",
	)

	ErrAdminOnly = NewBaseError(
		http.StatusForbidden,
		"ADMIN_ONLY",
		"this action requires administrator privileges",
		"",
	)

	// Users
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	// Addresses
	ErrAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"address not found",
		"",
	)

	// Catalog
	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"category not found",
		"",
	)

	ErrCategorySlugTaken = NewBaseError(
		http.StatusConflict,
		"CATEGORY_SLUG_TAKEN",
		"a category with this slug already exists",
		"",
	)

	ErrCategoryHasChildren = NewBaseError(
		http.StatusConflict,
		"CATEGORY_HAS_CHILDREN",
		"cannot delete a category with subcategories",
		"",
	)

	ErrCategoryHasProducts = NewBaseError(
		http.StatusConflict,
		"CATEGORY_HAS_PRODUCTS",
		"cannot delete a category with associated products",
		"",
	)

	ErrAttributeNotFound = NewBaseError(
		http.StatusNotFound,
		"ATTRIBUTE_NOT_FOUND",
		"attribute not found",
		"",
	)

	ErrAttributeNameTaken = NewBaseError(
		http.StatusConflict,
		"ATTRIBUTE_NAME_TAKEN",
		"an attribute with this name already exists",
		"",
	)

	ErrAttributeValueNotFound = NewBaseError(
		http.StatusNotFound,
		"ATTRIBUTE_VALUE_NOT_FOUND",
		"attribute value not found",
		"",
	)

	ErrAttributeValueTaken = NewBaseError(
		http.StatusConflict,
		"ATTRIBUTE_VALUE_TAKEN",
		"this value already exists for the attribute",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"product not found",
		"",
	)

	ErrProductSlugTaken = NewBaseError(
		http.StatusConflict,
		"PRODUCT_SLUG_TAKEN",
		"a product with this slug already exists",
		"",
	)

	ErrVariantNotFound = NewBaseError(
		http.StatusNotFound,
		"VARIANT_NOT_FOUND",
		"one or more product variants not found",
		"",
	)

	ErrSKUTaken = NewBaseError(
		http.StatusConflict,
		"SKU_TAKEN",
		"a variant with this SKU already exists",
		"",
	)

	// Orders
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"order not found",
		"",
	)

	ErrOrderStatusChanged = NewBaseError(
		http.StatusConflict,
		"ORDER_STATUS_CHANGED",
		"the order status changed while the update was being processed",
		"",
	)

	ErrEmptyOrder = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_ORDER",
		"order must have at least one item",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// General
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// NewInsufficientStockError reports a stock shortfall for a specific variant,
// naming the SKU and both quantities involved.
func NewInsufficientStockError(sku string, available, requested int) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		"INSUFFICIENT_STOCK",
		fmt.Sprintf("insufficient stock for variant %s. Available: %d, Requested: %d", sku, available, requested),
		"",
	)
}

// NewInvalidTransitionError reports an illegal order status transition.
func NewInvalidTransitionError(from, to string) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		"INVALID_TRANSITION",
		fmt.Sprintf("cannot change order status from %s to %s", from, to),
		"",
	)
}

// DatabaseExecuteError represents a database execution error, implementing the
// AppError interface.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message.
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information.
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
