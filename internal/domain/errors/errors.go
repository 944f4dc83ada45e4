package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Catalog-related errors
	ErrUnknownEntityType = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_ENTITY_TYPE",
		"Unknown entity type",
		"",
	)

	ErrUnknownFilter = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_FILTER",
		"Unknown listing filter",
		"",
	)

	ErrCatalogUnavailable = NewBaseError(
		http.StatusBadGateway,
		"CATALOG_UNAVAILABLE",
		"The catalog could not be loaded",
		"",
	)

	// Location-related errors
	ErrLocationNotResolved = NewBaseError(
		http.StatusNotFound,
		"LOCATION_NOT_RESOLVED",
		"No location is available yet",
		"",
	)

	ErrInvalidCoordinates = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATES",
		"Latitude or longitude out of range",
		"",
	)

	ErrGeocodingFailed = NewBaseError(
		http.StatusBadGateway,
		"GEOCODING_FAILED",
		"Place search failed",
		"",
	)

	// Session-related errors
	ErrLoginRequired = NewBaseError(
		http.StatusUnauthorized,
		"LOGIN_REQUIRED",
		"Sign in to continue",
		"",
	)

	ErrInvalidSessionToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_SESSION_TOKEN",
		"Invalid or expired session token",
		"",
	)

	// Engagement-related errors
	ErrEngagementUnsupported = NewBaseError(
		http.StatusBadRequest,
		"ENGAGEMENT_UNSUPPORTED",
		"This action is not available for this kind of item",
		"",
	)

	ErrEngagementFailed = NewBaseError(
		http.StatusBadGateway,
		"ENGAGEMENT_FAILED",
		"The change could not be saved",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
