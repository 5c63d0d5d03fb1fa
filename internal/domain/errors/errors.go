package errors

import (
	"net/http"

	"atlas/internal/errors"
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
	// Partner-related errors
	ErrPartnerNotFound = NewBaseError(
		http.StatusNotFound,
		"PARTNER_NOT_FOUND",
		"partner not found",
		"",
	)

	ErrPartnerAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PARTNER_ALREADY_EXISTS",
		"a partner with this name already exists",
		"",
	)

	ErrPartnerInactive = NewBaseError(
		http.StatusConflict,
		"PARTNER_INACTIVE",
		"partner is deactivated",
		"",
	)

	ErrPartnerHasTerritories = NewBaseError(
		http.StatusConflict,
		"PARTNER_HAS_TERRITORIES",
		"partner still owns territories",
		"",
	)

	// Territory-related errors
	ErrTerritoryNotFound = NewBaseError(
		http.StatusNotFound,
		"TERRITORY_NOT_FOUND",
		"territory not found",
		"",
	)

	ErrInvalidGeometry = NewBaseError(
		http.StatusBadRequest,
		"INVALID_GEOMETRY",
		"geometry is not a valid polygon or multipolygon",
		"",
	)

	ErrInvalidPriority = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRIORITY",
		"priority must be a non-negative integer",
		"",
	)

	ErrNoOverlapToResolve = NewBaseError(
		http.StatusConflict,
		"NO_OVERLAP_TO_RESOLVE",
		"territory does not overlap any other territory",
		"",
	)

	// Quote-related errors
	ErrQuoteNotFound = NewBaseError(
		http.StatusNotFound,
		"QUOTE_NOT_FOUND",
		"quote not found",
		"",
	)

	ErrInvalidCoordinates = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATES",
		"latitude must be within [-90, 90] and longitude within [-180, 180]",
		"",
	)

	// Geocoding-related errors
	ErrGeocodeNoResult = NewBaseError(
		http.StatusNotFound,
		"GEOCODE_NO_RESULT",
		"no location found for the given address",
		"",
	)

	ErrGeocodeUnavailable = NewBaseError(
		http.StatusBadGateway,
		"GEOCODE_UNAVAILABLE",
		"geocoding provider is unreachable",
		"",
	)

	// Authentication-related errors
	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"invalid or expired token",
		"",
	)

	ErrInsufficientRole = NewBaseError(
		http.StatusForbidden,
		"INSUFFICIENT_ROLE",
		"your role does not allow this operation",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"request validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
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
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
