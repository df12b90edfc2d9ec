package errors

import (
	"fmt"
	"net/http"

	"eventpulse/internal/errors"
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

// WithDetails returns a copy of the error carrying the given details
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
	ErrEventNotFound = NewBaseError(
		http.StatusNotFound,
		"EVENT_NOT_FOUND",
		"Event not found",
		"",
	)

	ErrSessionNotWatching = NewBaseError(
		http.StatusConflict,
		"SESSION_NOT_WATCHING",
		"Proximity watch is not active for this session",
		"",
	)

	ErrSessionForbidden = NewBaseError(
		http.StatusForbidden,
		"SESSION_FORBIDDEN",
		"Session belongs to another user",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input",
		"",
	)

	ErrHistoryUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"HISTORY_UNAVAILABLE",
		"Notification history is unavailable",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid user ID in token",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)
)

// InvalidScheduleError reports an event whose start time is missing or whose
// end time does not follow its start. It is fatal to that one event only.
type InvalidScheduleError struct {
	reason string
}

// NewInvalidScheduleError creates an InvalidScheduleError with the given reason
func NewInvalidScheduleError(reason string) *InvalidScheduleError {
	return &InvalidScheduleError{reason: reason}
}

func (e *InvalidScheduleError) Error() string {
	return "invalid event schedule: " + e.reason
}

func (e *InvalidScheduleError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

func (e *InvalidScheduleError) ErrorCode() string {
	return "INVALID_SCHEDULE"
}

func (e *InvalidScheduleError) Message() string {
	return "Event schedule is invalid"
}

func (e *InvalidScheduleError) Details() string {
	return e.reason
}

// DataSourceError marks a failed read from an external collaborator. The
// affected candidate source degrades to "no candidate".
type DataSourceError struct {
	source string
	err    error
}

// NewDataSourceError wraps err as a failure of the named data source
func NewDataSourceError(source string, err error) *DataSourceError {
	return &DataSourceError{source: source, err: err}
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("data source %s failed: %v", e.source, e.err)
}

func (e *DataSourceError) Unwrap() error {
	return e.err
}

// Source returns the name of the failing data source
func (e *DataSourceError) Source() string {
	return e.source
}

func (e *DataSourceError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

func (e *DataSourceError) ErrorCode() string {
	return "DATA_SOURCE_UNAVAILABLE"
}

func (e *DataSourceError) Message() string {
	return "A data source is temporarily unavailable"
}

func (e *DataSourceError) Details() string {
	return e.source
}
