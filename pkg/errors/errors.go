package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents different types of errors that can occur
type ErrorType string

const (
	ErrorTypeNetwork      ErrorType = "network"
	ErrorTypeParsing      ErrorType = "parsing"
	ErrorTypeStorage      ErrorType = "storage"
	ErrorTypeInvalidInput ErrorType = "invalid_input"
	ErrorTypeUnknown      ErrorType = "unknown"
)

// Error represents a failure with type information
type Error struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s error: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a typed error wrapping err
func New(errorType ErrorType, message string, err error) *Error {
	return &Error{
		Type:    errorType,
		Message: message,
		Err:     err,
	}
}

// HTTPError is returned when a server answers with a non-2xx status
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// NewHTTPError creates an HTTPError for the given status and URL
func NewHTTPError(statusCode int, url string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, URL: url}
}

// IsSuccessStatus reports whether statusCode is in the 2xx range
func IsSuccessStatus(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// StatusCode extracts the HTTP status from err, if it carries one
func StatusCode(err error) (int, bool) {
	var httpErr *HTTPError
	if stderrors.As(err, &httpErr) {
		return httpErr.StatusCode, true
	}
	return 0, false
}

// TypeOf returns the ErrorType of err. HTTP status failures report as network errors.
func TypeOf(err error) ErrorType {
	if err == nil {
		return ""
	}
	var typed *Error
	if stderrors.As(err, &typed) {
		return typed.Type
	}
	var httpErr *HTTPError
	if stderrors.As(err, &httpErr) {
		return ErrorTypeNetwork
	}
	return ErrorTypeUnknown
}

// Is reports whether err is of the given type
func Is(err error, errorType ErrorType) bool {
	return TypeOf(err) == errorType
}
