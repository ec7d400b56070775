package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a service error for the transport layer.
type ErrorCode string

const (
	// ErrCodeUnauthorized indicates authentication failure.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeRateLimitExceeded indicates rate limit has been exceeded.
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
	// ErrCodeInvalidArgument indicates invalid input parameters.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeNotFound indicates the requested object does not exist.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeAlreadyExists indicates a uniqueness conflict.
	ErrCodeAlreadyExists ErrorCode = "ALREADY_EXISTS"
	// ErrCodeInternal indicates an unexpected server-side failure.
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// Error is a structured service error with a classification code.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// NotFound creates a NOT_FOUND error.
func NotFound(message string) *Error {
	return New(ErrCodeNotFound, message)
}

// InvalidArgument creates an INVALID_ARGUMENT error.
func InvalidArgument(message string) *Error {
	return New(ErrCodeInvalidArgument, message)
}

// Unauthorized creates an UNAUTHORIZED error.
func Unauthorized(message string) *Error {
	return New(ErrCodeUnauthorized, message)
}

// AlreadyExists creates an ALREADY_EXISTS error.
func AlreadyExists(message string) *Error {
	return New(ErrCodeAlreadyExists, message)
}

// CodeOf extracts the classification code from an error chain.
// Unclassified errors report INTERNAL.
func CodeOf(err error) ErrorCode {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.Code
	}
	return ErrCodeInternal
}
