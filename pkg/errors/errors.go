package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Lockfile errors
	ErrLockfileParse   ErrorCode = "LOCKFILE_PARSE"
	ErrLockfileCorrupt ErrorCode = "LOCKFILE_CORRUPT"
	ErrNotCanonical    ErrorCode = "NOT_CANONICAL"

	// Graph errors
	ErrGraphEncode   ErrorCode = "GRAPH_ENCODE"
	ErrSourceResolve ErrorCode = "SOURCE_RESOLVE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
)

// LockError represents a structured error with code and details
type LockError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LockError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LockError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *LockError) Is(target error) bool {
	var targetErr *LockError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LockError with the given code and message
func New(code ErrorCode, message string) *LockError {
	return &LockError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LockError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LockError {
	return &LockError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a LockError
func Wrap(err error, code ErrorCode, message string) *LockError {
	if err == nil {
		return nil
	}
	return &LockError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LockError {
	if err == nil {
		return nil
	}
	return &LockError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *LockError) WithDetail(key string, value interface{}) *LockError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *LockError) WithDetails(details map[string]interface{}) *LockError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithPath annotates err with the file it concerns. A LockError gains a
// "path" detail in place; any other error is wrapped under code.
func WithPath(err error, code ErrorCode, path string) error {
	if err == nil {
		return nil
	}
	var lockErr *LockError
	if errors.As(err, &lockErr) {
		if _, ok := lockErr.Details["path"]; !ok {
			lockErr.WithDetail("path", path)
		}
		return err
	}
	return Wrapf(err, code, "%s", path).WithDetail("path", path)
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var lockErr *LockError
	if errors.As(err, &lockErr) {
		return lockErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a LockError
func GetErrorCode(err error) ErrorCode {
	var lockErr *LockError
	if errors.As(err, &lockErr) {
		return lockErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a LockError
func GetErrorDetails(err error) map[string]interface{} {
	var lockErr *LockError
	if errors.As(err, &lockErr) {
		return lockErr.Details
	}
	return nil
}
