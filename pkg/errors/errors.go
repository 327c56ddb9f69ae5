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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"

	// Subprocess errors
	ErrCommandStart ErrorCode = "COMMAND_START"
	ErrCommandExit  ErrorCode = "COMMAND_EXIT"

	// Build pipeline errors
	ErrTransfer      ErrorCode = "TRANSFER"
	ErrRemoteBuild   ErrorCode = "REMOTE_BUILD"
	ErrSynctexRepair ErrorCode = "SYNCTEX_REPAIR"
)

// RemotexError represents a structured error with code and details
type RemotexError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RemotexError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RemotexError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *RemotexError) Is(target error) bool {
	var targetErr *RemotexError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RemotexError with the given code and message
func New(code ErrorCode, message string) *RemotexError {
	return &RemotexError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RemotexError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RemotexError {
	return &RemotexError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a RemotexError
func Wrap(err error, code ErrorCode, message string) *RemotexError {
	if err == nil {
		return nil
	}
	return &RemotexError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RemotexError {
	if err == nil {
		return nil
	}
	return &RemotexError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *RemotexError) WithDetail(key string, value interface{}) *RemotexError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var rerr *RemotexError
	if errors.As(err, &rerr) {
		return rerr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RemotexError
func GetErrorCode(err error) ErrorCode {
	var rerr *RemotexError
	if errors.As(err, &rerr) {
		return rerr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a RemotexError
func GetErrorDetails(err error) map[string]interface{} {
	var rerr *RemotexError
	if errors.As(err, &rerr) {
		return rerr.Details
	}
	return nil
}
