package output

import (
	"errors"
	"fmt"
)

// Exit codes:
// 0 = Success
// 1 = User error (bad flags, missing template, invalid config)
// 2 = System error (network, parse, filesystem)
const (
	ExitSuccess     = 0
	ExitUserError   = 1
	ExitSystemError = 2
)

// Error kinds. Every ExitError built by the kind constructors wraps one of
// these in its cause chain.
var (
	ErrConfig     = errors.New("configuration error")
	ErrNetwork    = errors.New("network error")
	ErrParse      = errors.New("parse error")
	ErrFilesystem = errors.New("filesystem error")
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUserError creates an error for user-caused issues (exit code 1).
func NewUserError(message string) *ExitError {
	return &ExitError{
		Code:    ExitUserError,
		Message: message,
	}
}

// NewConfigError reports a missing or invalid template or config file.
func NewConfigError(message string, cause error) *ExitError {
	return kindError(ExitUserError, ErrConfig, message, cause)
}

// NewNetworkError reports a failed request or a non-2xx response.
func NewNetworkError(message string, cause error) *ExitError {
	return kindError(ExitSystemError, ErrNetwork, message, cause)
}

// NewParseError reports a response body that is not the expected JSON.
func NewParseError(message string, cause error) *ExitError {
	return kindError(ExitSystemError, ErrParse, message, cause)
}

// NewFilesystemError reports a directory or file write failure.
func NewFilesystemError(message string, cause error) *ExitError {
	return kindError(ExitSystemError, ErrFilesystem, message, cause)
}

func kindError(code int, kind error, message string, cause error) *ExitError {
	wrapped := kind
	if cause != nil {
		wrapped = fmt.Errorf("%w: %w", kind, cause)
	}
	return &ExitError{
		Code:    code,
		Message: message,
		Cause:   wrapped,
	}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitUserError for non-ExitError errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitUserError
}
