package output

import (
	"errors"
	"fmt"
)

// Error is a structured error with code, message, and optional hint.
type Error struct {
	Code    string
	Message string
	Hint    string
	Cause   error
}

func (e *Error) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Hint)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *Error) ExitCode() int {
	return ExitCodeFor(e.Code)
}

// Error constructors for common cases.

func ErrUsage(msg string) *Error {
	return &Error{Code: CodeUsage, Message: msg}
}

func ErrNotFound(path string) *Error {
	return &Error{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("result file not found: %s", path),
	}
}

func ErrInput(msg string, cause error) *Error {
	return &Error{
		Code:    CodeInput,
		Message: msg,
		Hint:    "Expected a JSON result document: {\"tool\": ..., \"data\": ..., \"ui\": ...}",
		Cause:   cause,
	}
}

// AsError converts any error to a structured *Error, wrapping unknown errors
// under the internal code.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Code: CodeInternal, Message: err.Error(), Cause: err}
}
