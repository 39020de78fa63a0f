package errors

import (
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes
const (
	CodeConfigInvalid  = "CONFIG_INVALID"
	CodeColumnMissing  = "COLUMN_MISSING"
	CodeColumnConflict = "COLUMN_CONFLICT"
	CodeDataInvalid    = "DATA_INVALID"
	CodeNotFound       = "NOT_FOUND"
	CodeRenderFailed   = "RENDER_FAILED"
	CodeInternalError  = "INTERNAL_ERROR"
)

// Common error constructors

// ConfigInvalid marks a fatal configuration problem surfaced before any
// data processing starts.
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

// ColumnMissing marks a mandatory column absent from the response table.
func ColumnMissing(column string) *AppError {
	return New(CodeColumnMissing, fmt.Sprintf("required column %q not found in data", column))
}

// ColumnConflict marks two original headers collapsing to the same
// normalized name.
func ColumnConflict(normalized, first, second string) *AppError {
	return New(CodeColumnConflict,
		fmt.Sprintf("columns %q and %q both normalize to %q", first, second, normalized))
}

// DataInvalid marks unusable input data (empty file, no header row, ...).
func DataInvalid(message string) *AppError {
	return New(CodeDataInvalid, message)
}

// NotFound marks a missing file or resource.
func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource))
}

// RenderFailed marks a report renderer failure.
func RenderFailed(renderer string, cause error) *AppError {
	return &AppError{
		Code:    CodeRenderFailed,
		Message: fmt.Sprintf("%s renderer failed", renderer),
		Cause:   cause,
	}
}

// InternalError marks an unexpected failure.
func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}
