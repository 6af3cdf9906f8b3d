package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified error type for dagkit operations.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// IsCode reports whether err (or any error in its chain) carries the given code.
func IsCode(err error, code ErrorCode) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// --- Common Error Constructors ---

// CycleDetected creates an AppError for an edge insertion that would close a cycle.
func CycleDetected(from, to string) *AppError {
	return &AppError{
		Code: ErrCodeCycleDetected, Message: fmt.Sprintf("adding edge %q -> %q would create a cycle", from, to),
		Details: map[string]any{"from": from, "to": to},
	}
}

// UnknownTask creates an AppError for a dependency on a task that was never registered.
func UnknownTask(name string) *AppError {
	return &AppError{
		Code: ErrCodeUnknownTask, Message: fmt.Sprintf("task %q is not registered", name),
		Details: map[string]any{"task": name},
	}
}

// DuplicateTask creates an AppError for a conflicting re-registration.
func DuplicateTask(name string) *AppError {
	return &AppError{
		Code: ErrCodeDuplicateTask, Message: fmt.Sprintf("task %q is already registered with a different body", name),
		Details: map[string]any{"task": name},
	}
}

// PipelineSealed creates an AppError for registration after the first run.
func PipelineSealed(name string) *AppError {
	return &AppError{
		Code: ErrCodePipelineSealed, Message: fmt.Sprintf("cannot register %q: pipeline has already run", name),
		Details: map[string]any{"task": name},
	}
}

// TaskFailed creates an AppError wrapping a task execution failure.
func TaskFailed(name string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeTaskFailed, Message: fmt.Sprintf("task %q failed", name),
		Details: map[string]any{"task": name}, Cause: cause,
	}
}

// TypeMismatch creates an AppError for a typed task input of the wrong type.
func TypeMismatch(name string, want, got any) *AppError {
	return &AppError{
		Code: ErrCodeTypeMismatch, Message: fmt.Sprintf("task %q: expected input %T, got %T", name, want, got),
		Details: map[string]any{"task": name},
	}
}

// InvalidInput creates an AppError for invalid caller input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("invalid input: %s", reason),
		Details: details,
	}
}

// InvalidConfig creates an AppError for configuration that failed validation.
func InvalidConfig(reason string) *AppError {
	return &AppError{Code: ErrCodeInvalidConfig, Message: reason}
}

// NotFound creates an AppError for a missing named resource.
func NotFound(resource, name string) *AppError {
	return &AppError{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("%s %q was not found", resource, name),
		Details: map[string]any{"resource": resource, "name": name},
	}
}
