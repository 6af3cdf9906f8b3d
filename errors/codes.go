package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Graph construction errors.
const (
	// ErrCodeCycleDetected indicates an edge insertion would create a directed cycle.
	ErrCodeCycleDetected ErrorCode = "CYCLE_DETECTED"
	// ErrCodeUnknownTask indicates a dependency references a task that was never registered.
	ErrCodeUnknownTask ErrorCode = "UNKNOWN_TASK"
	// ErrCodeDuplicateTask indicates a task name collision with a different task body.
	ErrCodeDuplicateTask ErrorCode = "DUPLICATE_TASK"
	// ErrCodePipelineSealed indicates registration was attempted after the first run.
	ErrCodePipelineSealed ErrorCode = "PIPELINE_SEALED"
)

// Execution errors.
const (
	// ErrCodeTaskFailed indicates a task returned an error during a run.
	ErrCodeTaskFailed ErrorCode = "TASK_FAILED"
	// ErrCodeTypeMismatch indicates a typed task received an input of the wrong type.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
)

// Input/configuration errors.
const (
	// ErrCodeInvalidInput indicates malformed caller input.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInvalidConfig indicates configuration that failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeNotFound indicates a named resource (pipeline file, component) was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// String returns the string representation of the error code.
func (c ErrorCode) String() string { return string(c) }
