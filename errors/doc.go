// Package errors provides unified error handling for dagkit.
// It implements structured error types with machine-readable codes
// so callers can distinguish graph-construction failures (cycles,
// unknown dependencies) from task execution failures.
package errors
