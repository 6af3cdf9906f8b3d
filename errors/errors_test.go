package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeNotFound, "not found")
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "not found" {
		t.Errorf("expected message 'not found', got %q", err.Message)
	}
}

func TestAppError_CycleDetected(t *testing.T) {
	err := CycleDetected("b", "a")
	if err.Code != ErrCodeCycleDetected {
		t.Errorf("expected CYCLE_DETECTED, got %s", err.Code)
	}
	if err.Details["from"] != "b" || err.Details["to"] != "a" {
		t.Errorf("expected from=b to=a, got %v", err.Details)
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("expected 'cycle' in message, got %q", err.Error())
	}
}

func TestAppError_UnknownTask(t *testing.T) {
	err := UnknownTask("missing")
	if err.Code != ErrCodeUnknownTask {
		t.Errorf("expected UNKNOWN_TASK, got %s", err.Code)
	}
	if err.Details["task"] != "missing" {
		t.Errorf("expected task=missing, got %v", err.Details["task"])
	}
}

func TestAppError_TaskFailed_WrapsCause(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := TaskFailed("evens", cause)
	if err.Code != ErrCodeTaskFailed {
		t.Errorf("expected TASK_FAILED, got %s", err.Code)
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("expected cause in message, got %q", err.Error())
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root")
	err := New(ErrCodeInvalidInput, "bad").WithCause(cause)
	if err.Unwrap() != cause {
		t.Error("expected Unwrap to return the cause")
	}
}

func TestAppError_WithDetail(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad").WithDetail("field", "top_n")
	if err.Details["field"] != "top_n" {
		t.Errorf("expected field=top_n, got %v", err.Details["field"])
	}
}

func TestIsCode(t *testing.T) {
	err := CycleDetected("a", "b")
	wrapped := fmt.Errorf("register: %w", err)

	if !IsCode(wrapped, ErrCodeCycleDetected) {
		t.Error("expected IsCode to match through wrapping")
	}
	if IsCode(wrapped, ErrCodeTaskFailed) {
		t.Error("expected IsCode to reject a different code")
	}
	if IsCode(fmt.Errorf("plain"), ErrCodeCycleDetected) {
		t.Error("expected IsCode to reject a plain error")
	}
}

func TestAppError_PipelineSealed(t *testing.T) {
	err := PipelineSealed("late")
	if err.Code != ErrCodePipelineSealed {
		t.Errorf("expected PIPELINE_SEALED, got %s", err.Code)
	}
}
