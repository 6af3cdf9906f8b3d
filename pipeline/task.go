package pipeline

import (
	"context"

	"github.com/kbukum/dagkit/errors"
)

// Task is the unit of work scheduled by a Pipeline.
//
// A task with no predecessor is invoked with a nil input. A task with
// predecessors receives its input according to the pipeline's
// MergePolicy.
type Task interface {
	Name() string
	Run(ctx context.Context, input any) (any, error)
}

type funcTask struct {
	name string
	fn   func(ctx context.Context, input any) (any, error)
}

func (t *funcTask) Name() string { return t.name }

func (t *funcTask) Run(ctx context.Context, input any) (any, error) {
	return t.fn(ctx, input)
}

// TaskFunc wraps a function as a Task.
func TaskFunc(name string, fn func(ctx context.Context, input any) (any, error)) Task {
	return &funcTask{name: name, fn: fn}
}

// Source wraps a zero-input function as a root Task. The input passed by
// the scheduler is ignored.
func Source(name string, fn func(ctx context.Context) (any, error)) Task {
	return &funcTask{name: name, fn: func(ctx context.Context, _ any) (any, error) {
		return fn(ctx)
	}}
}

// Typed bridges a strongly-typed function into a Task. The predecessor
// output is asserted to I; a mismatch fails the run with TYPE_MISMATCH.
func Typed[I, O any](name string, fn func(ctx context.Context, input I) (O, error)) Task {
	return &funcTask{name: name, fn: func(ctx context.Context, input any) (any, error) {
		typed, ok := input.(I)
		if !ok {
			var want I
			return nil, errors.TypeMismatch(name, want, input)
		}
		return fn(ctx, typed)
	}}
}
