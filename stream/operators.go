package stream

import "context"

// Map transforms each value using fn.
func Map[I, O any](s *Stream[I], fn func(context.Context, I) (O, error)) *Stream[O] {
	return &Stream[O]{
		create: func(ctx context.Context) Iterator[O] {
			return &mapIter[I, O]{source: s.create(ctx), fn: fn}
		},
	}
}

// Filter keeps only values that satisfy the predicate.
func Filter[T any](s *Stream[T], fn func(T) bool) *Stream[T] {
	return &Stream[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &filterIter[T]{source: s.create(ctx), fn: fn}
		},
	}
}

// FlatMap transforms each value into multiple values and flattens the result.
func FlatMap[I, O any](s *Stream[I], fn func(context.Context, I) ([]O, error)) *Stream[O] {
	return &Stream[O]{
		create: func(ctx context.Context) Iterator[O] {
			return &flatMapIter[I, O]{source: s.create(ctx), fn: fn}
		},
	}
}

// Reduce accumulates all values into a single result.
func Reduce[T, R any](ctx context.Context, s *Stream[T], init R, fn func(R, T) R) (R, error) {
	acc := init
	err := ForEach(ctx, s, func(_ context.Context, val T) error {
		acc = fn(acc, val)
		return nil
	})
	return acc, err
}

// --- Iterator implementations ---

type mapIter[I, O any] struct {
	source Iterator[I]
	fn     func(context.Context, I) (O, error)
}

func (it *mapIter[I, O]) Next(ctx context.Context) (O, bool, error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		var zero O
		return zero, false, err
	}
	out, err := it.fn(ctx, val)
	if err != nil {
		var zero O
		return zero, false, err
	}
	return out, true, nil
}

func (it *mapIter[I, O]) Close() error { return it.source.Close() }

type filterIter[T any] struct {
	source Iterator[T]
	fn     func(T) bool
}

func (it *filterIter[T]) Next(ctx context.Context) (T, bool, error) {
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			var zero T
			return zero, false, err
		}
		if it.fn(val) {
			return val, true, nil
		}
	}
}

func (it *filterIter[T]) Close() error { return it.source.Close() }

type flatMapIter[I, O any] struct {
	source  Iterator[I]
	fn      func(context.Context, I) ([]O, error)
	pending []O
}

func (it *flatMapIter[I, O]) Next(ctx context.Context) (O, bool, error) {
	for {
		if len(it.pending) > 0 {
			out := it.pending[0]
			it.pending = it.pending[1:]
			return out, true, nil
		}

		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			var zero O
			return zero, false, err
		}
		it.pending, err = it.fn(ctx, val)
		if err != nil {
			var zero O
			return zero, false, err
		}
	}
}

func (it *flatMapIter[I, O]) Close() error { return it.source.Close() }
