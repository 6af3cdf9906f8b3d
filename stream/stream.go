package stream

import "context"

// Iterator provides pull-based sequential access to a stream of values.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// Stream represents a lazy, pull-based sequence of values.
// No work happens until values are pulled via Collect or ForEach.
type Stream[T any] struct {
	create func(ctx context.Context) Iterator[T]
}

// From creates a stream from an existing Iterator.
func From[T any](iter Iterator[T]) *Stream[T] {
	return &Stream[T]{
		create: func(_ context.Context) Iterator[T] {
			return iter
		},
	}
}

// FromSlice creates a stream over a slice of values.
func FromSlice[T any](items []T) *Stream[T] {
	return &Stream[T]{
		create: func(_ context.Context) Iterator[T] {
			return &sliceIter[T]{items: items}
		},
	}
}

// FromFunc creates a stream from a factory that produces an Iterator.
func FromFunc[T any](fn func(ctx context.Context) Iterator[T]) *Stream[T] {
	return &Stream[T]{create: fn}
}

// Iter returns the raw Iterator for this stream. The caller must Close() it.
func (s *Stream[T]) Iter(ctx context.Context) Iterator[T] {
	return s.create(ctx)
}

// Collect pulls all values and returns them as a slice.
func Collect[T any](ctx context.Context, s *Stream[T]) ([]T, error) {
	iter := s.create(ctx)
	defer iter.Close()
	var result []T
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return result, err
		}
		if !ok {
			return result, nil
		}
		result = append(result, val)
	}
}

// ForEach pulls all values and calls fn for each.
func ForEach[T any](ctx context.Context, s *Stream[T], fn func(context.Context, T) error) error {
	iter := s.create(ctx)
	defer iter.Close()
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := fn(ctx, val); err != nil {
			return err
		}
	}
}

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }
