package stream

import (
	"context"
	"errors"
)

// ErrForeignStream is returned when Concat receives a Stream that was not
// created by this package and therefore cannot be drained lazily.
var ErrForeignStream = errors.New("stream: concat requires streams created by this package")

// FromSlice creates a Stream emitting every element of the slice in order,
// followed by the end signal. The slice is held by the source until drained.
func FromSlice[T any](slice []T) Stream[T] {
	return New[T](&sliceSource[T]{slice: slice})
}

// FromChannel creates a Stream emitting every value received from the
// channel until it is closed.
func FromChannel[T any](ch <-chan T) Stream[T] {
	return New[T](&channelSource[T]{ch: ch})
}

// Empty creates a Stream that ends immediately with zero elements.
func Empty[T any]() Stream[T] {
	return New[T](&emptySource[T]{})
}

// Concat combines the given streams into one stream containing every
// element of every input, in input-stream order. Inputs are drained
// sequentially: stream i+1 is not started until stream i has fully ended,
// so each source's elements stay contiguous and internally ordered. A
// failure while draining a source aborts the concat; elements already
// delivered stay delivered. Concat with no arguments ends immediately.
func Concat[T any](streams ...Stream[T]) Stream[T] {
	if len(streams) == 0 {
		return Empty[T]()
	}
	return New[T](&concatSource[T]{streams: streams})
}

// sliceSource emits the elements of a slice in order.
type sliceSource[T any] struct {
	slice []T
	index int
}

func (s *sliceSource[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T

	if s.index >= len(s.slice) {
		return zero, false, nil
	}

	select {
	case <-ctx.Done():
		return zero, false, ctx.Err()
	default:
	}

	value := s.slice[s.index]
	s.index++
	return value, true, nil
}

func (s *sliceSource[T]) Close() error {
	return nil
}

// channelSource emits values received from a channel until it closes.
type channelSource[T any] struct {
	ch <-chan T
}

func (s *channelSource[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T

	select {
	case value, ok := <-s.ch:
		if !ok {
			return zero, false, nil
		}
		return value, true, nil
	case <-ctx.Done():
		return zero, false, ctx.Err()
	}
}

func (s *channelSource[T]) Close() error {
	return nil
}

// emptySource ends immediately.
type emptySource[T any] struct{}

func (s *emptySource[T]) Next(_ context.Context) (T, bool, error) {
	var zero T
	return zero, false, nil
}

func (s *emptySource[T]) Close() error {
	return nil
}

// concatSource drains each input stream to its end before starting the
// next one. The currently-active stream's pipeline runs only while this
// source is being pulled; pending streams are untouched.
type concatSource[T any] struct {
	streams []Stream[T]
	index   int
	active  <-chan element[T]

	// onDrained, when set, is called each time an input stream ends.
	onDrained func()
}

func (s *concatSource[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T

	for {
		if s.active == nil {
			if s.index >= len(s.streams) {
				return zero, false, nil
			}

			inner, ok := runnable(s.streams[s.index])
			if !ok {
				return zero, false, ErrForeignStream
			}

			ch, err := inner.run(ctx)
			if err != nil {
				return zero, false, err
			}
			s.active = ch
			s.index++
		}

		select {
		case el, ok := <-s.active:
			if !ok {
				s.advance()
				continue
			}
			if el.err != nil {
				return zero, false, el.err
			}
			if el.end {
				s.advance()
				continue
			}
			return el.value, true, nil
		case <-ctx.Done():
			return zero, false, ctx.Err()
		}
	}
}

// advance finishes the active stream and moves on to the next one.
func (s *concatSource[T]) advance() {
	s.active = nil
	_ = s.streams[s.index-1].Close()
	if s.onDrained != nil {
		s.onDrained()
	}
}

func (s *concatSource[T]) Close() error {
	var firstErr error
	for _, st := range s.streams {
		if err := st.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// runnable unwraps a Stream down to this package's executable implementation.
func runnable[T any](s Stream[T]) (*stream[T], bool) {
	switch v := s.(type) {
	case *stream[T]:
		return v, true
	case *metricsStream[T]:
		return runnable(v.inner)
	default:
		return nil, false
	}
}
