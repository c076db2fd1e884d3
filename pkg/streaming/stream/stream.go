package stream

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// ErrStreamClosed is returned when attempting to operate on a closed stream.
var ErrStreamClosed = errors.New("stream is closed")

// stageBuffer is the channel buffer between pipeline stages.
const stageBuffer = 64

// Stream represents an ordered, lazily-evaluated, single-use sequence of
// elements. Intermediate operations are lazy and return a new Stream;
// terminal operations consume the stream exactly once and close it.
type Stream[T any] interface {
	// Filter returns a stream of the elements matching the predicate.
	Filter(predicate func(T) bool) Stream[T]

	// FilterCtx returns a stream of the elements matching a context-aware
	// predicate. Elements are evaluated strictly one at a time, in input
	// order; a predicate error fails the stream and surfaces from the
	// terminal operation. Rejected elements are dropped, not buffered.
	FilterCtx(predicate func(context.Context, T) (bool, error)) Stream[T]

	// Map returns a stream of the results of applying mapper to each element.
	Map(mapper func(T) T) Stream[T]

	// Peek returns a stream that additionally performs action on each
	// element as it passes through.
	Peek(action func(T)) Stream[T]

	// ForEach consumes the stream, performing action on each element.
	ForEach(ctx context.Context, action func(T)) error

	// ToSlice consumes the stream and returns all elements in order.
	// On error the partial result is discarded.
	ToSlice(ctx context.Context) ([]T, error)

	// Count consumes the stream and returns the number of elements.
	Count(ctx context.Context) (int64, error)

	// Close closes the stream and releases resources. A closed stream
	// rejects further operations with ErrStreamClosed.
	Close() error

	// IsClosed returns true if the stream is closed.
	IsClosed() bool
}

// Source is a pull-based producer of elements for a stream.
type Source[T any] interface {
	// Next returns the next element and true, or the zero value and false
	// once the source is exhausted.
	Next(ctx context.Context) (T, bool, error)

	// Close releases the source's resources.
	Close() error
}

// element is the record flowing between pipeline stages. Exactly one of
// err and end may be set; the end marker terminates consumption.
type element[T any] struct {
	value T
	err   error
	end   bool
}

// stage transforms the element flow between two channels. A stage must
// forward err and end elements it receives, and stop after forwarding end.
type stage[T any] interface {
	run(ctx context.Context, in <-chan element[T], out chan<- element[T]) error
}

// stream is the default Stream implementation: a source followed by a
// pipeline of stages, executed as goroutines over buffered channels.
type stream[T any] struct {
	source    Source[T]
	stages    []stage[T]
	closed    atomic.Bool
	mu        sync.Mutex
	cancelRun context.CancelFunc
}

// New creates a Stream backed by the given source.
func New[T any](source Source[T]) Stream[T] {
	return &stream[T]{source: source}
}

// with derives a new stream sharing this stream's source with one more stage.
func (s *stream[T]) with(st stage[T]) Stream[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	stages := make([]stage[T], len(s.stages), len(s.stages)+1)
	copy(stages, s.stages)
	return &stream[T]{source: s.source, stages: append(stages, st)}
}

func (s *stream[T]) Filter(predicate func(T) bool) Stream[T] {
	return s.with(&filterStage[T]{predicate: predicate})
}

func (s *stream[T]) FilterCtx(predicate func(context.Context, T) (bool, error)) Stream[T] {
	return s.with(&filterCtxStage[T]{predicate: predicate})
}

func (s *stream[T]) Map(mapper func(T) T) Stream[T] {
	return s.with(&mapStage[T]{mapper: mapper})
}

func (s *stream[T]) Peek(action func(T)) Stream[T] {
	return s.with(&peekStage[T]{action: action})
}

func (s *stream[T]) ForEach(ctx context.Context, action func(T)) error {
	return s.drain(ctx, func(v T) {
		action(v)
	})
}

func (s *stream[T]) ToSlice(ctx context.Context) ([]T, error) {
	result := []T{}
	if err := s.drain(ctx, func(v T) {
		result = append(result, v)
	}); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *stream[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.drain(ctx, func(T) {
		count++
	}); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *stream[T]) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}

	s.mu.Lock()
	if s.cancelRun != nil {
		s.cancelRun()
		s.cancelRun = nil
	}
	s.mu.Unlock()

	if s.source != nil {
		return s.source.Close()
	}
	return nil
}

func (s *stream[T]) IsClosed() bool {
	return s.closed.Load()
}

// drain executes the pipeline and feeds every element to visit. It closes
// the stream when done, making the stream single-use.
func (s *stream[T]) drain(ctx context.Context, visit func(T)) error {
	if s.IsClosed() {
		return ErrStreamClosed
	}
	defer func() { _ = s.Close() }()

	ch, err := s.run(ctx)
	if err != nil {
		return err
	}

	for el := range ch {
		switch {
		case el.err != nil:
			return el.err
		case el.end:
			return nil
		default:
			visit(el.value)
		}
	}

	// Channel closed without an end marker: the run was cancelled, either
	// by the caller's context or by Close.
	if err := ctx.Err(); err != nil {
		return err
	}
	return ErrStreamClosed
}

// run starts the source goroutine and one goroutine per stage, and returns
// the channel carrying the final element flow. The run context is a child
// of ctx so that both caller cancellation and Close terminate every
// goroutine; blocked sends always select on it.
func (s *stream[T]) run(ctx context.Context) (<-chan element[T], error) {
	if s.IsClosed() {
		return nil, ErrStreamClosed
	}

	runCtx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	if s.cancelRun != nil {
		s.cancelRun()
	}
	s.cancelRun = cancel
	s.mu.Unlock()

	src := make(chan element[T], stageBuffer)

	go func() {
		defer close(src)

		for {
			value, ok, err := s.source.Next(runCtx)
			if err != nil {
				select {
				case src <- element[T]{err: err}:
				case <-runCtx.Done():
				}
				return
			}
			if !ok {
				select {
				case src <- element[T]{end: true}:
				case <-runCtx.Done():
				}
				return
			}

			select {
			case src <- element[T]{value: value}:
			case <-runCtx.Done():
				return
			}
		}
	}()

	out := (<-chan element[T])(src)
	for _, st := range s.stages {
		next := make(chan element[T], stageBuffer)

		go func(st stage[T], in <-chan element[T], out chan<- element[T]) {
			defer close(out)
			if err := st.run(runCtx, in, out); err != nil {
				select {
				case out <- element[T]{err: err}:
				case <-runCtx.Done():
				}
			}
		}(st, out, next)

		out = next
	}

	return out, nil
}
