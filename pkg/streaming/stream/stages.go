package stream

import (
	"context"
)

// forward sends el downstream, giving up when the run is cancelled.
func forward[T any](ctx context.Context, out chan<- element[T], el element[T]) error {
	select {
	case out <- el:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// filterStage drops elements rejected by a plain predicate.
type filterStage[T any] struct {
	predicate func(T) bool
}

func (f *filterStage[T]) run(ctx context.Context, in <-chan element[T], out chan<- element[T]) error {
	for el := range in {
		if el.err != nil || el.end {
			if err := forward(ctx, out, el); err != nil {
				return nil
			}
			if el.end {
				return nil
			}
			continue
		}

		if !f.predicate(el.value) {
			continue
		}
		if err := forward(ctx, out, el); err != nil {
			return nil
		}
	}
	return nil
}

// filterCtxStage drops elements rejected by a context-aware predicate.
// The predicate is evaluated inline, so exactly one evaluation is in
// flight at a time and elements keep their input order.
type filterCtxStage[T any] struct {
	predicate func(context.Context, T) (bool, error)
}

func (f *filterCtxStage[T]) run(ctx context.Context, in <-chan element[T], out chan<- element[T]) error {
	for el := range in {
		if el.err != nil || el.end {
			if err := forward(ctx, out, el); err != nil {
				return nil
			}
			if el.end {
				return nil
			}
			continue
		}

		keep, err := f.predicate(ctx, el.value)
		if err != nil {
			return err
		}
		if !keep {
			continue
		}
		if err := forward(ctx, out, el); err != nil {
			return nil
		}
	}
	return nil
}

// mapStage replaces each element with the mapper's result.
type mapStage[T any] struct {
	mapper func(T) T
}

func (m *mapStage[T]) run(ctx context.Context, in <-chan element[T], out chan<- element[T]) error {
	for el := range in {
		if el.err != nil || el.end {
			if err := forward(ctx, out, el); err != nil {
				return nil
			}
			if el.end {
				return nil
			}
			continue
		}

		if err := forward(ctx, out, element[T]{value: m.mapper(el.value)}); err != nil {
			return nil
		}
	}
	return nil
}

// peekStage performs an action on each element without modifying the flow.
type peekStage[T any] struct {
	action func(T)
}

func (p *peekStage[T]) run(ctx context.Context, in <-chan element[T], out chan<- element[T]) error {
	for el := range in {
		if el.err == nil && !el.end {
			p.action(el.value)
		}

		if err := forward(ctx, out, el); err != nil {
			return nil
		}
		if el.end {
			return nil
		}
	}
	return nil
}
