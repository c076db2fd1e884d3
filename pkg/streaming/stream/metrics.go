package stream

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/streamkit-go/streamkit/pkg/metrics"
)

// metricsStream wraps a Stream with Prometheus metrics collection.
type metricsStream[T any] struct {
	inner    Stream[T]
	name     string
	registry *metrics.Registry
	enabled  bool
}

// WithMetrics wraps a stream so that terminal operations record processed
// items and errors, and filter stages record dropped items, labelled with
// the given stream name.
func WithMetrics[T any](s Stream[T], name string, metricsConfig metrics.Config) Stream[T] {
	if !metricsConfig.Enabled {
		return s
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	return &metricsStream[T]{
		inner:    s,
		name:     name,
		registry: registry,
		enabled:  true,
	}
}

// NewWithMetrics creates a metrics-enabled stream from a slice using an
// isolated Prometheus registry, mirroring WithMetrics over FromSlice.
func NewWithMetrics[T any](slice []T, name string) Stream[T] {
	registry := prometheus.NewRegistry()
	return WithMetrics(FromSlice(slice), name, metrics.Config{
		Enabled:  true,
		Registry: registry,
	})
}

// ConcatWithMetrics behaves like Concat and additionally counts each fully
// drained source stream.
func ConcatWithMetrics[T any](name string, metricsConfig metrics.Config, streams ...Stream[T]) Stream[T] {
	if !metricsConfig.Enabled || len(streams) == 0 {
		return WithMetrics(Concat(streams...), name, metricsConfig)
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	src := &concatSource[T]{
		streams: streams,
		onDrained: func() {
			registry.ConcatSources.WithLabelValues(name).Inc()
		},
	}

	return &metricsStream[T]{
		inner:    New[T](src),
		name:     name,
		registry: registry,
		enabled:  true,
	}
}

func (m *metricsStream[T]) derive(inner Stream[T]) Stream[T] {
	return &metricsStream[T]{
		inner:    inner,
		name:     m.name,
		registry: m.registry,
		enabled:  m.enabled,
	}
}

func (m *metricsStream[T]) Filter(predicate func(T) bool) Stream[T] {
	return m.derive(m.inner.Filter(func(v T) bool {
		keep := predicate(v)
		if !keep {
			m.registry.StreamDropped.WithLabelValues(m.name).Inc()
		}
		return keep
	}))
}

func (m *metricsStream[T]) FilterCtx(predicate func(context.Context, T) (bool, error)) Stream[T] {
	return m.derive(m.inner.FilterCtx(func(ctx context.Context, v T) (bool, error) {
		keep, err := predicate(ctx, v)
		if err == nil && !keep {
			m.registry.StreamDropped.WithLabelValues(m.name).Inc()
		}
		return keep, err
	}))
}

func (m *metricsStream[T]) Map(mapper func(T) T) Stream[T] {
	return m.derive(m.inner.Map(mapper))
}

func (m *metricsStream[T]) Peek(action func(T)) Stream[T] {
	return m.derive(m.inner.Peek(action))
}

func (m *metricsStream[T]) ForEach(ctx context.Context, action func(T)) error {
	m.registry.StreamOperations.WithLabelValues("foreach", m.name).Inc()

	err := m.inner.ForEach(ctx, func(v T) {
		m.registry.StreamItems.WithLabelValues("foreach", m.name).Inc()
		action(v)
	})
	if err != nil {
		m.registry.StreamErrors.WithLabelValues("foreach", m.name).Inc()
	}
	return err
}

func (m *metricsStream[T]) ToSlice(ctx context.Context) ([]T, error) {
	m.registry.StreamOperations.WithLabelValues("toslice", m.name).Inc()

	result, err := m.inner.ToSlice(ctx)
	if err != nil {
		m.registry.StreamErrors.WithLabelValues("toslice", m.name).Inc()
		return nil, err
	}
	m.registry.StreamItems.WithLabelValues("toslice", m.name).Add(float64(len(result)))
	return result, nil
}

func (m *metricsStream[T]) Count(ctx context.Context) (int64, error) {
	m.registry.StreamOperations.WithLabelValues("count", m.name).Inc()

	count, err := m.inner.Count(ctx)
	if err != nil {
		m.registry.StreamErrors.WithLabelValues("count", m.name).Inc()
		return 0, err
	}
	m.registry.StreamItems.WithLabelValues("count", m.name).Add(float64(count))
	return count, nil
}

func (m *metricsStream[T]) Close() error {
	return m.inner.Close()
}

func (m *metricsStream[T]) IsClosed() bool {
	return m.inner.IsClosed()
}
