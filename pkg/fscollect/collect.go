package fscollect

import (
	"context"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"

	skerrors "github.com/streamkit-go/streamkit/pkg/common/errors"
	"github.com/streamkit-go/streamkit/pkg/common/validation"
	"github.com/streamkit-go/streamkit/pkg/metrics"
	"github.com/streamkit-go/streamkit/pkg/streaming/stream"
)

// ioError classifies filesystem failures raised by this package. The
// underlying error stays reachable through errors.Is/errors.As.
var ioError = skerrors.NewClass(skerrors.KindIO)

// Filter decides whether a file path is included in the result. It is
// consulted for regular files only, never for directories.
type Filter func(path string) bool

// Config holds configuration for a Collector.
type Config struct {
	// Filter, when set, keeps only the files it returns true for.
	// A nil Filter keeps every regular file.
	Filter Filter
}

// Collector walks directory trees and collects regular file paths.
type Collector struct {
	filter   Filter
	name     string
	registry *metrics.Registry
	enabled  bool
}

// New creates a Collector that keeps every regular file.
func New() *Collector {
	return NewWithConfig(Config{})
}

// NewWithConfig creates a Collector with the given configuration.
func NewWithConfig(config Config) *Collector {
	return &Collector{filter: config.Filter}
}

// NewWithMetrics creates a Collector with metrics enabled, using an
// isolated Prometheus registry.
func NewWithMetrics(name string) *Collector {
	registry := prometheus.NewRegistry()
	return NewWithConfigAndMetrics(Config{}, name, metrics.Config{
		Enabled:  true,
		Registry: registry,
	})
}

// NewWithConfigAndMetrics creates a Collector with custom config and metrics.
func NewWithConfigAndMetrics(config Config, name string, metricsConfig metrics.Config) *Collector {
	c := NewWithConfig(config)

	if !metricsConfig.Enabled {
		return c
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	c.name = name
	c.registry = registry
	c.enabled = true
	return c
}

// Files recursively collects the paths of all regular files under root,
// depth-first. Directories are never included and are always recursed into
// the moment they are encountered; the filter is never consulted for them.
// Result order follows the directory-entry enumeration and is deterministic,
// but callers must not rely on it. Filesystem errors (missing or unreadable
// paths) propagate to the caller; a partial result is discarded.
func (c *Collector) Files(ctx context.Context, root string) ([]string, error) {
	if err := validation.NotEmpty("fscollect", "root", root); err != nil {
		return nil, err
	}

	result := []string{}
	if err := c.walk(ctx, root, &result); err != nil {
		if c.enabled {
			c.registry.CollectErrors.WithLabelValues(c.name).Inc()
		}
		return nil, err
	}
	return result, nil
}

func (c *Collector) walk(ctx context.Context, dir string, result *[]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return ioError.Wrap("read directory "+dir, err)
	}
	if c.enabled {
		c.registry.CollectDirsScanned.WithLabelValues(c.name).Inc()
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			if err := c.walk(ctx, path, result); err != nil {
				return err
			}
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}

		if c.enabled {
			c.registry.CollectFilesVisited.WithLabelValues(c.name).Inc()
		}
		if c.filter != nil && !c.filter(path) {
			continue
		}
		if c.enabled {
			c.registry.CollectFilesAccepted.WithLabelValues(c.name).Inc()
		}
		*result = append(*result, path)
	}

	return nil
}

// Stream returns a lazy stream of the regular file paths under root, in the
// same order Files would return them. Directories are read one at a time as
// the stream is pulled, so large trees are not held in memory up front.
func (c *Collector) Stream(root string) stream.Stream[string] {
	return stream.New[string](&dirSource{root: root, collector: c})
}

// Files is a convenience for a one-off collection with an optional filter.
func Files(ctx context.Context, root string, filter Filter) ([]string, error) {
	return NewWithConfig(Config{Filter: filter}).Files(ctx, root)
}

// dirFrame tracks the unvisited entries of one directory during traversal.
type dirFrame struct {
	dir     string
	entries []os.DirEntry
	index   int
}

// dirSource walks a directory tree iteratively, one directory read per
// descent, yielding file paths in depth-first order.
type dirSource struct {
	root      string
	collector *Collector
	stack     []dirFrame
	started   bool
}

func (s *dirSource) Next(ctx context.Context) (string, bool, error) {
	if !s.started {
		s.started = true
		if err := validation.NotEmpty("fscollect", "root", s.root); err != nil {
			return "", false, err
		}
		if err := s.push(ctx, s.root); err != nil {
			return "", false, err
		}
	}

	for len(s.stack) > 0 {
		top := &s.stack[len(s.stack)-1]
		if top.index >= len(top.entries) {
			s.stack = s.stack[:len(s.stack)-1]
			continue
		}

		entry := top.entries[top.index]
		top.index++
		path := filepath.Join(top.dir, entry.Name())

		if entry.IsDir() {
			if err := s.push(ctx, path); err != nil {
				return "", false, err
			}
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}

		c := s.collector
		if c.enabled {
			c.registry.CollectFilesVisited.WithLabelValues(c.name).Inc()
		}
		if c.filter != nil && !c.filter(path) {
			continue
		}
		if c.enabled {
			c.registry.CollectFilesAccepted.WithLabelValues(c.name).Inc()
		}
		return path, true, nil
	}

	return "", false, nil
}

func (s *dirSource) push(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if s.collector.enabled {
			s.collector.registry.CollectErrors.WithLabelValues(s.collector.name).Inc()
		}
		return ioError.Wrap("read directory "+dir, err)
	}
	if s.collector.enabled {
		s.collector.registry.CollectDirsScanned.WithLabelValues(s.collector.name).Inc()
	}

	s.stack = append(s.stack, dirFrame{dir: dir, entries: entries})
	return nil
}

func (s *dirSource) Close() error {
	s.stack = nil
	return nil
}
