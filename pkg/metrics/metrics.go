package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for streamkit components.
type Registry struct {
	// Streaming metrics
	StreamOperations *prometheus.CounterVec
	StreamItems      *prometheus.CounterVec
	StreamErrors     *prometheus.CounterVec
	StreamDropped    *prometheus.CounterVec
	ConcatSources    *prometheus.CounterVec

	// File collection metrics
	CollectDirsScanned   *prometheus.CounterVec
	CollectFilesVisited  *prometheus.CounterVec
	CollectFilesAccepted *prometheus.CounterVec
	CollectErrors        *prometheus.CounterVec
}

// DefaultRegistry is the default metrics registry used by streamkit components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		StreamOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "streamkit",
				Subsystem: "stream",
				Name:      "operations_total",
				Help:      "Total number of terminal stream operations",
			},
			[]string{"operation", "stream_name"},
		),

		StreamItems: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "streamkit",
				Subsystem: "stream",
				Name:      "items_processed_total",
				Help:      "Total number of items processed by streams",
			},
			[]string{"operation", "stream_name"},
		),

		StreamErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "streamkit",
				Subsystem: "stream",
				Name:      "errors_total",
				Help:      "Total number of stream processing errors",
			},
			[]string{"operation", "stream_name"},
		),

		StreamDropped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "streamkit",
				Subsystem: "stream",
				Name:      "items_dropped_total",
				Help:      "Total number of items dropped by filter stages",
			},
			[]string{"stream_name"},
		),

		ConcatSources: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "streamkit",
				Subsystem: "stream",
				Name:      "concat_sources_drained_total",
				Help:      "Total number of source streams fully drained by concat",
			},
			[]string{"stream_name"},
		),

		CollectDirsScanned: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "streamkit",
				Subsystem: "collect",
				Name:      "dirs_scanned_total",
				Help:      "Total number of directories read during collection",
			},
			[]string{"collector_name"},
		),

		CollectFilesVisited: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "streamkit",
				Subsystem: "collect",
				Name:      "files_visited_total",
				Help:      "Total number of regular files visited during collection",
			},
			[]string{"collector_name"},
		),

		CollectFilesAccepted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "streamkit",
				Subsystem: "collect",
				Name:      "files_accepted_total",
				Help:      "Total number of files accepted by the collection filter",
			},
			[]string{"collector_name"},
		),

		CollectErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "streamkit",
				Subsystem: "collect",
				Name:      "errors_total",
				Help:      "Total number of errors encountered during collection",
			},
			[]string{"collector_name"},
		),
	}
}
