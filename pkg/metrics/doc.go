// Package metrics provides Prometheus instrumentation for streamkit components.
//
// # Overview
//
// The metrics package provides automatic instrumentation for:
//   - Stream operations (items processed, errors, dropped items)
//   - Stream concatenation (source streams drained)
//   - File collection (directories scanned, files visited and accepted)
//
// # Quick Start
//
// Enable metrics by using the metrics-enabled constructors:
//
//	// Instrumented stream
//	s := stream.WithMetrics(stream.FromSlice(data), "ingest", metrics.DefaultConfig())
//
//	// Collector with metrics
//	c := fscollect.NewWithMetrics("log_scan", metrics.DefaultConfig())
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{
//		Enabled:  true,
//		Registry: registry,
//	}
//	c := fscollect.NewWithMetrics("scan", config)
//
// # Available Metrics
//
//   - streamkit_stream_operations_total: Total number of terminal stream operations
//   - streamkit_stream_items_processed_total: Total number of items processed by streams
//   - streamkit_stream_errors_total: Total number of stream processing errors
//   - streamkit_stream_items_dropped_total: Total number of items dropped by filter stages
//   - streamkit_stream_concat_sources_drained_total: Source streams fully drained by concat
//   - streamkit_collect_dirs_scanned_total: Directories read during collection
//   - streamkit_collect_files_visited_total: Regular files visited during collection
//   - streamkit_collect_files_accepted_total: Files accepted by the collection filter
//   - streamkit_collect_errors_total: Errors encountered during collection
package metrics
