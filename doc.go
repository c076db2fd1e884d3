/*
Package streamkit provides a small Go library of stream and filesystem
utilities: slice/stream adapters, predicate filtering, sequential stream
concatenation, recursive file collection, and kind-tagged errors.

Streaming (pkg/streaming):
  - stream: lazy data streams with filter, concat, and byte collection

Filesystem (pkg/fscollect):
  - fscollect: recursive collection of regular files under a directory

Common (pkg/common):
  - errors: kind-tagged error type and error classes
  - validation: argument validation helpers

Observability (pkg/metrics):
  - metrics: Prometheus instrumentation for streams and collectors

Example usage:

	import (
		"github.com/streamkit-go/streamkit/pkg/fscollect"
		"github.com/streamkit-go/streamkit/pkg/streaming/stream"
	)

	paths, _ := fscollect.Files(ctx, "/var/log", nil)

	s := stream.FromSlice(paths).
		FilterCtx(func(ctx context.Context, p string) (bool, error) {
			return strings.HasSuffix(p, ".log"), nil
		})
	logs, _ := s.ToSlice(ctx)
*/
package streamkit
