/*
Package streaming offers higher-level streaming abstractions than standard Go
readers and writers.

This package currently provides one component:

  - stream: lazy data streams with slice/channel adapters, predicate
    filtering, sequential concatenation, and byte collection

Streams are single-use: a terminal operation consumes the stream exactly once
and closes it. All terminal operations take a context and propagate the first
error encountered.
*/
package streaming
