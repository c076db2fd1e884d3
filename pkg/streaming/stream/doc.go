/*
Package stream provides lazy, single-use data streams.

A Stream represents an ordered sequence of elements pulled on demand from a
Source. Streams are:
  - Lazy: elements are produced only when a terminal operation runs
  - Single-use: a terminal operation consumes and closes the stream
  - Context-aware: terminal operations respect context cancellation
  - Ordered: every operation preserves the source's element order

Stream Creation:

	// From a slice (all elements are enqueued from memory as read)
	s := stream.FromSlice([]string{"a", "b", "c"})

	// From a channel
	s := stream.FromChannel(ch)

	// Empty stream, ends immediately
	s := stream.Empty[int]()

	// From a custom source
	s := stream.New(mySource)

Filtering:

Filter takes a plain predicate; FilterCtx takes a context-aware predicate
that may fail. FilterCtx evaluates strictly one element at a time, in input
order, and a predicate error aborts the stream:

	matched, err := stream.FromSlice(paths).
		FilterCtx(func(ctx context.Context, p string) (bool, error) {
			return probe(ctx, p)
		}).
		ToSlice(ctx)

Concatenation:

Concat combines streams by draining them sequentially, one source at a time.
Each source's elements stay contiguous and internally ordered in the output;
the combined stream ends only after the final source ends. Total drain time
is therefore the sum of the sources' production times, not the max — Concat
is not a concurrent fan-in.

	all, err := stream.Concat(a, b, c).ToSlice(ctx)

Byte Collection:

Bytes drains a stream into one contiguous byte buffer, coercing non-byte
elements to UTF-8 text:

	buf, err := stream.Bytes(ctx, stream.FromSlice([]string{"ab", "cd"}))
	// buf == []byte("abcd")

Error Handling:

Terminal operations return the first error raised by a source or predicate
and discard partial results. A consumed or closed stream rejects further
terminal operations with ErrStreamClosed. There is no retry and no timeout;
callers needing either must wrap the context.
*/
package stream
