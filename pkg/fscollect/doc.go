/*
Package fscollect recursively collects regular file paths under a directory.

The traversal is depth-first: when a directory entry is encountered it is
descended into immediately, before the remaining entries of its parent are
processed. Directories themselves never appear in the result and the filter
is never consulted for them. Symbolic links are not followed and there is no
cycle protection.

Basic usage:

	paths, err := fscollect.Files(ctx, "/var/log", func(p string) bool {
		return strings.HasSuffix(p, ".log")
	})

For large trees, Stream yields paths lazily, reading one directory at a time
as the stream is pulled:

	s := fscollect.New().Stream("/var/log")
	err := s.ForEach(ctx, process)

Filesystem errors — a missing or unreadable root, an unreadable subdirectory —
propagate to the caller wrapped with fscollect context; the underlying error
remains reachable with errors.Is. Partial results are discarded on error.
*/
package fscollect
