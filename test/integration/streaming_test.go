package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/streamkit-go/streamkit/internal/testutil"
	"github.com/streamkit-go/streamkit/pkg/fscollect"
	"github.com/streamkit-go/streamkit/pkg/streaming/stream"
)

// TestCollectFilterConcat walks two directory trees lazily, filters the
// combined stream with a context-aware predicate, and verifies ordering and
// source contiguity end to end.
func TestCollectFilterConcat(t *testing.T) {
	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()

	first := t.TempDir()
	testutil.WriteTree(t, first, map[string]string{
		"a.log":     "one",
		"sub/b.log": "two",
		"skip.txt":  "nope",
	})

	second := t.TempDir()
	testutil.WriteTree(t, second, map[string]string{
		"c.log": "three",
	})

	combined := stream.Concat(
		fscollect.New().Stream(first),
		fscollect.New().Stream(second),
	).FilterCtx(func(_ context.Context, p string) (bool, error) {
		return strings.HasSuffix(p, ".log"), nil
	})

	paths, err := combined.ToSlice(ctx)
	testutil.AssertNoError(t, err)

	want := []string{
		filepath.Join(first, "a.log"),
		filepath.Join(first, "sub", "b.log"),
		filepath.Join(second, "c.log"),
	}
	testutil.AssertSliceEqual(t, paths, want)
}

// TestCollectToBytes reads every collected file and concatenates the
// contents through the byte collector.
func TestCollectToBytes(t *testing.T) {
	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()

	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{
		"1.txt": "alpha ",
		"2.txt": "beta ",
		"3.txt": "gamma",
	})

	paths, err := fscollect.Files(ctx, root, nil)
	testutil.AssertNoError(t, err)

	contents := make([][]byte, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		testutil.AssertNoError(t, err)
		contents = append(contents, data)
	}

	buf, err := stream.Bytes(ctx, stream.FromSlice(contents))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, string(buf), "alpha beta gamma")
}

// TestCollectStreamErrorPropagates ensures a filesystem failure inside a
// lazy collection stream surfaces from the consuming terminal operation.
func TestCollectStreamErrorPropagates(t *testing.T) {
	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()

	missing := filepath.Join(t.TempDir(), "missing")

	_, err := stream.Concat(
		fscollect.New().Stream(missing),
	).ToSlice(ctx)

	testutil.AssertError(t, err)
}
