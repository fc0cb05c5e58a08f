package filescan

import (
	"bytes"
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalfs "github.com/unpackd/filescan/internal/fs"
)

func newTestCollector(opts ...Option) *Collector {
	return New(append([]Option{WithLogger(NoopLogger())}, opts...)...)
}

func writeFile(t *testing.T, path string, content []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, content, 0644))
}

func TestCollect_FlatDirectory(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "a.bin"), []byte("aaa"))
	writeFile(t, filepath.Join(tmp, "b.bin"), []byte("b"))
	writeFile(t, filepath.Join(tmp, "c.bin"), []byte("cc"))
	writeFile(t, filepath.Join(tmp, "empty.bin"), nil)

	c := newTestCollector()
	set, err := c.Collect(context.Background(), tmp)
	require.NoError(t, err)

	want := []string{
		filepath.Join(tmp, "a.bin"),
		filepath.Join(tmp, "b.bin"),
		filepath.Join(tmp, "c.bin"),
	}
	assert.Equal(t, want, set.Paths())
	assert.Equal(t, 3, set.Len())
}

func TestCollect_OrderIsStable(t *testing.T) {
	tmp := t.TempDir()
	for _, name := range []string{"z.bin", "m.bin", "a.bin"} {
		writeFile(t, filepath.Join(tmp, name), []byte("x"))
	}

	c := newTestCollector()
	first, err := c.Collect(context.Background(), tmp)
	require.NoError(t, err)
	second, err := c.Collect(context.Background(), tmp)
	require.NoError(t, err)

	assert.Equal(t, first.Paths(), second.Paths())
}

func TestCollect_SingleFileRoot(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "single.bin")
	writeFile(t, file, []byte("payload"))

	c := newTestCollector()
	set, err := c.Collect(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, []string{file}, set.Paths())
}

func TestCollect_EmptyFileRoot(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "empty.bin")
	writeFile(t, file, nil)

	c := newTestCollector()
	_, err := c.Collect(context.Background(), file)
	assert.ErrorIs(t, err, ErrNoFiles)
}

func TestCollect_MissingRoot(t *testing.T) {
	c := newTestCollector()
	_, err := c.Collect(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestCollect_EmptyPath(t *testing.T) {
	c := newTestCollector()
	_, err := c.Collect(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyPath)
}

func TestCollect_NoFilesAnywhere(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "sub", "empty.bin"), nil)
	require.NoError(t, os.MkdirAll(filepath.Join(tmp, "sub", "deeper"), 0755))

	c := newTestCollector()
	_, err := c.Collect(context.Background(), tmp)
	assert.ErrorIs(t, err, ErrNoFiles)
}

func TestCollect_UnreadableSubtreeIsSkipped(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "a.bin"), []byte("a"))
	writeFile(t, filepath.Join(tmp, "empty.bin"), nil)
	writeFile(t, filepath.Join(tmp, "sub1", "b.bin"), []byte("b"))
	writeFile(t, filepath.Join(tmp, "sub1", "sub2", "c.bin"), []byte("c"))
	writeFile(t, filepath.Join(tmp, "sub1", "sub2", "locked", "hidden.bin"), []byte("h"))
	writeFile(t, filepath.Join(tmp, "zsub", "d.bin"), []byte("d"))

	ffs := internalfs.NewFaultyFS(nil)
	ffs.AddRule("locked", internalfs.Fault{FailReadDir: true})

	c := newTestCollector(WithFileSystem(ffs))
	set, err := c.Collect(context.Background(), tmp)
	require.NoError(t, err)

	want := []string{
		filepath.Join(tmp, "a.bin"),
		filepath.Join(tmp, "sub1", "b.bin"),
		filepath.Join(tmp, "sub1", "sub2", "c.bin"),
		filepath.Join(tmp, "zsub", "d.bin"),
	}
	assert.Equal(t, want, set.Paths())
}

func TestCollect_UnstatableEntryIsSkipped(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "good.bin"), []byte("g"))
	writeFile(t, filepath.Join(tmp, "phantom.bin"), []byte("p"))

	ffs := internalfs.NewFaultyFS(nil)
	ffs.AddRule("phantom", internalfs.Fault{FailStat: true})

	c := newTestCollector(WithFileSystem(ffs))
	set, err := c.Collect(context.Background(), tmp)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(tmp, "good.bin")}, set.Paths())
}

func TestCollect_RootReadDirFails(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "a.bin"), []byte("a"))

	ffs := internalfs.NewFaultyFS(nil)
	ffs.AddRule(tmp, internalfs.Fault{FailReadDir: true})

	c := newTestCollector(WithFileSystem(ffs))
	_, err := c.Collect(context.Background(), tmp)
	assert.ErrorIs(t, err, internalfs.ErrInjected)
}

func TestCollectAll(t *testing.T) {
	tmp1 := t.TempDir()
	tmp2 := t.TempDir()
	writeFile(t, filepath.Join(tmp1, "a.bin"), []byte("a"))
	writeFile(t, filepath.Join(tmp2, "b.bin"), []byte("b"))

	c := newTestCollector()
	sets, err := c.CollectAll(context.Background(), tmp1, tmp2)
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, []string{filepath.Join(tmp1, "a.bin")}, sets[0].Paths())
	assert.Equal(t, []string{filepath.Join(tmp2, "b.bin")}, sets[1].Paths())
}

func TestCollectAll_FailingRoot(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "a.bin"), []byte("a"))

	c := newTestCollector()
	_, err := c.CollectAll(context.Background(), tmp, filepath.Join(tmp, "missing"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestCollect_Canceled(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "a.bin"), []byte("a"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newTestCollector()
	_, err := c.Collect(ctx, tmp)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCollect_RateLimited(t *testing.T) {
	tmp := t.TempDir()
	for _, name := range []string{"a.bin", "b.bin", "c.bin"} {
		writeFile(t, filepath.Join(tmp, name), []byte("x"))
	}

	// Generous limit: the walk must still find everything.
	c := newTestCollector(WithRateLimit(10000))
	set, err := c.Collect(context.Background(), tmp)
	require.NoError(t, err)
	assert.Equal(t, 3, set.Len())

	// A tiny limit with a short deadline must abort the walk, not hang.
	slow := newTestCollector(WithRateLimit(1))
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = slow.Collect(ctx, tmp)
	assert.Error(t, err)
}

func TestCollect_ThrottleDeadlineInSubtree(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "a.bin"), []byte("a"))
	writeFile(t, filepath.Join(tmp, "zsub", "b.bin"), []byte("b"))

	// Burst of 2 covers the root's entries; the third wait, deep inside
	// zsub, needs a delay the deadline cannot absorb. The limiter then
	// fails while ctx.Err() is still nil, and that failure must abort the
	// whole walk instead of being swallowed as a bad subtree, which would
	// return a silently truncated set.
	c := newTestCollector(WithRateLimit(2))
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Collect(ctx, tmp)
	assert.Error(t, err, "throttle deadline inside a subtree must fail the enumeration")
}

func TestCollect_SingleFileLogsOutcome(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "single.bin")
	writeFile(t, file, []byte("payload"))

	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	c := New(WithLogger(logger))
	_, err := c.Collect(context.Background(), file)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "input files collected")
	assert.Contains(t, out, "count=1")
}

// fakeStatFS serves a canned FileInfo for the root path.
type fakeStatFS struct {
	internalfs.FileSystem
	info os.FileInfo
}

func (f fakeStatFS) Stat(name string) (os.FileInfo, error) { return f.info, nil }

type fakeInfo struct {
	mode os.FileMode
}

func (f fakeInfo) Name() string       { return "weird" }
func (f fakeInfo) Size() int64        { return 1 }
func (f fakeInfo) Mode() os.FileMode  { return f.mode }
func (f fakeInfo) ModTime() time.Time { return time.Time{} }
func (f fakeInfo) IsDir() bool        { return f.mode.IsDir() }
func (f fakeInfo) Sys() any           { return nil }

func TestCollect_NonCollectableRoot(t *testing.T) {
	c := newTestCollector(WithFileSystem(fakeStatFS{
		FileSystem: internalfs.Default,
		info:       fakeInfo{mode: os.ModeSocket},
	}))

	_, err := c.Collect(context.Background(), "/weird")
	var notCollectable *ErrNotCollectable
	require.ErrorAs(t, err, &notCollectable)
	assert.Equal(t, os.ModeSocket, notCollectable.Mode)
}
