package fsnotify

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/corey/kwscan/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// fsnotify Watcher Adapter: detect corpus changes, trigger a rerun
// Expectation: changes to matching files fire the callback; ignored
// directories, editor swap files and non-matching files do not.
// =============================================================================

var _ ports.Watcher = (*Watcher)(nil)

func isTxt(path string) bool { return strings.HasSuffix(path, ".txt") }

// waitForCallback waits up to timeout for the callback channel to receive a value.
func waitForCallback(ch <-chan string, timeout time.Duration) (string, bool) {
	select {
	case v := <-ch:
		return v, true
	case <-time.After(timeout):
		return "", false
	}
}

func startWatcher(t *testing.T, dir string, recursive bool) <-chan string {
	t.Helper()
	w, err := NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { w.Stop() })

	changed := make(chan string, 32)
	require.NoError(t, w.Watch(dir, recursive, isTxt, func(path string) {
		changed <- path
	}))

	// Give watcher time to start
	time.Sleep(50 * time.Millisecond)
	return changed
}

func TestWatcher_DetectsFileChange(t *testing.T) {
	dir := t.TempDir()
	testFile := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("original"), 0644))

	changed := startWatcher(t, dir, false)
	require.NoError(t, os.WriteFile(testFile, []byte("modified"), 0644))

	path, ok := waitForCallback(changed, 2*time.Second)
	assert.True(t, ok, "expected callback for file change")
	assert.Equal(t, testFile, path)
}

func TestWatcher_DetectsNewAndDeletedFile(t *testing.T) {
	dir := t.TempDir()
	changed := startWatcher(t, dir, false)

	newFile := filepath.Join(dir, "new.txt")
	require.NoError(t, os.WriteFile(newFile, []byte("new"), 0644))
	path, ok := waitForCallback(changed, 2*time.Second)
	require.True(t, ok, "expected callback for new file")
	assert.Equal(t, newFile, path)

	// Wait out the debounce window, then drain anything else for the create.
	time.Sleep(100 * time.Millisecond)
	for len(changed) > 0 {
		<-changed
	}

	require.NoError(t, os.Remove(newFile))
	path, ok = waitForCallback(changed, 2*time.Second)
	assert.True(t, ok, "expected callback for deleted file")
	assert.Equal(t, newFile, path)
}

func TestWatcher_IgnoresFilteredFiles(t *testing.T) {
	dir := t.TempDir()
	gitDir := filepath.Join(dir, ".git")
	require.NoError(t, os.MkdirAll(gitDir, 0755))

	changed := startWatcher(t, dir, true)

	os.WriteFile(filepath.Join(gitDir, "notes.txt"), []byte("ref"), 0644)
	os.WriteFile(filepath.Join(dir, "image.png"), []byte("x"), 0644)
	os.WriteFile(filepath.Join(dir, "a.txt.swp"), []byte("x"), 0644)

	_, ok := waitForCallback(changed, 500*time.Millisecond)
	assert.False(t, ok, "should not have received callback for ignored files")

	txt := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(txt, []byte("book"), 0644))
	path, ok := waitForCallback(changed, 2*time.Second)
	assert.True(t, ok, "expected callback for matching file")
	assert.Equal(t, txt, path)
}

func TestWatcher_RecursiveSeesSubdirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.MkdirAll(sub, 0755))

	flat := startWatcher(t, dir, false)
	deep := startWatcher(t, dir, true)

	nested := filepath.Join(sub, "c.txt")
	require.NoError(t, os.WriteFile(nested, []byte("life"), 0644))

	path, ok := waitForCallback(deep, 2*time.Second)
	assert.True(t, ok, "recursive watcher should see nested file")
	assert.Equal(t, nested, path)

	_, ok = waitForCallback(flat, 300*time.Millisecond)
	assert.False(t, ok, "flat watcher only watches the root")
}

func TestWatcher_MissingRoot(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	err = w.Watch(filepath.Join(t.TempDir(), "nope"), false, nil, func(string) {})
	assert.Error(t, err)
}

func TestWatcher_StopCleanup(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher()
	require.NoError(t, err)

	callCount := 0
	var mu sync.Mutex
	err = w.Watch(dir, false, nil, func(path string) {
		mu.Lock()
		callCount++
		mu.Unlock()
	})
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, w.Stop())

	mu.Lock()
	countAfterStop := callCount
	mu.Unlock()

	// Write file after stop; should NOT trigger callback
	os.WriteFile(filepath.Join(dir, "after_stop.txt"), []byte("nope"), 0644)
	time.Sleep(200 * time.Millisecond)

	mu.Lock()
	countAfterWrite := callCount
	mu.Unlock()

	assert.Equal(t, countAfterStop, countAfterWrite, "callbacks fired after Stop()")

	// Double-stop should be safe
	assert.NoError(t, w.Stop())
}
