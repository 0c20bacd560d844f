package discover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTree(t *testing.T, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}
	return dir
}

func TestFiles_DirectChildrenOnly(t *testing.T) {
	dir := makeTree(t, "b.txt", "a.txt", "notes.md", "sub/c.txt")

	files, err := Files(dir, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")}, files)
}

func TestFiles_Recursive(t *testing.T) {
	dir := makeTree(t, "a.txt", "sub/c.txt", ".git/d.txt", "skipme/e.txt", "sub/deeper/f.txt")

	files, err := Files(dir, Options{Recursive: true, ExcludeDirs: []string{"skipme"}})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "sub", "c.txt"),
		filepath.Join(dir, "sub", "deeper", "f.txt"),
	}, files)
}

func TestFiles_Extension(t *testing.T) {
	dir := makeTree(t, "a.txt", "b.log", "c.log")

	files, err := Files(dir, Options{Extension: ".log"})
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestFiles_DirectoryUnavailable(t *testing.T) {
	files, err := Files(filepath.Join(t.TempDir(), "nope"), Options{})
	assert.ErrorIs(t, err, ErrDirectoryUnavailable)
	assert.NotNil(t, files)
	assert.Empty(t, files)

	dir := makeTree(t, "a.txt")
	files, err = Files(filepath.Join(dir, "a.txt"), Options{})
	assert.ErrorIs(t, err, ErrDirectoryUnavailable)
	assert.Empty(t, files)
}

func TestFiles_EmptyDirectory(t *testing.T) {
	files, err := Files(t.TempDir(), Options{Recursive: true})
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFiles_FollowsFileSymlinks(t *testing.T) {
	dir := makeTree(t, "a.txt", "store/target.txt", "store/sub/inner.txt")
	require.NoError(t, os.Symlink(filepath.Join(dir, "store", "target.txt"), filepath.Join(dir, "link.txt")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "missing.txt"), filepath.Join(dir, "dangling.txt")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "store", "sub"), filepath.Join(dir, "dirlink.txt")))

	files, err := Files(dir, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "link.txt")}, files)

	files, err = Files(dir, Options{Recursive: true})
	require.NoError(t, err)
	assert.Contains(t, files, filepath.Join(dir, "link.txt"))
	assert.NotContains(t, files, filepath.Join(dir, "dangling.txt"))
	assert.NotContains(t, files, filepath.Join(dir, "dirlink.txt"))
}
