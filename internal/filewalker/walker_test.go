package filewalker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("section\n"), 0o600))
}

func TestWalk(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.txt"))
	touch(t, filepath.Join(root, "sub", "b.TXT"))
	touch(t, filepath.Join(root, "sub", "notes.md"))

	files, err := NewWalker().Walk(root)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "sub", "b.TXT"),
	}, files)
}

func TestExpand(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "dir", "a.loc"))
	touch(t, filepath.Join(root, "dir", "b.txt"))
	explicit := filepath.Join(root, "explicit.md")
	touch(t, explicit)

	files, err := NewWalker("loc").Expand([]string{explicit, filepath.Join(root, "dir"), explicit})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "dir", "a.loc"),
		explicit,
	}, files)
}

func TestExpand_MissingPath(t *testing.T) {
	_, err := NewWalker().Expand([]string{filepath.Join(t.TempDir(), "nope")})
	assert.Error(t, err)
}
