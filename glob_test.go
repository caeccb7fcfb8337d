package fsutils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlob(t *testing.T) {
	m, dir := newManager(t)

	writeFile(t, filepath.Join(dir, "main.py"), "print")
	writeFile(t, filepath.Join(dir, "util.py"), "def")
	writeFile(t, filepath.Join(dir, "notes.txt"), "text")
	writeFile(t, filepath.Join(dir, "pkg", "mod.py"), "import")

	t.Run("top-level pattern", func(t *testing.T) {
		got, err := m.Glob("*.py", false)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			filepath.Join(dir, "main.py"),
			filepath.Join(dir, "util.py"),
		}, got)
	})

	t.Run("recursive pattern", func(t *testing.T) {
		got, err := m.Glob("**/*.py", true)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			"main.py",
			"util.py",
			filepath.Join("pkg", "mod.py"),
		}, got)
	})

	t.Run("no matches", func(t *testing.T) {
		got, err := m.Glob("*.rs", false)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("malformed pattern", func(t *testing.T) {
		_, err := m.Glob("[", false)
		assert.Error(t, err)
	})
}

func TestStats(t *testing.T) {
	m, dir := newManager(t)

	writeFile(t, filepath.Join(dir, "a.txt"), "hello")
	writeFile(t, filepath.Join(dir, "sub", "b.txt"), "goodbye")

	stats, err := m.Stats(false)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.FileCount)
	assert.Equal(t, 2, stats.DirectoryCount)
	assert.Equal(t, int64(12), stats.TotalBytes)

	abs, err := filepath.Abs(dir)
	require.NoError(t, err)
	assert.Equal(t, abs, stats.Root)
}
