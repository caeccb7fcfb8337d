package fsutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFiles(t *testing.T) {
	m, dir := newManager(t)

	writeFile(t, filepath.Join(dir, "a.txt"), "hello")
	writeFile(t, filepath.Join(dir, "b.TXT"), "goodbye")
	writeFile(t, filepath.Join(dir, "sub", "c.txt"), "hey")
	writeFile(t, filepath.Join(dir, "sub", "deep", "d.log"), "log line")

	t.Run("unbounded finds everything", func(t *testing.T) {
		got, err := m.ListFiles(DefaultListOptions())
		require.NoError(t, err)
		assert.Len(t, got, 4)
	})

	t.Run("depth zero keeps to the base", func(t *testing.T) {
		got, err := m.ListFiles(ListOptions{MaxDepth: 0, SortBy: SortName, Relative: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.txt", "b.TXT"}, got)
	})

	t.Run("depth one reaches the first level", func(t *testing.T) {
		got, err := m.ListFiles(ListOptions{MaxDepth: 1, SortBy: SortName, Relative: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.txt", "b.TXT", filepath.Join("sub", "c.txt")}, got)
	})

	t.Run("extension filter is case-insensitive", func(t *testing.T) {
		opt := DefaultListOptions()
		opt.Extensions = []string{".txt"}
		opt.SortBy = SortName
		opt.Relative = true

		got, err := m.ListFiles(opt)
		require.NoError(t, err)
		assert.Equal(t, []string{"a.txt", "b.TXT", filepath.Join("sub", "c.txt")}, got)
	})

	t.Run("size sort", func(t *testing.T) {
		opt := DefaultListOptions()
		opt.Extensions = []string{".txt"}
		opt.SortBy = SortSize
		opt.Relative = true

		got, err := m.ListFiles(opt)
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join("sub", "c.txt"), "a.txt", "b.TXT"}, got)
	})

	t.Run("absolute by default", func(t *testing.T) {
		opt := DefaultListOptions()
		opt.Extensions = []string{".log"}

		got, err := m.ListFiles(opt)
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "sub", "deep", "d.log")}, got)
	})
}

func TestListImages(t *testing.T) {
	m, dir := newManager(t)

	writeFile(t, filepath.Join(dir, "photo.JPG"), "xx")
	writeFile(t, filepath.Join(dir, "icon.png"), "x")
	writeFile(t, filepath.Join(dir, "notes.txt"), "xxx")

	opt := DefaultListOptions()
	opt.SortBy = SortName
	opt.Relative = true

	got, err := m.ListImages(opt)
	require.NoError(t, err)
	assert.Equal(t, []string{"icon.png", "photo.JPG"}, got)
}

func TestListSubdirs(t *testing.T) {
	m, dir := newManager(t)

	writeFile(t, filepath.Join(dir, "small", "a.bin"), "x")
	writeFile(t, filepath.Join(dir, "large", "b.bin"), "xxxxxxxx")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "large", "nested"), 0o755))

	t.Run("includes the base", func(t *testing.T) {
		got, err := m.ListSubdirs(DefaultListOptions())
		require.NoError(t, err)
		assert.Len(t, got, 4)
		assert.Equal(t, dir, got[0])
	})

	t.Run("depth zero yields only the base", func(t *testing.T) {
		got, err := m.ListSubdirs(ListOptions{MaxDepth: 0})
		require.NoError(t, err)
		assert.Equal(t, []string{dir}, got)
	})

	t.Run("depth one stops below the first level", func(t *testing.T) {
		got, err := m.ListSubdirs(ListOptions{MaxDepth: 1, SortBy: SortName, Relative: true})
		require.NoError(t, err)
		assert.Equal(t, []string{".", "large", "small"}, got)
	})

	t.Run("size sort uses recursive directory size", func(t *testing.T) {
		got, err := m.ListSubdirs(ListOptions{MaxDepth: 1, SortBy: SortSize, Reverse: true, Relative: true})
		require.NoError(t, err)

		// The base contains everything, then large (8 bytes), then small.
		assert.Equal(t, []string{".", "large", "small"}, got)
	})
}
