package fsio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredicates(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	assert.True(t, Exists(dir))
	assert.True(t, Exists(file))
	assert.False(t, Exists(filepath.Join(dir, "ghost")))

	assert.True(t, IsFile(file))
	assert.False(t, IsFile(dir))

	assert.True(t, IsDir(dir))
	assert.False(t, IsDir(file))
}

func TestTextRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "note.txt")

	n, err := WriteText(path, "hello world", true)
	require.NoError(t, err)
	assert.Equal(t, 11, n)

	got, err := ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
}

func TestBytesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob.bin")

	data := []byte{0x00, 0xff, 0x10}

	n, err := WriteBytes(path, data, false)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	got, err := ReadBytes(path)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestReadErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadBytes(filepath.Join(dir, "ghost.txt"))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := ReadBytes(dir)
		assert.ErrorIs(t, err, ErrIsDirectory)
	})

	t.Run("missing parent without create-dirs", func(t *testing.T) {
		_, err := WriteText(filepath.Join(dir, "nowhere", "x.txt"), "x", false)
		assert.Error(t, err)
	})
}

func TestDeleteFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "gone.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	require.NoError(t, DeleteFile(file))
	assert.NoFileExists(t, file)

	assert.ErrorIs(t, DeleteFile(file), ErrNotFound)
	assert.ErrorIs(t, DeleteFile(dir), ErrIsDirectory)
}

func TestFileSize(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "sized.txt")
	require.NoError(t, os.WriteFile(file, []byte("12345"), 0o644))

	size, err := FileSize(file)
	require.NoError(t, err)
	assert.Equal(t, int64(5), size)

	_, err = FileSize(dir)
	assert.ErrorIs(t, err, ErrIsDirectory)
}

func TestModTime(t *testing.T) {
	file := filepath.Join(t.TempDir(), "timed.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	stamp := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(file, stamp, stamp))

	got, err := ModTime(file)
	require.NoError(t, err)
	assert.True(t, got.Equal(stamp))

	_, err = ModTime(filepath.Join(t.TempDir(), "ghost"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDirSize(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("goodbye"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "c.txt"), []byte("hey"), 0o644))

	assert.Equal(t, int64(15), DirSize(dir))
	assert.Equal(t, int64(3), DirSize(filepath.Join(dir, "sub")))
	assert.Equal(t, int64(0), DirSize(filepath.Join(dir, "missing")))
}
