package dirstat

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "report.txt"), "hello world")
	writeFile(t, filepath.Join(dir, "data.csv"), "a,b")

	stats, err := Collect(dir, Options{})
	require.NoError(t, err)

	out := Format(stats)

	assert.Contains(t, out, dir)
	assert.Contains(t, out, "Files:")
	assert.Contains(t, out, "Directories:")
	assert.Contains(t, out, "Total size:")
	assert.Contains(t, out, "Largest file:")
	assert.Contains(t, out, "report.txt")
	assert.Contains(t, out, ".txt")
	assert.Contains(t, out, ".csv")
}

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1024 * 1024, "1.0 MB"},
		{5 * 1024 * 1024 * 1024, "5.0 GB"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, formatBytes(tc.in), "formatBytes(%d)", tc.in)
	}
}
