package fsio

import (
	"io/fs"

	"github.com/charlievieth/fastwalk"
)

// DirSize returns the total size in bytes of all regular files under
// root. Entries that cannot be read or stat'ed contribute nothing;
// the result is a best-effort partial sum, never an error.
func DirSize(root string) int64 {
	var total int64

	// A single worker keeps the walk sequential; nothing here needs
	// parallelism and the accumulator stays lock-free.
	conf := &fastwalk.Config{
		Follow:     false,
		NumWorkers: 1,
	}

	_ = fastwalk.Walk(conf, root, func(_ string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}

		total += info.Size()

		return nil
	})

	return total
}
