package fsutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ScanOptions configures Scan.
type ScanOptions struct {
	// SortBy selects the ordering; SortName compares final name
	// components case-insensitively.
	SortBy SortKey
	// Reverse inverts the sort order.
	Reverse bool
	// Relative expresses results relative to the base directory.
	Relative bool
}

// Scan lists the immediate entries of a directory (non-recursive),
// resolved against the base directory. It fails with ErrNotDirectory
// when the path is missing or not a directory.
func (m Manager) Scan(dir string, opt ScanOptions) ([]string, error) {
	p := m.resolve(dir)

	info, err := os.Stat(p)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, p)
	}

	entries, err := os.ReadDir(p)
	if err != nil {
		return nil, fmt.Errorf("listing %q: %w", p, err)
	}

	paths := make([]string, len(entries))
	for i, entry := range entries {
		paths[i] = filepath.Join(p, entry.Name())
	}

	switch opt.SortBy {
	case SortName:
		sortBy(paths, func(p string) string {
			return strings.ToLower(filepath.Base(p))
		}, opt.Reverse)
	case SortMtime:
		sortBy(paths, mtimeKey, opt.Reverse)
	case SortSize:
		sortBy(paths, fileSizeKey, opt.Reverse)
	case SortNone:
	}

	for i, p := range paths {
		paths[i] = m.format(p, opt.Relative)
	}

	return paths, nil
}
