package fsutils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/droyed/fsutils/fsio"
)

// UnboundedDepth disables the depth limit of the recursive listers.
const UnboundedDepth = -1

// ListOptions configures the recursive listers.
type ListOptions struct {
	// MaxDepth bounds how many directory levels below the base are
	// descended; 0 keeps to entries directly in the base, negative
	// values are unbounded.
	MaxDepth int
	// Extensions filters files by case-insensitive suffix match
	// (e.g. ".py", ".txt"). Empty means no filter. Ignored by
	// ListSubdirs.
	Extensions []string
	// SortBy selects the ordering; SortName compares final name
	// components (case-sensitive).
	SortBy SortKey
	// Reverse inverts the sort order.
	Reverse bool
	// Relative expresses results relative to the base directory.
	Relative bool
}

// DefaultListOptions returns options with unbounded depth, no filter
// and no sorting.
func DefaultListOptions() ListOptions {
	return ListOptions{MaxDepth: UnboundedDepth}
}

// ListFiles recursively enumerates regular files under the base
// directory. Directories that cannot be read are skipped silently; the
// result is best-effort.
//
// Note that the zero ListOptions value limits the listing to the base
// directory itself (MaxDepth 0 is a valid bound, not "off"). Start
// from DefaultListOptions for an unbounded listing.
func (m Manager) ListFiles(opt ListOptions) ([]string, error) {
	suffixes := make([]string, len(opt.Extensions))
	for i, ext := range opt.Extensions {
		suffixes[i] = strings.ToLower(ext)
	}

	files := m.collectFiles(m.base, 0, opt.MaxDepth, suffixes, nil)

	m.sortListing(files, opt, fileSizeKey)

	for i, p := range files {
		files[i] = m.format(p, opt.Relative)
	}

	return files, nil
}

// collectFiles gathers matching files below dir at the given depth,
// appending to acc. Depth 0 is the base directory itself.
func (m Manager) collectFiles(dir string, depth, maxDepth int, suffixes []string, acc []string) []string {
	if maxDepth >= 0 && depth > maxDepth {
		return acc
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		// Unreadable directory: skip the subtree.
		return acc
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		switch {
		case entry.IsDir():
			acc = m.collectFiles(path, depth+1, maxDepth, suffixes, acc)
		case entry.Type().IsRegular():
			if matchSuffix(entry.Name(), suffixes) {
				acc = append(acc, path)
			}
		}
	}

	return acc
}

// matchSuffix reports whether name matches any of the lower-cased
// suffixes; an empty filter matches everything.
func matchSuffix(name string, suffixes []string) bool {
	if len(suffixes) == 0 {
		return true
	}

	lower := strings.ToLower(name)
	for _, suffix := range suffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}

	return false
}

// ListImages enumerates files matching the built-in image extension
// set; any filter in opt.Extensions is replaced.
func (m Manager) ListImages(opt ListOptions) ([]string, error) {
	opt.Extensions = fsio.ImageExtensions()

	return m.ListFiles(opt)
}

// ListSubdirs recursively enumerates directories starting at, and
// including, the base directory (the base is depth 0, so MaxDepth 0
// yields only the base). Size-sorting uses each directory's total
// recursive file size; unreadable subtrees degrade to partial sums.
// As with ListFiles, use DefaultListOptions for an unbounded listing;
// the zero options value stops at the base.
func (m Manager) ListSubdirs(opt ListOptions) ([]string, error) {
	subdirs := m.collectSubdirs(m.base, 0, opt.MaxDepth, nil)

	m.sortListing(subdirs, opt, fsio.DirSize)

	for i, p := range subdirs {
		subdirs[i] = m.format(p, opt.Relative)
	}

	return subdirs, nil
}

// collectSubdirs gathers dir and every directory below it up to
// maxDepth, appending to acc.
func (m Manager) collectSubdirs(dir string, depth, maxDepth int, acc []string) []string {
	acc = append(acc, dir)

	if maxDepth >= 0 && depth >= maxDepth {
		return acc
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return acc
	}

	for _, entry := range entries {
		if entry.IsDir() {
			acc = m.collectSubdirs(filepath.Join(dir, entry.Name()), depth+1, maxDepth, acc)
		}
	}

	return acc
}

// sortListing applies the recursive listers' ordering, with sizeKey
// supplying the per-path size for SortSize.
func (m Manager) sortListing(paths []string, opt ListOptions, sizeKey func(string) int64) {
	switch opt.SortBy {
	case SortName:
		sortBy(paths, filepath.Base, opt.Reverse)
	case SortMtime:
		sortBy(paths, mtimeKey, opt.Reverse)
	case SortSize:
		sortBy(paths, sizeKey, opt.Reverse)
	case SortNone:
	}
}
