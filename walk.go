package fsutils

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"

	"github.com/droyed/fsutils/fsio"
)

// WalkEntry is one step of a directory tree walk.
type WalkEntry struct {
	// Dir is the directory being visited.
	Dir string
	// Subdirs and Files hold the direct children. By default they are
	// bare names; in relative mode they are paths relative to the base
	// directory instead (see Walk).
	Subdirs []string
	Files   []string
}

// Walk returns a lazy depth-first, pre-order sequence of
// (directory, subdirectories, files) entries rooted at top, resolved
// against the base directory. It fails upfront with fsio.ErrNotFound
// when top does not exist and ErrNotDirectory when it is not a
// directory; directories that become unreadable during the walk are
// skipped.
//
// Child naming is asymmetric, kept for compatibility with earlier
// releases: by default Subdirs and Files hold bare names, but when
// relative is set they hold paths relative to the base directory, not
// bare names.
func (m Manager) Walk(top string, relative bool) (iter.Seq[WalkEntry], error) {
	p := m.resolve(top)

	info, err := os.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("directory %q: %w", p, fsio.ErrNotFound)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, p)
	}

	return func(yield func(WalkEntry) bool) {
		m.walkTree(p, relative, yield)
	}, nil
}

// walkTree yields dir and recurses into its subdirectories. It returns
// false when the consumer stopped the iteration.
func (m Manager) walkTree(dir string, relative bool, yield func(WalkEntry) bool) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return true
	}

	var subdirNames, fileNames []string

	for _, entry := range entries {
		if entry.IsDir() {
			subdirNames = append(subdirNames, entry.Name())
		} else {
			fileNames = append(fileNames, entry.Name())
		}
	}

	walkEntry := WalkEntry{Dir: dir, Subdirs: subdirNames, Files: fileNames}

	if relative {
		walkEntry.Dir = m.format(dir, true)
		walkEntry.Subdirs = m.relativeChildren(dir, subdirNames)
		walkEntry.Files = m.relativeChildren(dir, fileNames)
	}

	if !yield(walkEntry) {
		return false
	}

	for _, name := range subdirNames {
		if !m.walkTree(filepath.Join(dir, name), relative, yield) {
			return false
		}
	}

	return true
}

// relativeChildren expresses the children of dir relative to the base
// directory.
func (m Manager) relativeChildren(dir string, names []string) []string {
	rel := make([]string, len(names))
	for i, name := range names {
		rel[i] = m.format(filepath.Join(dir, name), true)
	}

	return rel
}
