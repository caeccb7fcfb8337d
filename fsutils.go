// Package fsutils manages directories and files within a base
// directory: listing with sorting, recursive enumeration, copy/move/
// delete, glob matching, tree walking and delegation to dirstat for
// statistics reports.
//
// A Manager is a value bound to one base directory fixed at
// construction. Relative path arguments resolve against it; absolute
// paths pass through unchanged. Managers are comparable: two managers
// with the same base directory compare equal and are interchangeable
// as map keys.
package fsutils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Error kinds for directory-scoped operations. Match with errors.Is;
// file-level kinds (fsio.ErrNotFound, fsio.ErrIsDirectory) live in the
// fsio package.
var (
	// ErrNotDirectory indicates a directory operation on a missing path
	// or a non-directory.
	ErrNotDirectory = errors.New("not a directory")
	// ErrExists indicates directory creation without exist-ok on an
	// existing path.
	ErrExists = errors.New("already exists")
	// ErrNotEmpty indicates non-recursive deletion of a directory with
	// contents.
	ErrNotEmpty = errors.New("directory not empty")
	// ErrBaseDir indicates construction with a nonexistent base
	// directory.
	ErrBaseDir = errors.New("invalid base directory")
)

// Manager binds filesystem operations to a base directory. The zero
// value is not usable; construct with New.
type Manager struct {
	base string
}

// New creates a Manager bound to baseDir, or to the current working
// directory when baseDir is empty. It fails with ErrBaseDir when the
// resolved base does not exist or is not a directory. The base is
// fixed for the manager's lifetime.
func New(baseDir string) (Manager, error) {
	if baseDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return Manager{}, fmt.Errorf("getting current directory: %w", err)
		}

		baseDir = cwd
	}

	baseDir = filepath.Clean(baseDir)

	info, err := os.Stat(baseDir)
	if err != nil {
		return Manager{}, fmt.Errorf("%w: %s", ErrBaseDir, baseDir)
	}

	if !info.IsDir() {
		return Manager{}, fmt.Errorf("%w: %s is not a directory", ErrBaseDir, baseDir)
	}

	return Manager{base: baseDir}, nil
}

// Base returns the base directory the manager is bound to.
func (m Manager) Base() string { return m.base }

// Equal reports whether both managers are bound to the same base
// directory. Managers are also directly comparable with ==.
func (m Manager) Equal(other Manager) bool { return m.base == other.base }

// String returns a readable representation of the manager.
func (m Manager) String() string { return fmt.Sprintf("Manager(%s)", m.base) }

// resolve resolves path against the base directory. Absolute paths
// pass through unchanged; this is resolution, not a sandbox, so ".."
// segments and absolute paths may escape the base.
func (m Manager) resolve(path string) string {
	if path == "" {
		path = "."
	}

	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}

	return filepath.Join(m.base, path)
}

// format expresses p relative to the base directory when relative is
// set, and returns it unchanged otherwise.
func (m Manager) format(p string, relative bool) string {
	if !relative {
		return p
	}

	rel, err := filepath.Rel(m.base, p)
	if err != nil {
		return p
	}

	return rel
}
