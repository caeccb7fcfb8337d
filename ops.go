package fsutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/droyed/fsutils/fsio"
)

// dirPerm is the mode used for directories created by the manager.
const dirPerm = 0o755

// CreateDir creates a directory and all missing parents, resolved
// against the base directory, and returns the created path. When
// existOK is false and the path already exists it fails with ErrExists.
func (m Manager) CreateDir(path string, existOK bool) (string, error) {
	p := m.resolve(path)

	if !existOK {
		if _, err := os.Stat(p); err == nil {
			return "", fmt.Errorf("%w: %s", ErrExists, p)
		}
	}

	if err := os.MkdirAll(p, dirPerm); err != nil {
		return "", fmt.Errorf("creating directory %q: %w", p, err)
	}

	return p, nil
}

// statSourceFile validates a copy/move source: it must exist and be a
// regular file.
func (m Manager) statSourceFile(src string) (string, os.FileInfo, error) {
	p := m.resolve(src)

	info, err := os.Stat(p)
	if err != nil {
		return "", nil, fmt.Errorf("source file %q: %w", p, fsio.ErrNotFound)
	}

	if info.IsDir() {
		return "", nil, fmt.Errorf("source path %q: %w", p, fsio.ErrIsDirectory)
	}

	return p, info, nil
}

// CopyFile copies a file, creating the destination's parent
// directories unless createDirs is false, and returns the destination
// path. Permissions and modification time carry over to the copy.
func (m Manager) CopyFile(src, dst string, createDirs bool) (string, error) {
	srcPath, info, err := m.statSourceFile(src)
	if err != nil {
		return "", err
	}

	dstPath := m.resolve(dst)

	if createDirs {
		if err := os.MkdirAll(filepath.Dir(dstPath), dirPerm); err != nil {
			return "", fmt.Errorf("creating parent directories for %q: %w", dstPath, err)
		}
	}

	if err := copyContents(srcPath, dstPath, info); err != nil {
		return "", err
	}

	return dstPath, nil
}

// copyContents copies file bytes and preserves permissions and mtime,
// to the extent the platform supports it.
func copyContents(srcPath, dstPath string, info os.FileInfo) error {
	in, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("opening %q: %w", srcPath, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("creating %q: %w", dstPath, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()

		return fmt.Errorf("copying %q to %q: %w", srcPath, dstPath, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %q: %w", dstPath, err)
	}

	// Best-effort metadata preservation.
	_ = os.Chmod(dstPath, info.Mode().Perm())
	_ = os.Chtimes(dstPath, time.Now(), info.ModTime())

	return nil
}

// MoveFile moves a file, creating the destination's parent directories
// unless createDirs is false, and returns the destination path. The
// move is a rename when source and destination share a filesystem, and
// degrades to copy-then-delete across filesystems; the cross-filesystem
// case is not atomic.
func (m Manager) MoveFile(src, dst string, createDirs bool) (string, error) {
	srcPath, info, err := m.statSourceFile(src)
	if err != nil {
		return "", err
	}

	dstPath := m.resolve(dst)

	if createDirs {
		if err := os.MkdirAll(filepath.Dir(dstPath), dirPerm); err != nil {
			return "", fmt.Errorf("creating parent directories for %q: %w", dstPath, err)
		}
	}

	if err := os.Rename(srcPath, dstPath); err == nil {
		return dstPath, nil
	}

	if err := copyContents(srcPath, dstPath, info); err != nil {
		return "", err
	}

	if err := os.Remove(srcPath); err != nil {
		return "", fmt.Errorf("removing source %q: %w", srcPath, err)
	}

	return dstPath, nil
}

// DeleteDir deletes a directory resolved against the base directory.
// It fails with fsio.ErrNotFound for a missing path, ErrNotDirectory
// for a non-directory, and ErrNotEmpty when the directory has contents
// and recursive is false.
func (m Manager) DeleteDir(path string, recursive bool) error {
	p := m.resolve(path)

	info, err := os.Stat(p)
	if err != nil {
		return fmt.Errorf("directory %q: %w", p, fsio.ErrNotFound)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, p)
	}

	if recursive {
		if err := os.RemoveAll(p); err != nil {
			return fmt.Errorf("removing %q: %w", p, err)
		}

		return nil
	}

	entries, err := os.ReadDir(p)
	if err != nil {
		return fmt.Errorf("listing %q: %w", p, err)
	}

	if len(entries) > 0 {
		return fmt.Errorf("%w: %s", ErrNotEmpty, p)
	}

	if err := os.Remove(p); err != nil {
		return fmt.Errorf("removing %q: %w", p, err)
	}

	return nil
}
