package fsio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Error kinds surfaced by this package and by the fsutils file
// operations. Match with errors.Is.
var (
	// ErrNotFound indicates the target path does not exist.
	ErrNotFound = errors.New("does not exist")
	// ErrIsDirectory indicates a file was expected but a directory found.
	ErrIsDirectory = errors.New("is a directory")
	// ErrUnsupportedAlgorithm indicates an unknown hash algorithm name.
	ErrUnsupportedAlgorithm = errors.New("unsupported hash algorithm")
)

// dirPerm is the mode used for directories created on demand.
const dirPerm = 0o755

// filePerm is the mode used for files created by the write helpers.
const filePerm = 0o644

// Exists reports whether a file or directory exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}

// IsFile reports whether path exists and is a regular file.
func IsFile(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.IsDir()
}

// statFile stats path and rejects missing paths and directories.
func statFile(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("file %q: %w", path, ErrNotFound)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("path %q: %w", path, ErrIsDirectory)
	}

	return info, nil
}

// ensureParent creates the parent directories of path when createDirs
// is set.
func ensureParent(path string, createDirs bool) error {
	if !createDirs {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("creating parent directories for %q: %w", path, err)
	}

	return nil
}

// ReadText reads the file at path as a UTF-8 string.
func ReadText(path string) (string, error) {
	data, err := ReadBytes(path)

	return string(data), err
}

// WriteText writes content to path, creating parent directories when
// createDirs is set. It returns the number of bytes written.
func WriteText(path, content string, createDirs bool) (int, error) {
	return WriteBytes(path, []byte(content), createDirs)
}

// ReadBytes reads the file at path.
func ReadBytes(path string) ([]byte, error) {
	if _, err := statFile(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	return data, nil
}

// WriteBytes writes content to path, creating parent directories when
// createDirs is set. It returns the number of bytes written.
func WriteBytes(path string, content []byte, createDirs bool) (int, error) {
	if err := ensureParent(path, createDirs); err != nil {
		return 0, err
	}

	if err := os.WriteFile(path, content, filePerm); err != nil {
		return 0, fmt.Errorf("writing %q: %w", path, err)
	}

	return len(content), nil
}

// DeleteFile removes the file at path. It fails with ErrNotFound for a
// missing path and ErrIsDirectory for a directory.
func DeleteFile(path string) error {
	if _, err := statFile(path); err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("deleting %q: %w", path, err)
	}

	return nil
}

// FileSize returns the size in bytes of the regular file at path.
func FileSize(path string) (int64, error) {
	info, err := statFile(path)
	if err != nil {
		return 0, err
	}

	return info.Size(), nil
}

// ModTime returns the last modification time of the file or directory
// at path.
func ModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("path %q: %w", path, ErrNotFound)
	}

	return info.ModTime(), nil
}
