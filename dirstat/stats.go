package dirstat

import (
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// TopN is the number of entries kept in the extension rankings.
const TopN = 5

// noExtLabel is the display form of the extensionless bucket.
const noExtLabel = "<none>"

// Ext identifies an extension bucket. The zero value is the bucket for
// extensionless files; any other value holds a normalized extension
// (lower-cased, leading dot). Keeping the bucket a distinct type avoids
// collisions between a real extension and a sentinel string.
type Ext struct {
	name string
}

// ExtFor returns the extension bucket for a file name. Dotfiles whose
// name is nothing but the leading-dot "extension" (".bashrc") count as
// extensionless.
func ExtFor(filename string) Ext {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == strings.ToLower(filepath.Base(filename)) {
		return NoExt
	}

	return Ext{name: ext}
}

// NoExt is the bucket for files without an extension.
var NoExt = Ext{}

// None reports whether the bucket is the extensionless one.
func (e Ext) None() bool { return e.name == "" }

// String returns the normalized extension, or "<none>" for the
// extensionless bucket.
func (e Ext) String() string {
	if e.None() {
		return noExtLabel
	}

	return e.name
}

// MarshalText implements encoding.TextMarshaler so Ext can key JSON maps.
func (e Ext) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Ext) UnmarshalText(text []byte) error {
	if string(text) == noExtLabel {
		*e = NoExt

		return nil
	}

	e.name = strings.ToLower(string(text))

	return nil
}

// FileStat represents a single file path and size.
type FileStat struct {
	// Path is the file path.
	Path string `json:"path"`
	// Size is the size in bytes.
	Size int64 `json:"size"`
}

// ExtValue is one entry of an extension ranking.
type ExtValue struct {
	// Ext is the extension bucket.
	Ext Ext `json:"ext"`
	// Value is the ranked quantity (bytes or file count).
	Value int64 `json:"value"`
}

// Stats is an immutable snapshot of one directory scan. Every call to
// Collect produces a fresh snapshot; nothing is cached between calls.
type Stats struct {
	// Root is the absolute path that was scanned.
	Root string `json:"root"`

	// FileCount is the number of regular files observed.
	FileCount int `json:"file_count"`
	// DirectoryCount is the number of directories entered, the root included.
	DirectoryCount int `json:"directory_count"`
	// SymlinkCount is the number of symbolic links encountered.
	SymlinkCount int `json:"symlink_count"`

	// TotalBytes is the cumulative size of all stat'ed files.
	TotalBytes int64 `json:"total_bytes"`
	// LargestFile is the first-seen file at the maximum observed size,
	// nil when no regular file was observed.
	LargestFile *FileStat `json:"largest_file,omitempty"`

	// ExtCount maps extension buckets to file counts.
	ExtCount map[Ext]int `json:"ext_count"`
	// ExtSize maps extension buckets to cumulative bytes.
	ExtSize map[Ext]int64 `json:"ext_size"`
	// TopExtensionsBySize ranks up to TopN buckets by cumulative bytes,
	// descending, ties broken by encounter order.
	TopExtensionsBySize []ExtValue `json:"top_extensions_by_size"`
	// TopExtensionsByCount ranks up to TopN buckets by file count.
	TopExtensionsByCount []ExtValue `json:"top_extensions_by_count"`

	// OldestMtime and NewestMtime bound the observed modification times,
	// nil when no file was stat'ed.
	OldestMtime *time.Time `json:"oldest_mtime,omitempty"`
	NewestMtime *time.Time `json:"newest_mtime,omitempty"`
	// ModifiedLast30d counts files modified within 30 days of scan start.
	ModifiedLast30d int `json:"modified_last_30d"`

	// EmptyDirectories counts directories with no entries at all.
	EmptyDirectories int `json:"empty_directories"`
	// ZeroByteFiles counts regular files of size zero.
	ZeroByteFiles int `json:"zero_byte_files"`
	// HiddenFiles and HiddenDirectories count entries whose name starts
	// with a dot.
	HiddenFiles       int `json:"hidden_files"`
	HiddenDirectories int `json:"hidden_directories"`

	// ErrorCount is the number of entries or directories that could not
	// be stat'ed or enumerated. The scan continues past these.
	ErrorCount int `json:"error_count"`
}

// topExtensions ranks the accumulated buckets descending by value and
// trims to TopN. The sort is stable over the encounter order of the
// buckets, so equal values keep their first-seen ordering.
func topExtensions(order []Ext, value func(Ext) int64) []ExtValue {
	ranked := make([]Ext, len(order))
	copy(ranked, order)

	sort.SliceStable(ranked, func(i, j int) bool {
		return value(ranked[i]) > value(ranked[j])
	})

	if len(ranked) > TopN {
		ranked = ranked[:TopN]
	}

	top := make([]ExtValue, len(ranked))
	for i, ext := range ranked {
		top[i] = ExtValue{Ext: ext, Value: value(ext)}
	}

	return top
}
