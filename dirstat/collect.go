package dirstat

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// recentWindow is the recency bucket used for ModifiedLast30d.
const recentWindow = 30 * 24 * time.Hour

// Options configures a directory scan.
type Options struct {
	// FollowSymlinks resolves symbolic links and classifies them as
	// their targets. When false, links are counted and skipped.
	FollowSymlinks bool
	// Logger receives debug diagnostics for skipped entries.
	// Nil disables diagnostics.
	Logger *zap.Logger
}

// collector accumulates walk results. The walk is sequential and
// single-pass, so the collector needs no locking; it also keeps the
// encounter order of extension buckets, which the ranking tie-break
// depends on.
type collector struct {
	now    time.Time
	follow bool
	log    *zap.Logger

	files       int
	directories int
	symlinks    int
	emptyDirs   int
	zeroByte    int
	hiddenFiles int
	hiddenDirs  int
	errors      int

	totalBytes int64
	largest    *FileStat

	extOrder []Ext
	extCount map[Ext]int
	extSize  map[Ext]int64

	oldest *time.Time
	newest *time.Time
	recent int
}

// newCollector creates a collector with the scan-start time captured
// once, so every file in the scan shares one recency reference point.
func newCollector(opt Options) *collector {
	log := opt.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &collector{
		now:      time.Now(),
		follow:   opt.FollowSymlinks,
		log:      log,
		extCount: make(map[Ext]int),
		extSize:  make(map[Ext]int64),
	}
}

// Collect walks the tree rooted at root and returns one Stats snapshot.
//
// Per-entry and per-directory failures are counted, never raised; the
// only error returned is an invalid root. The walk is depth-first,
// pre-order and strictly sequential.
func Collect(root string, opt Options) (*Stats, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", root, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", root)
	}

	c := newCollector(opt)
	c.scanDir(abs)

	return c.finalize(abs), nil
}

// scanDir processes one directory: enumerate, classify each entry,
// recurse into subdirectories. An unreadable directory abandons its
// subtree and is not counted as a directory.
func (c *collector) scanDir(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		c.errors++
		c.log.Debug("unreadable directory", zap.String("path", dir), zap.Error(err))

		return
	}

	c.directories++

	if len(entries) == 0 {
		c.emptyDirs++
	}

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		if entry.Type()&fs.ModeSymlink != 0 {
			c.symlinks++
			if !c.follow {
				continue
			}

			// Resolve the link and classify it as its target.
			target, err := os.Stat(path)
			if err != nil {
				c.errors++
				c.log.Debug("broken symlink", zap.String("path", path), zap.Error(err))

				continue
			}

			switch {
			case target.IsDir():
				if strings.HasPrefix(name, ".") {
					c.hiddenDirs++
				}

				c.scanDir(path)
			case target.Mode().IsRegular():
				c.files++
				if strings.HasPrefix(name, ".") {
					c.hiddenFiles++
				}

				c.addFile(path, name, target)
			}

			continue
		}

		switch {
		case entry.IsDir():
			if strings.HasPrefix(name, ".") {
				c.hiddenDirs++
			}

			c.scanDir(path)
		case entry.Type().IsRegular():
			c.files++
			if strings.HasPrefix(name, ".") {
				c.hiddenFiles++
			}

			info, err := entry.Info()
			if err != nil {
				c.errors++
				c.log.Debug("stat failed", zap.String("path", path), zap.Error(err))

				continue
			}

			c.addFile(path, name, info)
		default:
			// Sockets, devices, fifos: neither file nor directory.
		}
	}
}

// addFile accumulates one stat'ed regular file.
func (c *collector) addFile(path, name string, info fs.FileInfo) {
	size := info.Size()
	c.totalBytes += size

	if size == 0 {
		c.zeroByte++
	}

	// First-seen file at the maximum size wins; later equal-size files
	// do not replace it. The first file always sets the field, so a
	// tree of only zero-byte files still reports a largest file.
	if c.largest == nil || size > c.largest.Size {
		c.largest = &FileStat{Path: path, Size: size}
	}

	ext := ExtFor(name)
	if _, seen := c.extCount[ext]; !seen {
		c.extOrder = append(c.extOrder, ext)
	}

	c.extCount[ext]++
	c.extSize[ext] += size

	mtime := info.ModTime()
	if c.oldest == nil || mtime.Before(*c.oldest) {
		t := mtime
		c.oldest = &t
	}

	if c.newest == nil || mtime.After(*c.newest) {
		t := mtime
		c.newest = &t
	}

	if c.now.Sub(mtime) <= recentWindow {
		c.recent++
	}
}

// finalize derives the rankings and assembles the snapshot.
func (c *collector) finalize(root string) *Stats {
	return &Stats{
		Root:           root,
		FileCount:      c.files,
		DirectoryCount: c.directories,
		SymlinkCount:   c.symlinks,
		TotalBytes:     c.totalBytes,
		LargestFile:    c.largest,
		ExtCount:       c.extCount,
		ExtSize:        c.extSize,
		TopExtensionsBySize: topExtensions(c.extOrder, func(e Ext) int64 {
			return c.extSize[e]
		}),
		TopExtensionsByCount: topExtensions(c.extOrder, func(e Ext) int64 {
			return int64(c.extCount[e])
		}),
		OldestMtime:       c.oldest,
		NewestMtime:       c.newest,
		ModifiedLast30d:   c.recent,
		EmptyDirectories:  c.emptyDirs,
		ZeroByteFiles:     c.zeroByte,
		HiddenFiles:       c.hiddenFiles,
		HiddenDirectories: c.hiddenDirs,
		ErrorCount:        c.errors,
	}
}
