package fsutils

import (
	"cmp"
	"os"
	"sort"
)

// SortKey selects the ordering of listing results.
type SortKey string

// Supported sort keys. SortNone keeps the enumeration order.
const (
	SortNone  SortKey = ""
	SortName  SortKey = "name"
	SortMtime SortKey = "mtime"
	SortSize  SortKey = "size"
)

// sortBy sorts paths ascending by the key computed once per path
// (decorate, sort, undecorate: one stat per entry instead of one per
// comparison). The sort is stable; reverse inverts the comparison but
// keeps equal keys in their enumeration order.
func sortBy[K cmp.Ordered](paths []string, key func(string) K, reverse bool) {
	type decorated struct {
		key  K
		path string
	}

	dec := make([]decorated, len(paths))
	for i, p := range paths {
		dec[i] = decorated{key: key(p), path: p}
	}

	sort.SliceStable(dec, func(i, j int) bool {
		if reverse {
			return dec[j].key < dec[i].key
		}

		return dec[i].key < dec[j].key
	})

	for i, d := range dec {
		paths[i] = d.path
	}
}

// mtimeKey returns the modification time of p in nanoseconds. Entries
// that vanish mid-listing degrade to a zero key rather than failing
// the listing.
func mtimeKey(p string) int64 {
	info, err := os.Stat(p)
	if err != nil {
		return 0
	}

	return info.ModTime().UnixNano()
}

// fileSizeKey returns the size of p when it is a regular file and 0
// otherwise; directories have no size for sorting purposes.
func fileSizeKey(p string) int64 {
	info, err := os.Stat(p)
	if err != nil || !info.Mode().IsRegular() {
		return 0
	}

	return info.Size()
}
