package fsutils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Glob returns the paths under the base directory matching pattern.
// Standard glob syntax is supported (*, ?, [...]) plus ** for
// recursive matching. Results are absolute unless relative is set.
func (m Manager) Glob(pattern string, relative bool) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(m.base), pattern)
	if err != nil {
		return nil, fmt.Errorf("matching pattern %q: %w", pattern, err)
	}

	paths := make([]string, len(matches))
	for i, match := range matches {
		if relative {
			paths[i] = filepath.FromSlash(match)
		} else {
			paths[i] = filepath.Join(m.base, filepath.FromSlash(match))
		}
	}

	return paths, nil
}
