package fsutils

import (
	"fmt"

	"github.com/droyed/fsutils/dirstat"
	"github.com/droyed/fsutils/fsio"
)

// Stats scans the base directory and returns a fresh statistics
// snapshot. It fails with fsio.ErrNotFound when the base directory no
// longer exists at call time.
func (m Manager) Stats(followSymlinks bool) (*dirstat.Stats, error) {
	if !fsio.IsDir(m.base) {
		return nil, fmt.Errorf("base directory %q: %w", m.base, fsio.ErrNotFound)
	}

	stats, err := dirstat.Collect(m.base, dirstat.Options{FollowSymlinks: followSymlinks})
	if err != nil {
		return nil, fmt.Errorf("collecting statistics for %q: %w", m.base, err)
	}

	return stats, nil
}

// DisplayStats scans the base directory and prints the statistics
// report to standard output.
func (m Manager) DisplayStats(followSymlinks bool) error {
	stats, err := m.Stats(followSymlinks)
	if err != nil {
		return err
	}

	//nolint:forbidigo // Report output to console
	fmt.Println(dirstat.Format(stats))

	return nil
}
