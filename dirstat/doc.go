// Package dirstat collects aggregate statistics for a directory tree.
//
// It walks the tree once, depth-first, accumulating counts, sizes,
// per-extension histograms, modification-time ranges and hygiene
// counters into an immutable Stats snapshot. Per-entry failures never
// abort the walk; they are reflected in the snapshot's error count.
package dirstat
