package dirstat

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// tabSpacing is the number of spaces between tabwriter columns.
const tabSpacing = 2

// Report styles. Colors degrade to plain text on non-color terminals.
//
//nolint:gochecknoglobals // Style constants
var (
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	styleLabel  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	styleValue  = lipgloss.NewStyle().Bold(true)
	styleDim    = lipgloss.NewStyle().Faint(true)
	styleGood   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleBad    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Format renders a Stats snapshot as a human-readable multi-line
// report. It is presentation-only and never mutates the snapshot.
func Format(stats *Stats) string {
	var sb strings.Builder

	w := tabwriter.NewWriter(&sb, 0, 4, tabSpacing, ' ', 0)

	fmt.Fprintln(w, styleHeader.Render(stats.Root))

	fmt.Fprintf(w, "  %s\t%s %s\n",
		styleLabel.Render("Files:"),
		styleValue.Render(humanize.Comma(int64(stats.FileCount))),
		styleDim.Render(fmt.Sprintf("(hidden: %d)", stats.HiddenFiles)))
	fmt.Fprintf(w, "  %s\t%s %s\n",
		styleLabel.Render("Directories:"),
		styleValue.Render(humanize.Comma(int64(stats.DirectoryCount))),
		styleDim.Render(fmt.Sprintf("(hidden: %d)", stats.HiddenDirectories)))
	fmt.Fprintf(w, "  %s\t%s\n",
		styleLabel.Render("Symlinks:"),
		styleValue.Render(humanize.Comma(int64(stats.SymlinkCount))))

	fmt.Fprintf(w, "  %s\t%s\n",
		styleLabel.Render("Total size:"),
		styleValue.Render(formatBytes(stats.TotalBytes)))
	fmt.Fprintf(w, "  %s\t%s\n", styleLabel.Render("Largest file:"), largestLine(stats))

	fmt.Fprintf(w, "  %s\n", styleLabel.Render("Top extensions:"))
	fmt.Fprintf(w, "    by size:\t%s\n", extLine(stats.TopExtensionsBySize, true))
	fmt.Fprintf(w, "    by count:\t%s\n", extLine(stats.TopExtensionsByCount, false))

	recent := styleGood
	if stats.ModifiedLast30d == 0 {
		recent = styleDim
	}

	fmt.Fprintf(w, "  %s\t%s\n",
		styleLabel.Render("Recent files:"),
		recent.Render(fmt.Sprintf("%s (last 30 days)", humanize.Comma(int64(stats.ModifiedLast30d)))))

	fmt.Fprintf(w, "  %s\t%d\n", styleLabel.Render("Empty dirs:"), stats.EmptyDirectories)
	fmt.Fprintf(w, "  %s\t%d\n", styleLabel.Render("Zero-byte files:"), stats.ZeroByteFiles)

	errs := styleGood
	if stats.ErrorCount > 0 {
		errs = styleBad
	}

	fmt.Fprintf(w, "  %s\t%s\n",
		styleLabel.Render("Errors:"),
		errs.Render(humanize.Comma(int64(stats.ErrorCount))))

	w.Flush()

	return strings.TrimRight(sb.String(), "\n")
}

// largestLine renders the largest-file column: name and size, or a dash
// when the scan observed no regular files.
func largestLine(stats *Stats) string {
	if stats.LargestFile == nil {
		return styleDim.Render("-")
	}

	return fmt.Sprintf("%s %s",
		styleValue.Render(filepath.Base(stats.LargestFile.Path)),
		styleDim.Render(fmt.Sprintf("(%s)", formatBytes(stats.LargestFile.Size))))
}

// extLine renders one ranking as a single line of "ext value" pairs.
func extLine(top []ExtValue, bySize bool) string {
	if len(top) == 0 {
		return styleDim.Render("-")
	}

	parts := make([]string, 0, len(top))

	for _, ev := range top {
		value := humanize.Comma(ev.Value)
		if bySize {
			value = formatBytes(ev.Value)
		}

		parts = append(parts, fmt.Sprintf("%s %s",
			styleValue.Render(ev.Ext.String()), styleDim.Render(value)))
	}

	return strings.Join(parts, "   ")
}

// formatBytes formats a byte count with base-1024 scaling through
// B/KB/MB/GB/TB/PB.
func formatBytes(n int64) string {
	const unit = 1024

	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	units := []string{"KB", "MB", "GB", "TB", "PB"}

	div, exp := int64(unit), 0
	for v := n / unit; v >= unit && exp < len(units)-1; v /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %s", float64(n)/float64(div), units[exp])
}
