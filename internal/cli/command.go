// Package cli implements the example driver that prints a directory
// statistics report.
package cli

import (
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// options holds the command-line flags.
type options struct {
	// Output is the output format (table or json).
	Output string
	// FollowSymlinks resolves symlinks during the scan.
	FollowSymlinks bool
	// Debug enables scan diagnostics on stderr.
	Debug bool
}

// New builds the root command with the given version.
func New(version string) *cobra.Command {
	var opt options

	allowedOutputs := []string{"table", "json"}

	cmd := &cobra.Command{
		Use:   "fsutils [path]",
		Short: "Print directory statistics",
		Long: heredoc.Doc(`
			fsutils scans a directory tree once and prints aggregate statistics:
			file, directory and symlink counts, total and largest-file sizes,
			top extensions by size and by count, modification-time buckets and
			hygiene counters (hidden entries, empty directories, zero-byte files).

			The path defaults to the current directory. Errors encountered during
			the scan (unreadable directories, vanished entries) never abort it;
			they are reflected in the report's error count.
		`),
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if !slices.Contains(allowedOutputs, opt.Output) {
				return fmt.Errorf("invalid output format %q: must be one of %v", opt.Output, allowedOutputs)
			}

			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			return run(path, opt)
		},
	}

	cmd.Flags().StringVarP(&opt.Output, "output", "o", "table", "Output format: table or json")
	cmd.Flags().BoolVarP(&opt.FollowSymlinks, "follow-symlinks", "L", false, "Follow symbolic links while scanning")
	cmd.Flags().BoolVar(&opt.Debug, "debug", false, "Enable debug diagnostics on stderr")
	cmd.Flags().SortFlags = false

	return cmd
}
