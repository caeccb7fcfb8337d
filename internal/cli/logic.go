package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/droyed/fsutils"
	"github.com/droyed/fsutils/dirstat"
)

// run scans path and prints the report in the selected format.
func run(path string, opt options) error {
	manager, err := fsutils.New(path)
	if err != nil {
		return err
	}

	logger := zap.NewNop()

	if opt.Debug {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("creating debug logger: %w", err)
		}
		defer logger.Sync() //nolint:errcheck // Best-effort flush on exit
	}

	// Static status line while the scan runs, only on an interactive
	// terminal and only for human output.
	showStatus := opt.Output != "json" && !opt.Debug && isatty.IsTerminal(os.Stderr.Fd())

	if showStatus {
		fmt.Fprintf(os.Stderr, "Scanning %s…\r", manager.Base())
	}

	stats, err := dirstat.Collect(manager.Base(), dirstat.Options{
		FollowSymlinks: opt.FollowSymlinks,
		Logger:         logger,
	})

	if showStatus {
		fmt.Fprint(os.Stderr, "\033[2K\r")
	}

	if err != nil {
		return err
	}

	switch opt.Output {
	case "json":
		return PrintJSON(stats, os.Stdout)
	default:
		//nolint:forbidigo // Report output to console
		fmt.Fprintln(os.Stdout, dirstat.Format(stats))

		return nil
	}
}
