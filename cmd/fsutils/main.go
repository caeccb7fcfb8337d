// Command fsutils prints aggregate statistics for a directory tree.
package main

import (
	"os"

	"github.com/droyed/fsutils/internal/cli"
)

// version is set at build time.
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		os.Exit(1)
	}
}
