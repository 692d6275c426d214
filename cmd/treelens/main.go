// ABOUTME: Entry point for the treelens CLI
// ABOUTME: Runs the cobra command tree and exits non-zero on failure

package main

import (
	"os"

	"github.com/prateek/treelens/cmd/treelens/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
