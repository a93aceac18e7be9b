// Command slf is a personal append-only text logger.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/slf/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
