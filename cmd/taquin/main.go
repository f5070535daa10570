// Command taquin is a thin CLI wrapper over the taquin library: it parses
// flags (taking their defaults from config.Defaults; no config file is
// read) and wires up logging, then delegates every puzzle operation
// straight to the package root API.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
