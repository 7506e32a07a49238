// Command dynconn is the §4.13/§6 benchmark driver: it loads an
// action-stream instance, runs it against one named dynamic connectivity
// algorithm, and writes a single CSV row reporting either a wall-clock
// measurement or a correctness cross-check against DTree.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
