// Command cspctl is a thin CLI over the solver, benchmark, and
// min-conflicts packages — a local consumer of their contracts, not part
// of them.
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
