// Command montepi runs Monte Carlo π trials and prints their summaries, or
// emits them as an archive for a plotting tool.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
