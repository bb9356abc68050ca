// Package main provides the pedigraph CLI: inspect a pedigree CSV for
// structural problems, or recode it into the canonical form expected by
// relationship-matrix and REML programs.
package main

import (
	"os"
)

// Version is set by build flags.
var Version = "dev"

func main() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
