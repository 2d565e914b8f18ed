// Package main is the entry point for amber-scan.
package main

import (
	"os"

	"github.com/o6elisk/amber-scan-simple/cmd/amber-scan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
