// Package main provides the dynbench test runner.
//
// Usage:
//
//	dynbench run [flags] <number of tests>
//
// It times the dynamic array operations (creation, append, precate,
// quick precate, prepend into the deadzone, trim, bulk append) and checks
// their results while doing so.
package main

import (
	"fmt"
	"os"

	"github.com/pavanmanishd/dynarr/cmd/dynbench/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
