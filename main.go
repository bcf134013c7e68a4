// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for the demo.
//
// Usage:
//
//	go run . [flags]
//	go run . serve
//	./dropin-demo [flags]
//
// This launches the demo CLI. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/dropindemo/ui/cli"
)

func main() {
	// Cobra already printed the error.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
