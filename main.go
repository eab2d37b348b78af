// Copyright (c) 2026 Keymaster Team
// Caesar - Caesar cipher trainer
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Caesar.
//
// Usage:
//
//	go run . [flags]
//	./caesar [flags]
//
// Without a subcommand this launches the TUI. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/caesar/internal/logging"
	"github.com/toeirei/caesar/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("caesar: %v", err)
		os.Exit(1)
	}
}
