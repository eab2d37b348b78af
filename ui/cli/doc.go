// Copyright (c) 2026 Keymaster Team
// Caesar - Caesar cipher trainer
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Caesar using Cobra.
// It loads configuration, initializes i18n and logging, and exposes the
// shift engine and the quiz as subcommands. Running without a subcommand
// launches the TUI. CLI code stays thin and delegates to internal packages.
package cli
