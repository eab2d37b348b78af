// Copyright (c) 2026 Keymaster Team
// Caesar - Caesar cipher trainer
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, the shared startup (config, i18n,
// logging) and the version command.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/toeirei/caesar/buildvars"
	"github.com/toeirei/caesar/internal/clipboard"
	"github.com/toeirei/caesar/internal/config"
	"github.com/toeirei/caesar/internal/i18n"
	"github.com/toeirei/caesar/internal/logging"
	"github.com/toeirei/caesar/internal/quiz"
	"github.com/toeirei/caesar/internal/tui"
)

const modulePath = "github.com/toeirei/caesar"

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

var appConfig config.Config

// Replaced in tests.
var (
	newClipboard = clipboard.New
	runTUI       = tui.Run
)

func setupDefaultServices(cmd *cobra.Command, verbose bool) error {
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), optionalConfigPath)
	// No config file yet: persist the defaults so there is one to edit.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		if path, writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
			logging.Warnf("could not write default config file: %v", writeErr)
		} else {
			logging.Infof("wrote default config to %s", path)
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if err := appConfig.Validate(); err != nil {
		return err
	}

	if err := logging.SetLevel(appConfig.Log.Level); err != nil {
		logging.Warnf("ignoring log level: %v", err)
	}
	if verbose {
		logging.SetDebug(true)
	}

	i18n.Init(appConfig.Language)
	if !i18n.ValidLanguage(appConfig.Language) {
		logging.Warnf("language %q is not available, falling back to English", appConfig.Language)
		i18n.SetLang("en")
	}
	return nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	// Make sure the user-provided file exists to avoid unwanted behavior.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// tuiLogPath is where logs go while the TUI runs.
func tuiLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "caesar", "caesar.log")
}

// newGenerator builds the quiz generator from the loaded configuration.
func newGenerator(opts ...quiz.Option) (*quiz.Generator, error) {
	base := []quiz.Option{
		quiz.WithWords(appConfig.Quiz.Words...),
		quiz.WithShiftRange(appConfig.Quiz.MinShift, appConfig.Quiz.MaxShift),
	}
	return quiz.NewGenerator(append(base, opts...)...)
}

// NewRootCmd creates and configures a new root cobra command.
// Every call builds fresh subcommands so tests can run commands in isolation.
func NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "caesar",
		Short: "Caesar is a trainer for the Caesar shift cipher.",
		Long: `Caesar shows how the Caesar cipher substitutes letters, encrypts and
decrypts text with any shift, and quizzes you on it.

Running without a subcommand will launch the interactive TUI.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupDefaultServices(cmd, verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := appConfig.Direction()
			if err != nil {
				return err
			}
			gen, err := newGenerator()
			if err != nil {
				return err
			}

			// The TUI owns the terminal; keep log lines out of its frame.
			restore, err := logging.ToFile(tuiLogPath())
			if err != nil {
				restore()
				logging.Warnf("TUI logs are discarded: %v", err)
				logging.SetOutput(io.Discard)
			}
			defer restore()

			return runTUI(tui.Options{
				Shift:     appConfig.Cipher.Shift,
				Direction: dir,
				Generator: gen,
				Clipboard: newClipboard(appConfig.Clipboard.Enabled),
			})
		},
	}

	v, c, d := resolveBuildVersion(nil)
	cmd.Version = compositeVersion(v, c, d)

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `UI language ("en", "ms")`)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}

	cmd.AddCommand(
		newShiftCmd(shiftEncrypt),
		newShiftCmd(shiftDecrypt),
		newAlphabetCmd(),
		newPracticeCmd(),
		versionCmd,
	)

	return cmd
}

func compositeVersion(v, c, d string) string {
	out := v
	if c != "" && c != "dev" {
		out = out + " (" + c + ")"
	}
	if d != "" {
		out = out + " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, found := debug.ReadBuildInfo(); found {
			info = local
		}
	}

	// A linker-provided version wins over build info.
	if info != nil && buildvars.Version == "" {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// If Main doesn't carry the version (some build paths), look for our
		// module among the dependencies.
		if resolvedVersion == "dev" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}
	}
	if info != nil {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort show the commit passed via ldflags.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
