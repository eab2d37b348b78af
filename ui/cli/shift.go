// Copyright (c) 2026 Keymaster Team
// Caesar - Caesar cipher trainer
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/toeirei/caesar/internal/cipher"
	"github.com/toeirei/caesar/internal/clipboard"
	"github.com/toeirei/caesar/internal/logging"
	"github.com/toeirei/caesar/util/slicest"
)

var errNoInput = errors.New("no input: pass text as arguments or pipe it on stdin")

type shiftCommand struct {
	use   string
	short string
	dir   cipher.Direction
}

var (
	shiftEncrypt = shiftCommand{use: "encrypt", short: "Encrypt text with a Caesar shift", dir: cipher.Encrypt}
	shiftDecrypt = shiftCommand{use: "decrypt", short: "Decrypt text with a Caesar shift", dir: cipher.Decrypt}
)

// newShiftCmd builds the encrypt or decrypt command. Both share one code
// path; only the direction differs.
func newShiftCmd(sc shiftCommand) *cobra.Command {
	var shift int
	var copyOut bool

	cmd := &cobra.Command{
		Use:   sc.use + " [text...]",
		Short: sc.short,
		Long: sc.short + `.

Text is taken from the arguments, or from stdin when it is piped in.
Letters are upper-cased; digits, punctuation and spaces pass through.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cipher.ValidateShift(shift, 0, cipher.Latin.Size()-1); err != nil {
				return fmt.Errorf("--shift: %w", err)
			}
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if strings.TrimSpace(text) == "" {
				return nil
			}

			out := cipher.Apply(text, shift, sc.dir)
			logging.Debugf("%s: shift=%d len=%d", sc.dir, shift, len(text))
			fmt.Fprintln(cmd.OutOrStdout(), out)

			if copyOut {
				clipboard.Copy(newClipboard(appConfig.Clipboard.Enabled), out)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&shift, "shift", "s", 3, "Shift amount (0-25)")
	cmd.Flags().BoolVarP(&copyOut, "copy", "c", false, "Also copy the result to the clipboard")
	return cmd
}

// readInput joins args, or reads stdin when no args are given and stdin is
// not a terminal. A single trailing newline is dropped.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", errNoInput
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

func newAlphabetCmd() *cobra.Command {
	var shift int
	var mode string

	cmd := &cobra.Command{
		Use:   "alphabet",
		Short: "Print the plain and shifted alphabet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cipher.ValidateShift(shift, 0, cipher.Latin.Size()-1); err != nil {
				return fmt.Errorf("--shift: %w", err)
			}
			dir, err := cipher.ParseDirection(mode)
			if err != nil {
				return fmt.Errorf("--mode: %w", err)
			}

			plain := spaced([]rune(cipher.Latin.String()))
			arrows := strings.TrimSpace(strings.Repeat("↓ ", cipher.Latin.Size()))
			shifted := spaced([]rune(cipher.Latin.Shifted(shift, dir)))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, plain)
			fmt.Fprintln(out, arrows)
			fmt.Fprintln(out, shifted)
			return nil
		},
	}

	cmd.Flags().IntVarP(&shift, "shift", "s", 3, "Shift amount (0-25)")
	cmd.Flags().StringVarP(&mode, "mode", "m", "encrypt", "Direction: encrypt or decrypt")
	return cmd
}

func spaced(rs []rune) string {
	return strings.Join(slicest.Map(rs, func(r rune) string { return string(r) }), " ")
}
