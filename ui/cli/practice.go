// Copyright (c) 2026 Keymaster Team
// Caesar - Caesar cipher trainer
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toeirei/caesar/internal/cipher"
	"github.com/toeirei/caesar/internal/i18n"
	"github.com/toeirei/caesar/internal/quiz"
)

func newPracticeCmd() *cobra.Command {
	var rounds int
	var seed int64

	cmd := &cobra.Command{
		Use:   "practice",
		Short: "Answer Caesar cipher questions on the command line",
		Long: `Practice asks a number of questions, one per line. Answers are
compared case-insensitively and without trimming. The score is printed
at the end, or when input ends early.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rounds < 1 {
				return fmt.Errorf("--rounds must be at least 1, got %d", rounds)
			}
			var opts []quiz.Option
			if cmd.Flags().Changed("seed") {
				opts = append(opts, quiz.WithSeed(seed))
			}
			gen, err := newGenerator(opts...)
			if err != nil {
				return err
			}
			return runPractice(cmd, quiz.NewSession(gen), rounds)
		},
	}

	cmd.Flags().IntVarP(&rounds, "rounds", "n", 5, "Number of questions")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for reproducible questions")
	return cmd
}

func runPractice(cmd *cobra.Command, session *quiz.Session, rounds int) error {
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	for range rounds {
		q := session.Next()
		if q.Direction == cipher.Decrypt {
			fmt.Fprintln(out, i18n.T("practice.prompt_decrypt", q.Shift))
		} else {
			fmt.Fprintln(out, i18n.T("practice.prompt_encrypt", q.Shift))
		}
		fmt.Fprintln(out, "  "+q.Prompt)
		fmt.Fprint(out, i18n.T("practice.answer"))

		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		fb, err := session.Submit(scanner.Text())
		if err != nil {
			return err
		}
		if fb.Correct {
			fmt.Fprintln(out, i18n.T("practice.correct"))
		} else {
			fmt.Fprintln(out, i18n.T("practice.wrong", fb.Expected))
		}
		fmt.Fprintln(out)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read answers: %w", err)
	}

	s := session.Score()
	fmt.Fprintln(out, i18n.T("practice.final_score", s.Correct, s.Total, s.Percent()))
	return nil
}
