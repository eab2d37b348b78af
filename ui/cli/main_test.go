// Copyright (c) 2026 Keymaster Team
// Caesar - Caesar cipher trainer
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/toeirei/caesar/internal/cipher"
	"github.com/toeirei/caesar/internal/clipboard"
	"github.com/toeirei/caesar/internal/config"
	"github.com/toeirei/caesar/internal/i18n"
	"github.com/toeirei/caesar/internal/logging"
	"github.com/toeirei/caesar/internal/quiz"
	"github.com/toeirei/caesar/internal/tui"
)

// isolate points config discovery and the working directory at a temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("XDG_CACHE_HOME", filepath.Join(tmp, "cache"))
	t.Setenv("HOME", tmp)

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return tmp
}

func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

type recordingClipboard struct{ got []string }

func (r *recordingClipboard) WriteAll(text string) error {
	r.got = append(r.got, text)
	return nil
}

func TestEncryptDecryptArgs(t *testing.T) {
	isolate(t)

	cases := []struct {
		args []string
		want string
	}{
		{[]string{"encrypt", "--shift", "3", "hello"}, "KHOOR\n"},
		{[]string{"decrypt", "--shift", "3", "KHOOR"}, "HELLO\n"},
		{[]string{"encrypt", "-s", "1", "Hi,", "Bob!", "42"}, "IJ, CPC! 42\n"},
		{[]string{"encrypt", "--shift", "0", "abc"}, "ABC\n"},
		{[]string{"decrypt", "--shift", "25", "zab"}, "ABC\n"},
	}
	for _, tc := range cases {
		out, err := runCmd(t, "", tc.args...)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", tc.args, err)
		}
		if out != tc.want {
			t.Fatalf("%v: expected %q, got %q", tc.args, tc.want, out)
		}
	}
}

func TestEncryptFromStdin(t *testing.T) {
	isolate(t)

	out, err := runCmd(t, "abc xyz\n", "encrypt", "--shift", "3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "DEF ABC\n" {
		t.Fatalf("expected %q, got %q", "DEF ABC\n", out)
	}
}

func TestEncryptBlankInputPrintsNothing(t *testing.T) {
	isolate(t)

	out, err := runCmd(t, "   \n", "encrypt", "--shift", "3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
}

func TestEncryptRejectsShiftOutOfRange(t *testing.T) {
	isolate(t)

	_, err := runCmd(t, "", "encrypt", "--shift", "30", "abc")
	if !errors.Is(err, cipher.ErrShiftOutOfRange) {
		t.Fatalf("expected ErrShiftOutOfRange, got %v", err)
	}
}

func TestEncryptCopy(t *testing.T) {
	isolate(t)
	rec := &recordingClipboard{}
	orig := newClipboard
	defer func() { newClipboard = orig }()
	newClipboard = func(bool) clipboard.Writer { return rec }

	if _, err := runCmd(t, "", "encrypt", "--shift", "1", "--copy", "abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.got) != 1 || rec.got[0] != "BCD" {
		t.Fatalf("expected BCD copied, got %v", rec.got)
	}
}

func TestAlphabet(t *testing.T) {
	isolate(t)

	out, err := runCmd(t, "", "alphabet", "--shift", "3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "A B C") || !strings.HasPrefix(lines[2], "D E F") {
		t.Fatalf("unexpected rows: %q", out)
	}

	out, err = runCmd(t, "", "alphabet", "--shift", "3", "--mode", "decrypt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines = strings.Split(strings.TrimSpace(out), "\n")
	if !strings.HasPrefix(lines[2], "X Y Z A") {
		t.Fatalf("unexpected decrypt row: %q", lines[2])
	}

	if _, err := runCmd(t, "", "alphabet", "--mode", "sideways"); !errors.Is(err, cipher.ErrUnknownDirection) {
		t.Fatalf("expected ErrUnknownDirection, got %v", err)
	}
}

func TestPractice(t *testing.T) {
	isolate(t)

	// Same options the command builds from the default config.
	gen, err := quiz.NewGenerator(
		quiz.WithWords(quiz.DefaultWords...),
		quiz.WithShiftRange(quiz.DefaultMinShift, quiz.DefaultMaxShift),
		quiz.WithSeed(42),
	)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	first, second := gen.Generate(), gen.Generate()

	stdin := strings.ToLower(first.Answer) + "\n" + second.Answer + "?\n"
	out, err := runCmd(t, stdin, "practice", "--rounds", "2", "--seed", "42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, first.Prompt) || !strings.Contains(out, second.Prompt) {
		t.Fatalf("expected both prompts in output: %q", out)
	}
	if !strings.Contains(out, i18n.T("practice.correct")) {
		t.Fatalf("expected correct feedback: %q", out)
	}
	if !strings.Contains(out, i18n.T("practice.wrong", second.Answer)) {
		t.Fatalf("expected wrong feedback: %q", out)
	}
	if !strings.Contains(out, "Final score: 1/2 (50%)") {
		t.Fatalf("expected final score: %q", out)
	}
}

func TestPracticeStopsAtEOF(t *testing.T) {
	isolate(t)

	out, err := runCmd(t, "", "practice", "--rounds", "3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Final score: 0/0 (0%)") {
		t.Fatalf("expected empty final score: %q", out)
	}
}

func TestPracticeRejectsZeroRounds(t *testing.T) {
	isolate(t)

	if _, err := runCmd(t, "", "practice", "--rounds", "0"); err == nil {
		t.Fatalf("expected error for --rounds 0")
	}
}

func TestRootLaunchesTUIWithConfig(t *testing.T) {
	tmp := isolate(t)
	path := filepath.Join(tmp, "custom.yaml")
	yaml := "language: ms\ncipher:\n  shift: 5\n  mode: decrypt\nclipboard:\n  enabled: false\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var got tui.Options
	orig := runTUI
	defer func() { runTUI = orig }()
	runTUI = func(opts tui.Options) error {
		got = opts
		return nil
	}

	if _, err := runCmd(t, "", "--config", path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Shift != 5 || got.Direction != cipher.Decrypt {
		t.Fatalf("expected shift 5 decrypt, got %+v", got)
	}
	if got.Generator == nil {
		t.Fatalf("expected a generator")
	}
	if _, ok := got.Clipboard.(clipboard.Disabled); !ok {
		t.Fatalf("expected disabled clipboard, got %T", got.Clipboard)
	}
	if i18n.GetLang() != "ms" {
		t.Fatalf("expected ms language, got %s", i18n.GetLang())
	}
}

func TestFirstRunWritesDefaultConfig(t *testing.T) {
	tmp := isolate(t)

	if _, err := runCmd(t, "", "encrypt", "abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	path := filepath.Join(tmp, "caesar", "caesar.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected default config at %s: %v", path, err)
	}
	if !strings.Contains(string(data), "language: en") {
		t.Fatalf("unexpected default config: %s", data)
	}
}

func TestMissingConfigFlagFails(t *testing.T) {
	tmp := isolate(t)

	if _, err := runCmd(t, "", "--config", filepath.Join(tmp, "nope.yaml"), "encrypt", "abc"); err == nil {
		t.Fatalf("expected error for missing --config file")
	}
}

func TestInvalidConfigFails(t *testing.T) {
	tmp := isolate(t)
	path := filepath.Join(tmp, "bad.yaml")
	if err := os.WriteFile(path, []byte("cipher:\n  shift: 40\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := runCmd(t, "", "--config", path, "encrypt", "abc")
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	isolate(t)

	out, err := runCmd(t, "", "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "version: ") || !strings.Contains(out, "commit: ") {
		t.Fatalf("unexpected version output: %q", out)
	}
}

func TestRootSendsLogsToFileWhileTUIRuns(t *testing.T) {
	tmp := isolate(t)

	orig := runTUI
	defer func() { runTUI = orig }()
	var during any
	runTUI = func(tui.Options) error {
		during = logging.Output()
		logging.Errorf("logged while the TUI runs")
		return nil
	}

	if _, err := runCmd(t, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if during == os.Stderr {
		t.Fatalf("expected logs to leave stderr while the TUI runs")
	}
	if logging.Output() != os.Stderr {
		t.Fatalf("expected stderr to be restored, got %T", logging.Output())
	}
	data, err := os.ReadFile(filepath.Join(tmp, "cache", "caesar", "caesar.log"))
	if err != nil {
		t.Fatalf("expected TUI log file: %v", err)
	}
	if !strings.Contains(string(data), "logged while the TUI runs") {
		t.Fatalf("unexpected log file content: %q", data)
	}
}

func TestUnknownLanguageWarnsAndFallsBack(t *testing.T) {
	isolate(t)
	var buf bytes.Buffer
	logging.SetOutput(&buf)
	defer logging.SetOutput(os.Stderr)

	out, err := runCmd(t, "", "--language", "fr", "encrypt", "--shift", "3", "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "DEF\n" {
		t.Fatalf("expected DEF, got %q", out)
	}
	if i18n.GetLang() != "en" {
		t.Fatalf("expected fallback to en, got %q", i18n.GetLang())
	}
	if !strings.Contains(buf.String(), `language "fr" is not available`) {
		t.Fatalf("expected a fallback warning, got %q", buf.String())
	}
}

func TestPracticeAcceptsCRLFAnswers(t *testing.T) {
	isolate(t)

	gen, err := quiz.NewGenerator(quiz.WithSeed(9))
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	q := gen.Generate()

	out, err := runCmd(t, q.Answer+"\r\n", "practice", "--rounds", "1", "--seed", "9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Final score: 1/1 (100%)") {
		t.Fatalf("expected CRLF answer to be graded correct: %q", out)
	}
}
