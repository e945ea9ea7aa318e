package main

// Notes:
// - runMain is exercised end to end in a temp working directory; tests use
//   t.Chdir and t.Setenv, which prevent t.Parallel().
// - Output JSON byte layout is covered by the library tests; here we only
//   check that files land where expected and that exit codes are right.

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	quizdeck "github.com/alnah/go-quizdeck"
)

const emptyDeckJSON = "{\n  \"title\": \"My Study Deck\",\n  \"questions\": []\n}"

// runInTempDir runs the CLI with args inside a fresh working directory
// populated with files. It returns the exit code, stdout and stderr.
func runInTempDir(t *testing.T, files map[string]string, args ...string) (int, string, string) {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	t.Chdir(dir)
	t.Setenv("QUIZDECK_CONFIG", "")
	t.Setenv("QUIZDECK_OUTPUT", "")

	var stdout, stderr bytes.Buffer
	env := &Environment{Stdout: &stdout, Stderr: &stderr}
	code := runMain(append([]string{"quizdeck"}, args...), env)
	return code, stdout.String(), stderr.String()
}

func readOutput(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("failed to read %s: %v", name, err)
	}
	return string(data)
}

// ---------------------------------------------------------------------------
// TestRunMain_Dispatch - Command routing
// ---------------------------------------------------------------------------

func TestRunMain_NoCommand(t *testing.T) {
	code, _, stderr := runInTempDir(t, nil)

	if code != ExitGeneral {
		t.Errorf("exit code = %d, want %d", code, ExitGeneral)
	}
	if !strings.Contains(stderr, "Usage: quizdeck") {
		t.Errorf("stderr should contain usage, got %q", stderr)
	}
}

func TestRunMain_UnknownCommand(t *testing.T) {
	code, _, stderr := runInTempDir(t, nil, "convert")

	if code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr, "unknown command: convert") {
		t.Errorf("stderr = %q, want unknown command", stderr)
	}
	if !strings.Contains(stderr, "hint: available: symbol, lettered, markdown") {
		t.Errorf("stderr = %q, want available commands hint", stderr)
	}
}

func TestRunMain_Version(t *testing.T) {
	code, stdout, _ := runInTempDir(t, nil, "version")

	if code != ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, ExitSuccess)
	}
	if stdout != "quizdeck dev\n" {
		t.Errorf("stdout = %q, want %q", stdout, "quizdeck dev\n")
	}
}

func TestRunMain_Help(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
	}{
		{"no topic", []string{"help"}, ExitSuccess, "Commands:"},
		{"converter topic", []string{"help", "lettered"}, ExitSuccess, "Usage: quizdeck lettered <input>"},
		{"check topic", []string{"help", "check"}, ExitSuccess, "Usage: quizdeck check"},
		{"converter -h flag", []string{"symbol", "-h"}, ExitSuccess, ""},
		{"unknown topic", []string{"help", "nope"}, ExitUsage, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, _ := runInTempDir(t, nil, tt.args...)

			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(stdout, tt.wantOut) {
				t.Errorf("stdout = %q, want it to contain %q", stdout, tt.wantOut)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_Convert - Converter commands
// ---------------------------------------------------------------------------

func TestRunMain_MissingInputArgument(t *testing.T) {
	for _, cmd := range []string{"symbol", "lettered", "markdown"} {
		t.Run(cmd, func(t *testing.T) {
			code, _, stderr := runInTempDir(t, nil, cmd)

			if code != ExitGeneral {
				t.Errorf("exit code = %d, want %d", code, ExitGeneral)
			}
			if !strings.Contains(stderr, "Usage: quizdeck "+cmd) {
				t.Errorf("stderr should contain usage, got %q", stderr)
			}
		})
	}
}

func TestRunMain_MissingInputFile(t *testing.T) {
	tests := []struct {
		cmd  string
		want string
	}{
		{"lettered", "file not found: missing.txt"},
		{"markdown", "file not found: missing.txt"},
		{"symbol", "failed to read input"},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			code, _, stderr := runInTempDir(t, nil, tt.cmd, "missing.txt")

			if code != ExitGeneral {
				t.Errorf("exit code = %d, want %d", code, ExitGeneral)
			}
			if !strings.Contains(stderr, tt.want) {
				t.Errorf("stderr = %q, want it to contain %q", stderr, tt.want)
			}
			if _, err := os.Stat("questions.json"); err == nil {
				t.Error("questions.json should not be written")
			}
		})
	}
}

func TestRunMain_EmptyInput(t *testing.T) {
	for _, cmd := range []string{"symbol", "lettered", "markdown"} {
		t.Run(cmd, func(t *testing.T) {
			code, stdout, stderr := runInTempDir(t, map[string]string{"in.txt": ""}, cmd, "in.txt")

			if code != ExitSuccess {
				t.Fatalf("exit code = %d, want %d (stderr: %s)", code, ExitSuccess, stderr)
			}
			if stdout != "Wrote questions.json with 0 questions.\n" {
				t.Errorf("stdout = %q", stdout)
			}
			if got := readOutput(t, "questions.json"); got != emptyDeckJSON {
				t.Errorf("questions.json = %q, want %q", got, emptyDeckJSON)
			}
		})
	}
}

func TestRunMain_Lettered(t *testing.T) {
	input := "TITLE: Networks\nQ: Pick one\nA) X\nB) Y\nANS: B\nEXPL: because\n"
	code, stdout, stderr := runInTempDir(t, map[string]string{"bank.txt": input}, "lettered", "bank.txt")

	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d (stderr: %s)", code, ExitSuccess, stderr)
	}
	if stdout != "Wrote questions.json with 1 questions.\n" {
		t.Errorf("stdout = %q", stdout)
	}

	deck, err := quizdeck.Decode([]byte(readOutput(t, "questions.json")))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if deck.Title != "Networks" {
		t.Errorf("Title = %q, want Networks", deck.Title)
	}
	if len(deck.Questions) != 1 || deck.Questions[0].Explanation != "because" {
		t.Errorf("unexpected questions: %+v", deck.Questions)
	}
}

func TestRunMain_LetteredInvalidUTF8(t *testing.T) {
	files := map[string]string{"bank.txt": "Q: Pick\xff one\nA) X\n"}
	code, _, stderr := runInTempDir(t, files, "lettered", "bank.txt")

	if code != ExitGeneral {
		t.Errorf("exit code = %d, want %d", code, ExitGeneral)
	}
	if !strings.Contains(stderr, "not valid UTF-8") {
		t.Errorf("stderr = %q, want encoding error", stderr)
	}
}

func TestRunMain_SymbolToleratesInvalidUTF8(t *testing.T) {
	files := map[string]string{"bank.txt": "Which layer?\xff\nff \u00a9 Data Link\n\u00a9 Network\n"}
	code, stdout, stderr := runInTempDir(t, files, "symbol", "bank.txt")

	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d (stderr: %s)", code, ExitSuccess, stderr)
	}
	if stdout != "Wrote questions.json with 1 questions.\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestRunMain_OutputFlagAndQuiet(t *testing.T) {
	files := map[string]string{"bank.txt": "Q: Pick one\nA) X\nB) Y\nANS: A\n"}
	code, stdout, _ := runInTempDir(t, files, "lettered", "bank.txt", "-o", "deck.json", "-q")

	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}
	if stdout != "" {
		t.Errorf("quiet run should print nothing, got %q", stdout)
	}
	if _, err := os.Stat("deck.json"); err != nil {
		t.Errorf("deck.json not written: %v", err)
	}
	if _, err := os.Stat("questions.json"); err == nil {
		t.Error("questions.json should not be written")
	}
}

func TestRunMain_OutputFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile("bank.txt", []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("QUIZDECK_CONFIG", "")
	t.Setenv("QUIZDECK_OUTPUT", "env.json")

	var stdout, stderr bytes.Buffer
	code := runMain([]string{"quizdeck", "markdown", "bank.txt"}, &Environment{Stdout: &stdout, Stderr: &stderr})

	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d (stderr: %s)", code, ExitSuccess, stderr.String())
	}
	if got := readOutput(t, "env.json"); got != emptyDeckJSON {
		t.Errorf("env.json = %q", got)
	}
}

func TestRunMain_Stdout(t *testing.T) {
	code, stdout, stderr := runInTempDir(t, map[string]string{"in.txt": ""}, "symbol", "in.txt", "--stdout")

	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}
	if stdout != emptyDeckJSON+"\n" {
		t.Errorf("stdout = %q, want %q", stdout, emptyDeckJSON+"\n")
	}
	if !strings.Contains(stderr, "Wrote 0 questions to stdout.") {
		t.Errorf("stderr = %q", stderr)
	}
	if _, err := os.Stat("questions.json"); err == nil {
		t.Error("questions.json should not be written with --stdout")
	}
}

func TestRunMain_InvalidFlag(t *testing.T) {
	code, _, _ := runInTempDir(t, map[string]string{"in.txt": ""}, "symbol", "in.txt", "--bogus")

	if code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
}

func TestRunMain_VerboseLogsDroppedQuestions(t *testing.T) {
	files := map[string]string{"bank.txt": "Orphan question\n\u00a9 only one\n"}
	code, stdout, stderr := runInTempDir(t, files, "symbol", "bank.txt", "-v")

	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}
	if stdout != "Wrote questions.json with 0 questions.\n" {
		t.Errorf("stdout = %q", stdout)
	}
	if !strings.Contains(stderr, "question dropped") {
		t.Errorf("stderr = %q, want drop diagnostics", stderr)
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_Config - Config file handling
// ---------------------------------------------------------------------------

func TestRunMain_ConfigChangesSymbolMarker(t *testing.T) {
	files := map[string]string{
		"quiz.yaml": "symbol:\n  marker: \"*\"\n",
		"bank.txt":  "Which layer?\nff * Data Link\n* Network\n",
	}
	code, stdout, stderr := runInTempDir(t, files, "symbol", "bank.txt", "--config", "quiz")

	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d (stderr: %s)", code, ExitSuccess, stderr)
	}
	if stdout != "Wrote questions.json with 1 questions.\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestRunMain_ConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  string
	}{
		{"not found", map[string]string{"in.txt": ""}, "config file not found"},
		{"unknown key", map[string]string{"in.txt": "", "quiz.yaml": "colour: red\n"}, "failed to parse config"},
		{"multi-rune marker", map[string]string{"in.txt": "", "quiz.yaml": "symbol:\n  marker: \"ab\"\n"}, "single character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runInTempDir(t, tt.files, "symbol", "in.txt", "-c", "quiz")

			if code != ExitUsage {
				t.Errorf("exit code = %d, want %d", code, ExitUsage)
			}
			if !strings.Contains(stderr, tt.want) {
				t.Errorf("stderr = %q, want it to contain %q", stderr, tt.want)
			}
		})
	}
}

func TestRunMain_ConfigCommand(t *testing.T) {
	code, stdout, _ := runInTempDir(t, nil, "config")

	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}
	for _, want := range []string{"path: questions.json", "correctToken: ff", "sectionPrefix: knowledge assessment"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout = %q, want it to contain %q", stdout, want)
		}
	}
}

func TestRunMain_ConfigCommandWithFile(t *testing.T) {
	files := map[string]string{"quiz.yaml": "symbol:\n  correctToken: ok\n"}
	code, stdout, stderr := runInTempDir(t, files, "config", "-c", "quiz")

	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d (stderr: %s)", code, ExitSuccess, stderr)
	}
	if !strings.Contains(stdout, "correctToken: ok") {
		t.Errorf("stdout = %q, want the configured token", stdout)
	}
}

func TestRunMain_ConfigCommandRejectsConversionFlags(t *testing.T) {
	for _, flagArg := range []string{"--quiet", "-v", "--output=x.json"} {
		t.Run(flagArg, func(t *testing.T) {
			code, stdout, _ := runInTempDir(t, nil, "config", flagArg)

			if code != ExitUsage {
				t.Errorf("exit code = %d, want %d", code, ExitUsage)
			}
			if stdout != "" {
				t.Errorf("stdout = %q, want empty", stdout)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_Check - Structural report
// ---------------------------------------------------------------------------

func TestRunMain_CheckCleanDeck(t *testing.T) {
	files := map[string]string{"bank.txt": "Q: Pick one\nA) X\nB) Y\nANS: B\n"}
	dir := t.TempDir()
	t.Chdir(dir)
	for name, content := range files {
		if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	t.Setenv("QUIZDECK_CONFIG", "")
	t.Setenv("QUIZDECK_OUTPUT", "")

	var stdout, stderr bytes.Buffer
	env := &Environment{Stdout: &stdout, Stderr: &stderr}
	if code := runMain([]string{"quizdeck", "lettered", "bank.txt", "-q"}, env); code != ExitSuccess {
		t.Fatalf("lettered exit code = %d (stderr: %s)", code, stderr.String())
	}

	stdout.Reset()
	if code := runMain([]string{"quizdeck", "check"}, env); code != ExitSuccess {
		t.Fatalf("check exit code = %d (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "questions.json: 1 questions, no issues.") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunMain_CheckReportsLenientDeck(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile("bank.txt", []byte("Q: Pick one\nA) X\nB) Y\nANS: A,C\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("QUIZDECK_CONFIG", "")
	t.Setenv("QUIZDECK_OUTPUT", "")

	var stdout, stderr bytes.Buffer
	env := &Environment{Stdout: &stdout, Stderr: &stderr}
	if code := runMain([]string{"quizdeck", "lettered", "bank.txt"}, env); code != ExitSuccess {
		t.Fatalf("lettered exit code = %d (stderr: %s)", code, stderr.String())
	}

	stdout.Reset()
	code := runMain([]string{"quizdeck", "check", "questions.json"}, env)

	if code != ExitGeneral {
		t.Errorf("check exit code = %d, want %d", code, ExitGeneral)
	}
	if !strings.Contains(stdout.String(), `q1: correct answer "C" is not an option`) {
		t.Errorf("stdout = %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "hint:") {
		t.Errorf("stderr = %q, want hint", stderr.String())
	}
}

func TestRunMain_CheckMissingDeck(t *testing.T) {
	code, _, stderr := runInTempDir(t, nil, "check", "nope.json")

	if code != ExitGeneral {
		t.Errorf("exit code = %d, want %d", code, ExitGeneral)
	}
	if !strings.Contains(stderr, "file not found: nope.json") {
		t.Errorf("stderr = %q", stderr)
	}
}
