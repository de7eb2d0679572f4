package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunMain - Command dispatch and exit codes
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	valid := writeTestFile(t, filepath.Join(dir, "valid.ipynb"), sampleNotebook)
	broken := writeTestFile(t, filepath.Join(dir, "broken.ipynb"), "{not json")
	empty := writeTestFile(t, filepath.Join(dir, "empty.ipynb"), "")
	badTemplateConfig := writeTestFile(t, filepath.Join(dir, "bad-template.yaml"), "template: bogus\n")

	tests := []struct {
		name         string
		args         []string
		wantCode     int
		wantInStdout []string
		wantInStderr []string
	}{
		{
			name:         "no args shows usage",
			args:         []string{"nbdash"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"Usage: nbdash"},
		},
		{
			name:         "version",
			args:         []string{"nbdash", "version"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"nbdash " + Version},
		},
		{
			name:         "help",
			args:         []string{"nbdash", "help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: nbdash", "Commands:"},
		},
		{
			name:         "help convert",
			args:         []string{"nbdash", "help", "convert"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"--template", "default, minimal, grid"},
		},
		{
			name:         "help for unknown command",
			args:         []string{"nbdash", "help", "nope"},
			wantCode:     ExitSuccess,
			wantInStderr: []string{"Unknown command: nope"},
		},
		{
			name:         "convert --help",
			args:         []string{"nbdash", "--help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: nbdash [convert]"},
		},
		{
			name:         "unknown flag",
			args:         []string{"nbdash", "--pages", "3", valid},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unknown flag: --pages"},
		},
		{
			name:         "unknown template names it and the valid set",
			args:         []string{"nbdash", "-t", "bogus", valid},
			wantCode:     ExitUsage,
			wantInStderr: []string{"bogus", "default, minimal, grid"},
		},
		{
			name:         "unknown template via convert command",
			args:         []string{"nbdash", "convert", "--template=bogus", valid},
			wantCode:     ExitUsage,
			wantInStderr: []string{`"bogus"`, "hint: valid templates: default, minimal, grid"},
		},
		{
			name:         "missing input",
			args:         []string{"nbdash", filepath.Join(dir, "absent.ipynb")},
			wantCode:     ExitIO,
			wantInStderr: []string{"input not found", "hint:"},
		},
		{
			name:         "no input",
			args:         []string{"nbdash", "-q"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"no input specified"},
		},
		{
			name:         "invalid JSON",
			args:         []string{"nbdash", broken},
			wantCode:     ExitFormat,
			wantInStderr: []string{"invalid notebook format", "\"cells\""},
		},
		{
			name:     "empty file",
			args:     []string{"nbdash", empty},
			wantCode: ExitFormat,
		},
		{
			name:         "unknown highlight style",
			args:         []string{"nbdash", "--highlight-style", "neon", valid},
			wantCode:     ExitUsage,
			wantInStderr: []string{"neon", "chroma style"},
		},
		{
			name:         "bad date syntax",
			args:         []string{"nbdash", "--date", "automatic", valid},
			wantCode:     ExitUsage,
			wantInStderr: []string{"automatic"},
		},
		{
			name:         "missing config",
			args:         []string{"nbdash", "-c", filepath.Join(dir, "absent.yaml"), valid},
			wantCode:     ExitUsage,
			wantInStderr: []string{"config file not found"},
		},
		{
			name:         "unknown template in config file",
			args:         []string{"nbdash", "-c", badTemplateConfig, valid},
			wantCode:     ExitUsage,
			wantInStderr: []string{`"bogus"`, "default, minimal, grid"},
		},
		{
			name:         "completion bash",
			args:         []string{"nbdash", "completion", "bash"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"complete -o filenames -F _nbdash nbdash"},
		},
		{
			name:         "completion unsupported shell",
			args:         []string{"nbdash", "completion", "tcsh"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unsupported shell"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv()
			code := runMain(tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain(%v) = %d, want %d\nstderr: %s", tt.args, code, tt.wantCode, stderr.String())
			}
			for _, want := range tt.wantInStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout should contain %q, got %q", want, stdout.String())
				}
			}
			for _, want := range tt.wantInStderr {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("stderr should contain %q, got %q", want, stderr.String())
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_Convert - End-to-end conversions through the CLI
// ---------------------------------------------------------------------------

func TestRunMain_Convert(t *testing.T) {
	t.Parallel()

	t.Run("default output next to the notebook", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeTestFile(t, filepath.Join(dir, "sales.ipynb"), sampleNotebook)

		env, stdout, stderr := testEnv()
		if code := runMain([]string{"nbdash", input}, env); code != ExitSuccess {
			t.Fatalf("runMain() = %d, stderr: %s", code, stderr.String())
		}

		out := filepath.Join(dir, "sales.html")
		html := readTestFile(t, out)
		for _, want := range []string{"<title>Sales Review</title>", "<strong>Q3</strong>", `class="section"`} {
			if !strings.Contains(html, want) {
				t.Errorf("output should contain %q", want)
			}
		}
		if !strings.Contains(stdout.String(), "Created "+out) {
			t.Errorf("stdout = %q, want Created line", stdout.String())
		}
	})

	t.Run("grid template with title and date", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeTestFile(t, filepath.Join(dir, "sales.ipynb"), sampleNotebook)
		out := filepath.Join(dir, "reports", "q3.html")

		env, _, stderr := testEnv()
		args := []string{"nbdash", "-t", "grid", "--title", "Q3 Board", "--date", "auto:iso", "-o", out, input}
		if code := runMain(args, env); code != ExitSuccess {
			t.Fatalf("runMain() = %d, stderr: %s", code, stderr.String())
		}

		html := readTestFile(t, out)
		for _, want := range []string{"<title>Q3 Board</title>", "grid-container", "Generated on 2026-03-14"} {
			if !strings.Contains(html, want) {
				t.Errorf("output should contain %q", want)
			}
		}
	})

	t.Run("config file with flag override", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeTestFile(t, filepath.Join(dir, "sales.ipynb"), sampleNotebook)
		css := writeTestFile(t, filepath.Join(dir, "extra.css"), ".from-config { color: red; }")
		cfg := writeTestFile(t, filepath.Join(dir, "report.yaml"),
			"template: grid\ncss: "+css+"\noutput:\n  defaultDir: "+filepath.Join(dir, "out")+"\n")

		env, _, stderr := testEnv()
		args := []string{"nbdash", "-c", cfg, "-t", "minimal", input}
		if code := runMain(args, env); code != ExitSuccess {
			t.Fatalf("runMain() = %d, stderr: %s", code, stderr.String())
		}

		html := readTestFile(t, filepath.Join(dir, "out", "sales.html"))
		if strings.Contains(html, "grid-container") {
			t.Error("--template should override the config template")
		}
		if !strings.Contains(html, ".from-config { color: red; }") {
			t.Error("output should contain the config's extra CSS")
		}
	})

	t.Run("quiet prints nothing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeTestFile(t, filepath.Join(dir, "sales.ipynb"), sampleNotebook)

		env, stdout, stderr := testEnv()
		if code := runMain([]string{"nbdash", "-q", input}, env); code != ExitSuccess {
			t.Fatalf("runMain() = %d, stderr: %s", code, stderr.String())
		}
		if stdout.Len() != 0 || stderr.Len() != 0 {
			t.Errorf("quiet run should print nothing, got stdout=%q stderr=%q", stdout.String(), stderr.String())
		}
	})

	t.Run("verbose logs stats", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeTestFile(t, filepath.Join(dir, "sales.ipynb"), sampleNotebook)

		env, _, stderr := testEnv()
		if code := runMain([]string{"nbdash", "-v", input}, env); code != ExitSuccess {
			t.Fatalf("runMain() = %d, stderr: %s", code, stderr.String())
		}
		for _, want := range []string{"debug", "report written", "text_blocks"} {
			if !strings.Contains(stderr.String(), want) {
				t.Errorf("verbose stderr should contain %q, got %q", want, stderr.String())
			}
		}
	})

	t.Run("failed conversion leaves no output", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := writeTestFile(t, filepath.Join(dir, "broken.ipynb"), `{"cells": 3}`)

		env, _, _ := testEnv()
		if code := runMain([]string{"nbdash", input}, env); code != ExitFormat {
			t.Fatalf("runMain() = %d, want %d", code, ExitFormat)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 {
			t.Errorf("directory should only hold the input, got %d entries", len(entries))
		}
	})

	t.Run("directory input", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeTestFile(t, filepath.Join(dir, "a.ipynb"), sampleNotebook)
		writeTestFile(t, filepath.Join(dir, "nested", "b.ipynb"), sampleNotebook)
		writeTestFile(t, filepath.Join(dir, ".ipynb_checkpoints", "a-checkpoint.ipynb"), sampleNotebook)
		out := filepath.Join(t.TempDir(), "site")

		env, stdout, stderr := testEnv()
		if code := runMain([]string{"nbdash", "-o", out, dir}, env); code != ExitSuccess {
			t.Fatalf("runMain() = %d, stderr: %s", code, stderr.String())
		}

		readTestFile(t, filepath.Join(out, "a.html"))
		readTestFile(t, filepath.Join(out, "nested", "b.html"))
		if got := strings.Count(stdout.String(), "Created "); got != 2 {
			t.Errorf("Created lines = %d, want 2", got)
		}
	})
}

// ---------------------------------------------------------------------------
// TestIsCommand / TestHasVerboseFlag
// ---------------------------------------------------------------------------

func TestIsCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"convert", true},
		{"version", true},
		{"help", true},
		{"completion", true},
		{"report.ipynb", false},
		{"", false},
		{"Convert", false}, // case sensitive
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := isCommand(tt.input); got != tt.want {
				t.Errorf("isCommand(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHasVerboseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"short", []string{"-v", "a.ipynb"}, true},
		{"long", []string{"a.ipynb", "--verbose"}, true},
		{"absent", []string{"-q", "a.ipynb"}, false},
		{"after terminator", []string{"--", "-v"}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := hasVerboseFlag(tt.args); got != tt.want {
				t.Errorf("hasVerboseFlag(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}
