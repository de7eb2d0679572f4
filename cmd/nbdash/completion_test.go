package main

// Notes:
// - GenerateCompletion: we test that shell scripts are generated with expected
//   content markers. We do not run the scripts in the target shells.

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// TestGenerateCompletion - Shell completion script generation
// ---------------------------------------------------------------------------

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		shell        Shell
		wantContains []string
	}{
		{
			shell: ShellBash,
			wantContains: []string{
				"_nbdash()",
				"complete -o filenames -F _nbdash nbdash",
				`--template|-t) COMPREPLY=($(compgen -W "default minimal grid"`,
				"--highlight-style",
				"'!*.ipynb'",
			},
		},
		{
			shell: ShellZsh,
			wantContains: []string{
				"#compdef nbdash",
				"_arguments",
				"_describe 'command' commands",
				"{-t,--template}'",
				":template:(default minimal grid)",
				`_files -g "*.(yaml|yml)"`,
				"compdef _nbdash nbdash",
			},
		},
		{
			shell: ShellFish,
			wantContains: []string{
				"complete -c nbdash -f",
				"__fish_use_subcommand",
				"-l template -s t -x -a 'default minimal grid'",
				"__fish_complete_suffix .ipynb",
				"-a 'bash zsh fish'",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.shell), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion(%s) error: %v", tt.shell, err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("%s script should contain %q", tt.shell, want)
				}
			}
		})
	}
}

func TestGenerateCompletion_Unsupported(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := GenerateCompletion(&buf, Shell("powershell"))
	if !errors.Is(err, ErrUnsupportedShell) {
		t.Fatalf("GenerateCompletion() error = %v, want ErrUnsupportedShell", err)
	}
	if !strings.Contains(err.Error(), "bash, zsh, fish") {
		t.Errorf("error %q should list the supported shells", err)
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written for an unsupported shell")
	}
}

func TestRunCompletion_NoArgsPrintsUsage(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv()
	if err := runCompletion(nil, env); err != nil {
		t.Fatalf("runCompletion() error: %v", err)
	}
	if !strings.Contains(stdout.String(), "Usage: nbdash completion <shell>") {
		t.Errorf("stdout = %q, want completion usage", stdout.String())
	}
}

// ---------------------------------------------------------------------------
// TestGetCommands - Command registry follows the real flag set
// ---------------------------------------------------------------------------

func TestGetCommands(t *testing.T) {
	t.Parallel()

	cmds := getCommands()

	var names []string
	for _, c := range cmds {
		names = append(names, c.Name)
		if !isCommand(c.Name) {
			t.Errorf("completion command %q is not dispatched by runMain", c.Name)
		}
	}
	if diff := cmp.Diff([]string{"convert", "version", "help", "completion"}, names); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}

	types := make(map[string]flagType)
	for _, f := range cmds[0].Flags {
		types[f.Long] = f.Type
	}
	wantTypes := map[string]flagType{
		"template":        flagEnum,
		"config":          flagFile,
		"output":          flagDir,
		"asset-path":      flagDir,
		"quiet":           flagBool,
		"title":           flagString,
		"highlight-style": flagString,
	}
	for name, want := range wantTypes {
		got, ok := types[name]
		if !ok {
			t.Errorf("flag --%s missing from completion", name)
			continue
		}
		if got != want {
			t.Errorf("flag --%s type = %d, want %d", name, got, want)
		}
	}
}
