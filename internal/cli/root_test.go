package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

// runCLI executes a fresh command tree and captures its output.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestRootCommand_Help(t *testing.T) {
	out, _, err := runCLI(t, "--help")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{"tfscaffold", "Scaffolding:", "Undo & History:", "module", "revert"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected help to contain %q", want)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	SetVersion("1.2.3")
	defer SetVersion("dev")

	out, _, err := runCLI(t, "--version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out) != "1.2.3" {
		t.Errorf("expected version output 1.2.3, got %q", out)
	}

	out, _, err = runCLI(t, "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out) != "1.2.3" {
		t.Errorf("expected version command output 1.2.3, got %q", out)
	}
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	_, _, err := runCLI(t, "invalid-command")
	if err == nil {
		t.Error("expected error for invalid command")
	}
}

func TestSetVersion(t *testing.T) {
	defer SetVersion("dev")

	tests := []struct {
		name    string
		version string
		want    string
	}{
		{"normal version", "1.2.3", "1.2.3"},
		{"empty version", "", "1.2.3"}, // Should not change if empty
		{"dev version", "dev", "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetVersion(tt.version)
			if got := newRootCmd().Version; got != tt.want {
				t.Errorf("SetVersion(%q) = %q, want %q", tt.version, got, tt.want)
			}
		})
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	subcommands := []string{"module", "live", "fill", "revert", "history", "version", "completion"}

	root := newRootCmd()
	for _, name := range subcommands {
		t.Run(name, func(t *testing.T) {
			cmd, _, err := root.Find([]string{name})
			if err != nil {
				t.Fatalf("Find(%q) error = %v", name, err)
			}
			if cmd.Name() != name {
				t.Errorf("Find(%q) = %q", name, cmd.Name())
			}
		})
	}
}

func TestCompletion_Bash(t *testing.T) {
	out, _, err := runCLI(t, "completion", "bash")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "tfscaffold") {
		t.Error("expected completion script to mention tfscaffold")
	}
}
