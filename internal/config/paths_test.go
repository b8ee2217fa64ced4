package config

import (
	"path/filepath"
	"testing"

	homedir "github.com/mitchellh/go-homedir"
)

func TestDefaultPaths(t *testing.T) {
	t.Run("state lives under the working directory", func(t *testing.T) {
		t.Setenv(StateDirEnv, "")

		cwd := t.TempDir()
		paths, err := DefaultPaths(cwd)
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}

		if paths.StateDir != filepath.Join(cwd, ".tfscaffold") {
			t.Errorf("StateDir incorrect: got %s", paths.StateDir)
		}
		if paths.TrackingFile != filepath.Join(paths.StateDir, "tracking.json") {
			t.Errorf("TrackingFile incorrect: got %s", paths.TrackingFile)
		}
		if paths.HistoryFile != filepath.Join(paths.StateDir, "history.json") {
			t.Errorf("HistoryFile incorrect: got %s", paths.HistoryFile)
		}
		if paths.SettingsFile != filepath.Join(cwd, ".tfscaffold.yaml") {
			t.Errorf("SettingsFile incorrect: got %s", paths.SettingsFile)
		}
	})

	t.Run("respects TFSCAFFOLD_STATE_DIR", func(t *testing.T) {
		customDir := filepath.Join(t.TempDir(), "state")
		t.Setenv(StateDirEnv, customDir)

		paths, err := DefaultPaths("/work")
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}

		if paths.StateDir != customDir {
			t.Errorf("Expected state dir %s, got %s", customDir, paths.StateDir)
		}
		if paths.TrackingFile != filepath.Join(customDir, "tracking.json") {
			t.Errorf("TrackingFile should be under custom dir, got: %s", paths.TrackingFile)
		}
		if paths.SettingsFile != filepath.Join("/work", ".tfscaffold.yaml") {
			t.Errorf("SettingsFile should stay in cwd, got: %s", paths.SettingsFile)
		}
	})

	t.Run("expands home in TFSCAFFOLD_STATE_DIR", func(t *testing.T) {
		home, err := homedir.Dir()
		if err != nil {
			t.Skipf("no home directory: %v", err)
		}
		t.Setenv(StateDirEnv, "~/scaffold-state")

		paths, err := DefaultPaths("/work")
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}

		if paths.StateDir != filepath.Join(home, "scaffold-state") {
			t.Errorf("StateDir = %s, want it under %s", paths.StateDir, home)
		}
	})
}

func TestPaths_WithSettingsFile(t *testing.T) {
	base := Paths{SettingsFile: "/work/.tfscaffold.yaml"}

	same, err := base.WithSettingsFile("")
	if err != nil {
		t.Fatal(err)
	}
	if same.SettingsFile != base.SettingsFile {
		t.Errorf("empty override changed SettingsFile to %s", same.SettingsFile)
	}

	custom, err := base.WithSettingsFile("/etc/tfscaffold.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if custom.SettingsFile != "/etc/tfscaffold.yaml" {
		t.Errorf("SettingsFile = %s", custom.SettingsFile)
	}
	if base.SettingsFile != "/work/.tfscaffold.yaml" {
		t.Error("WithSettingsFile must not modify the receiver")
	}
}
