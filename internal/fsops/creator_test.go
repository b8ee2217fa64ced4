package fsops

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCreator_EnsureDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	creator := NewCreator(NewRealFS())

	t.Run("created then idempotent", func(t *testing.T) {
		path := filepath.Join(tmpDir, "modules")

		first, err := creator.EnsureDirectory(path)
		if err != nil {
			t.Fatalf("EnsureDirectory failed: %v", err)
		}
		if !first.Created {
			t.Error("first call should report Created")
		}

		second, err := creator.EnsureDirectory(path)
		if err != nil {
			t.Fatalf("EnsureDirectory failed: %v", err)
		}
		if second.Created {
			t.Error("second call should report not Created")
		}
		if len(second.Ancestors) != 0 {
			t.Errorf("existing directory reported ancestors %v", second.Ancestors)
		}
	})

	t.Run("reports missing ancestors outermost first", func(t *testing.T) {
		path := filepath.Join(tmpDir, "dev", "eu", "app")

		result, err := creator.EnsureDirectory(path)
		if err != nil {
			t.Fatalf("EnsureDirectory failed: %v", err)
		}

		want := []string{filepath.Join(tmpDir, "dev"), filepath.Join(tmpDir, "dev", "eu")}
		if !reflect.DeepEqual(result.Ancestors, want) {
			t.Errorf("Ancestors = %v, want %v", result.Ancestors, want)
		}

		if info, err := os.Stat(path); err != nil || !info.IsDir() {
			t.Errorf("directory was not created: %v", err)
		}
	})

	t.Run("file in the way", func(t *testing.T) {
		path := filepath.Join(tmpDir, "blocked")
		if err := os.WriteFile(path, nil, 0644); err != nil {
			t.Fatal(err)
		}

		_, err := creator.EnsureDirectory(path)
		if !errors.Is(err, ErrNotDirectory) {
			t.Errorf("error = %v, want ErrNotDirectory", err)
		}
	})
}

func TestCreator_EnsureFile(t *testing.T) {
	tmpDir := t.TempDir()
	creator := NewCreator(NewRealFS())

	t.Run("created then idempotent", func(t *testing.T) {
		path := filepath.Join(tmpDir, "main.tf")

		first, err := creator.EnsureFile(path)
		if err != nil {
			t.Fatalf("EnsureFile failed: %v", err)
		}
		if !first.Created {
			t.Error("first call should report Created")
		}

		second, err := creator.EnsureFile(path)
		if err != nil {
			t.Fatalf("EnsureFile failed: %v", err)
		}
		if second.Created {
			t.Error("second call should report not Created")
		}
	})

	t.Run("existing content untouched", func(t *testing.T) {
		path := filepath.Join(tmpDir, "variables.tf")
		if err := os.WriteFile(path, []byte(`variable "x" {}`), 0644); err != nil {
			t.Fatal(err)
		}

		result, err := creator.EnsureFile(path)
		if err != nil {
			t.Fatalf("EnsureFile failed: %v", err)
		}
		if result.Created {
			t.Error("existing file reported as created")
		}

		content, _ := os.ReadFile(path)
		if string(content) != `variable "x" {}` {
			t.Errorf("content changed to %q", content)
		}
	})

	t.Run("missing parent is an error", func(t *testing.T) {
		_, err := creator.EnsureFile(filepath.Join(tmpDir, "nope", "main.tf"))
		if err == nil {
			t.Error("expected error when parent directory is missing")
		}
	})
}
