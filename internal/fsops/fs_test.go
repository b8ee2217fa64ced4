package fsops

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateRelPath(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantError bool
	}{
		{name: "valid relative path", path: "modules/net/README.md"},
		{name: "valid single segment", path: "dev"},
		{name: "dotted directory", path: ".terraform/modules"},
		{name: "name starting with dots", path: "..cache/file"},
		{name: "empty path", path: "", wantError: true},
		{name: "current directory", path: ".", wantError: true},
		{name: "absolute path", path: "/etc/hosts", wantError: true},
		{name: "parent traversal", path: "../outside", wantError: true},
		{name: "traversal in middle", path: "dev/../../outside", wantError: true},
		{name: "bare parent", path: "..", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRelPath(tt.path)
			if (err != nil) != tt.wantError {
				t.Errorf("ValidateRelPath(%q) error = %v, wantError %v", tt.path, err, tt.wantError)
			}
		})
	}
}

func TestRealFS_ValidateIdentifier(t *testing.T) {
	fs := &RealFS{}

	tests := []struct {
		name      string
		id        string
		wantError bool
	}{
		{name: "simple module name", id: "net"},
		{name: "hyphens and underscores", id: "vpc_peering-v2"},
		{name: "environment name", id: "prod"},
		{name: "empty identifier", id: "", wantError: true},
		{name: "whitespace only", id: "  ", wantError: true},
		{name: "current directory", id: ".", wantError: true},
		{name: "parent directory", id: "..", wantError: true},
		{name: "forward slash", id: "net/sub", wantError: true},
		{name: "backslash", id: `net\sub`, wantError: true},
		{name: "absolute path", id: "/etc", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fs.ValidateIdentifier(tt.id)
			if (err != nil) != tt.wantError {
				t.Errorf("ValidateIdentifier(%q) error = %v, wantError %v", tt.id, err, tt.wantError)
			}
		})
	}
}

func TestRealFS_Exists(t *testing.T) {
	fs := &RealFS{}
	tmpDir := t.TempDir()

	t.Run("existing file", func(t *testing.T) {
		testFile := filepath.Join(tmpDir, "exists.tf")
		if err := os.WriteFile(testFile, nil, 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		exists, err := fs.Exists(testFile)
		if err != nil {
			t.Errorf("Exists returned error: %v", err)
		}
		if !exists {
			t.Error("Exists should return true for existing file")
		}
	})

	t.Run("non-existing file", func(t *testing.T) {
		exists, err := fs.Exists(filepath.Join(tmpDir, "missing.tf"))
		if err != nil {
			t.Errorf("Exists returned error: %v", err)
		}
		if exists {
			t.Error("Exists should return false for non-existing file")
		}
	})

	t.Run("dangling symlink", func(t *testing.T) {
		link := filepath.Join(tmpDir, "dangling")
		if err := os.Symlink(filepath.Join(tmpDir, "nowhere"), link); err != nil {
			t.Skipf("symlinks not supported: %v", err)
		}

		exists, err := fs.Exists(link)
		if err != nil {
			t.Errorf("Exists returned error: %v", err)
		}
		if !exists {
			t.Error("Exists should report the link itself")
		}
	})
}

func TestRealFS_CreateExclusive(t *testing.T) {
	fs := &RealFS{}
	tmpDir := t.TempDir()

	path := filepath.Join(tmpDir, "main.tf")
	if err := fs.CreateExclusive(path, 0644); err != nil {
		t.Fatalf("CreateExclusive failed: %v", err)
	}

	if err := os.WriteFile(path, []byte("resource {}"), 0644); err != nil {
		t.Fatal(err)
	}

	err := fs.CreateExclusive(path, 0644)
	if !errors.Is(err, os.ErrExist) {
		t.Fatalf("second CreateExclusive error = %v, want ErrExist", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "resource {}" {
		t.Errorf("existing content was modified: %q", content)
	}
}

func TestRealFS_AtomicWrite(t *testing.T) {
	fs := &RealFS{}
	tmpDir := t.TempDir()

	t.Run("write creates parent directory", func(t *testing.T) {
		testFile := filepath.Join(tmpDir, ".tfscaffold", "tracking.json")
		content := []byte(`{"created":[]}`)

		if err := fs.AtomicWrite(testFile, content, 0644); err != nil {
			t.Fatalf("AtomicWrite failed: %v", err)
		}

		readContent, err := os.ReadFile(testFile)
		if err != nil {
			t.Fatalf("failed to read written file: %v", err)
		}
		if string(readContent) != string(content) {
			t.Errorf("File content mismatch: got %q, want %q", readContent, content)
		}
	})

	t.Run("overwrite existing file", func(t *testing.T) {
		testFile := filepath.Join(tmpDir, "overwrite.json")
		if err := os.WriteFile(testFile, []byte("initial"), 0644); err != nil {
			t.Fatalf("failed to create initial file: %v", err)
		}

		if err := fs.AtomicWrite(testFile, []byte("overwritten"), 0644); err != nil {
			t.Fatalf("AtomicWrite failed: %v", err)
		}

		readContent, err := os.ReadFile(testFile)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}
		if string(readContent) != "overwritten" {
			t.Errorf("File content not updated: got %q", readContent)
		}

		entries, err := os.ReadDir(tmpDir)
		if err != nil {
			t.Fatal(err)
		}
		for _, entry := range entries {
			if strings.HasPrefix(entry.Name(), ".tfscaffold-tmp-") {
				t.Errorf("leftover temp file %s", entry.Name())
			}
		}
	})
}
