// Package fsops provides filesystem operations with safety guarantees.
//
// All filesystem mutations in tfscaffold go through the FS interface, which
// provides abstractions for common operations along with name validation
// so user supplied module and environment names cannot escape the
// scaffolding root.
//
// Key features:
//   - Atomic writes using temp file + rename
//   - Exclusive file creation that never truncates existing content
//   - Idempotent directory and file creation via Creator
//   - Testable via the FS interface
package fsops

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FS provides an abstraction for filesystem operations.
// All filesystem mutations in tfscaffold must go through this interface.
type FS interface {
	// Lstat returns file info without following symlinks.
	Lstat(path string) (os.FileInfo, error)

	// Stat returns file info, following symlinks.
	Stat(path string) (os.FileInfo, error)

	// ReadDir lists a directory sorted by name.
	ReadDir(path string) ([]fs.DirEntry, error)

	// EvalSymlinks resolves every symlink in path.
	EvalSymlinks(path string) (string, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// CreateExclusive creates an empty file, failing with fs.ErrExist if
	// anything is already present at path.
	CreateExclusive(path string, perm os.FileMode) error

	// Remove removes a file or empty directory.
	Remove(path string) error

	// RemoveAll removes a path and all its contents.
	RemoveAll(path string) error

	// AtomicWrite writes data to path atomically using temp file + rename.
	AtomicWrite(path string, data []byte, perm os.FileMode) error

	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// Exists checks if a path exists.
	Exists(path string) (bool, error)

	// ValidateRelPath validates a relative path for safety.
	ValidateRelPath(relPath string) error

	// ValidateIdentifier validates an identifier for safety.
	ValidateIdentifier(id string) error
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// Lstat returns file info without following symlinks.
func (fs *RealFS) Lstat(path string) (os.FileInfo, error) {
	return os.Lstat(path)
}

// Stat returns file info, following symlinks.
func (fs *RealFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// ReadDir lists a directory sorted by name.
func (fs *RealFS) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

// EvalSymlinks resolves every symlink in path.
func (fs *RealFS) EvalSymlinks(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}

// MkdirAll creates a directory and all parent directories.
func (fs *RealFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// CreateExclusive creates an empty file with O_EXCL so an existing file is
// never opened for writing.
func (fs *RealFS) CreateExclusive(path string, perm os.FileMode) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, perm)
	if err != nil {
		return err
	}
	return f.Close()
}

// Remove removes a file or empty directory.
func (fs *RealFS) Remove(path string) error {
	return os.Remove(path)
}

// RemoveAll removes a path and all its contents.
func (fs *RealFS) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// AtomicWrite writes data to path atomically using temp file + rename.
func (fs *RealFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	// Create parent directory if needed
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	// Create temp file in the same directory as target
	tmpFile, err := os.CreateTemp(dir, ".tfscaffold-tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	// Success - don't clean up temp file
	tmpFile = nil
	return nil
}

// ReadFile reads the entire contents of a file.
func (fs *RealFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Exists checks if a path exists. Dangling symlinks count as existing.
func (fs *RealFS) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// ValidateRelPath validates a relative path for safety.
// Returns an error if the path is invalid or unsafe.
func (fs *RealFS) ValidateRelPath(relPath string) error {
	return ValidateRelPath(relPath)
}

// ValidateIdentifier validates an identifier (module, environment or live
// name) for safety.
func (fs *RealFS) ValidateIdentifier(id string) error {
	return ValidateIdentifier(id)
}

// ValidateRelPath rejects empty, absolute and parent-escaping paths.
func ValidateRelPath(relPath string) error {
	cleaned := filepath.Clean(relPath)

	if relPath == "" || cleaned == "." {
		return fmt.Errorf("invalid path: empty or current directory")
	}

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("invalid path: must be relative, got absolute path %q", cleaned)
	}

	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("invalid path: path traversal not allowed in %q", cleaned)
	}

	return nil
}

// ValidateIdentifier rejects names that would not map to exactly one path
// segment.
func ValidateIdentifier(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("invalid identifier: empty")
	}

	if strings.ContainsAny(id, `/\`) || strings.ContainsRune(id, filepath.Separator) {
		return fmt.Errorf("invalid identifier %q: must not contain path separators", id)
	}

	if id == "." || id == ".." {
		return fmt.Errorf("invalid identifier %q: path traversal not allowed", id)
	}

	if strings.ContainsRune(id, 0) {
		return fmt.Errorf("invalid identifier %q: contains NUL byte", id)
	}

	return nil
}
