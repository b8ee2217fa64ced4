package fsops

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotDirectory is returned when a directory is requested at a path that
// already holds something else.
var ErrNotDirectory = errors.New("path exists and is not a directory")

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// CreationResult reports the outcome of an idempotent create.
type CreationResult struct {
	// Path is the path that was ensured
	Path string `json:"path"`

	// Created is false when Path already existed and was left untouched
	Created bool `json:"created"`

	// Ancestors are parent directories created along with Path, outermost first
	Ancestors []string `json:"ancestors,omitempty"`
}

// Creator ensures directories and files exist without disturbing anything
// that is already there.
type Creator struct {
	fs FS
}

// NewCreator creates a Creator backed by fs.
func NewCreator(fs FS) *Creator {
	return &Creator{fs: fs}
}

// EnsureDirectory creates path and any missing parents.
func (c *Creator) EnsureDirectory(path string) (CreationResult, error) {
	result := CreationResult{Path: path}

	info, err := c.fs.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return result, fmt.Errorf("%w: %s", ErrNotDirectory, path)
		}
		return result, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return result, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	ancestors, err := c.missingAncestors(path)
	if err != nil {
		return result, err
	}

	if err := c.fs.MkdirAll(path, dirPerm); err != nil {
		return result, fmt.Errorf("failed to create directory %s: %w", path, err)
	}

	result.Created = true
	result.Ancestors = ancestors
	return result, nil
}

// EnsureFile creates an empty file at path unless something already exists
// there. The parent directory must exist.
func (c *Creator) EnsureFile(path string) (CreationResult, error) {
	result := CreationResult{Path: path}

	err := c.fs.CreateExclusive(path, filePerm)
	if err == nil {
		result.Created = true
		return result, nil
	}
	if errors.Is(err, os.ErrExist) {
		return result, nil
	}
	return result, fmt.Errorf("failed to create file %s: %w", path, err)
}

// missingAncestors walks up from path and returns the parents that do not
// exist yet, outermost first.
func (c *Creator) missingAncestors(path string) ([]string, error) {
	var missing []string

	current := filepath.Clean(path)
	for {
		parent := filepath.Dir(current)
		if parent == current || parent == "." {
			break
		}

		exists, err := c.fs.Exists(parent)
		if err != nil {
			return nil, fmt.Errorf("failed to check %s: %w", parent, err)
		}
		if exists {
			break
		}

		missing = append(missing, parent)
		current = parent
	}

	// reverse into creation order
	for i, j := 0, len(missing)-1; i < j; i, j = i+1, j-1 {
		missing[i], missing[j] = missing[j], missing[i]
	}

	return missing, nil
}
