package planner

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/danieljhkim/tfscaffold/internal/fsops"
)

// FillEntry is an empty directory that received a placeholder.
type FillEntry struct {
	// Dir is the directory that was empty at visit time
	Dir string

	// File is the creation result of the placeholder inside Dir
	File fsops.CreationResult
}

// FillEmptyDirectories walks the tree under root and adds a placeholder to
// every directory that has no entries when it is visited.
//
// The walk uses an explicit stack and a visited set keyed by the resolved
// path, so every directory is visited once and symlink cycles terminate.
// Directories are visited depth-first in name order.
func (p *Planner) FillEmptyDirectories(root string) ([]FillEntry, error) {
	start := p.resolve(root)

	info, err := p.fs.Stat(start)
	if err != nil {
		return nil, fmt.Errorf("fill root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("fill root %s: %w", root, fsops.ErrNotDirectory)
	}

	var entries []FillEntry
	visited := make(map[string]bool)
	stack := []string{start}

	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		canonical, err := p.fs.EvalSymlinks(dir)
		if err != nil {
			return entries, fmt.Errorf("failed to resolve %s: %w", dir, err)
		}
		if visited[canonical] {
			continue
		}
		visited[canonical] = true

		children, err := p.fs.ReadDir(dir)
		if err != nil {
			return entries, fmt.Errorf("failed to read directory %s: %w", dir, err)
		}

		if len(children) == 0 {
			res, err := p.creator.EnsureFile(filepath.Join(dir, p.opts.Placeholder))
			if err != nil {
				return entries, err
			}
			entries = append(entries, FillEntry{Dir: dir, File: res})
			continue
		}

		// push in reverse so children pop in name order
		for i := len(children) - 1; i >= 0; i-- {
			child := children[i]
			if p.excluded(child.Name()) {
				continue
			}

			path := filepath.Join(dir, child.Name())
			if p.isTraversable(path, child) {
				stack = append(stack, path)
			}
		}
	}

	return entries, nil
}

// isTraversable reports whether a directory entry should be walked.
func (p *Planner) isTraversable(path string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	if !p.opts.FollowSymlinks {
		return false
	}

	// dangling links are not directories
	info, err := p.fs.Stat(path)
	return err == nil && info.IsDir()
}
