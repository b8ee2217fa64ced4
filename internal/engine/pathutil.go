package engine

import (
	"path/filepath"
	"strings"
)

// toTracked converts an absolute path to the form stored in the tracking
// file: relative to cwd when inside it, absolute otherwise.
func toTracked(absPath, cwd string) string {
	absPath = filepath.Clean(absPath)

	relPath, err := filepath.Rel(filepath.Clean(cwd), absPath)
	if err != nil {
		return absPath
	}

	// Keep paths outside cwd absolute
	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return absPath
	}

	return relPath
}

// resolveTracked turns a tracked path back into an absolute path.
func resolveTracked(tracked, root string) string {
	if filepath.IsAbs(tracked) {
		return filepath.Clean(tracked)
	}
	return filepath.Join(root, tracked)
}

// trackedAll applies toTracked to every path.
func trackedAll(absPaths []string, cwd string) []string {
	out := make([]string, 0, len(absPaths))
	for _, p := range absPaths {
		out = append(out, toTracked(p, cwd))
	}
	return out
}
