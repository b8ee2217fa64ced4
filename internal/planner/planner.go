package planner

import (
	"fmt"
	"path/filepath"

	"github.com/gobwas/glob"

	"github.com/danieljhkim/tfscaffold/internal/fsops"
)

// Options configures a Planner.
type Options struct {
	// Root is the directory relative paths are resolved against.
	// Empty means the process working directory.
	Root string

	// ModulesDir is the directory module scaffolds are created under
	ModulesDir string

	// ModuleFiles are the Terraform files created in modules/<name>/<name>/
	ModuleFiles []string

	// Placeholder is the file name used for live and fill placeholders
	Placeholder string

	// Exclude holds glob patterns for directory names fill skips
	Exclude []string

	// FollowSymlinks lets fill descend into symlinked directories
	FollowSymlinks bool
}

// DefaultOptions returns the layout used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		ModulesDir:  "modules",
		ModuleFiles: []string{"main.tf", "outputs.tf", "variables.tf"},
		Placeholder: "main.tf",
		Exclude:     []string{".git", ".terraform", ".tfscaffold"},
	}
}

// Planner runs scaffolding strategies against a filesystem.
type Planner struct {
	fs      fsops.FS
	creator *fsops.Creator
	opts    Options
	exclude []glob.Glob
}

// New creates a Planner. It fails if an exclude pattern does not compile.
func New(fs fsops.FS, opts Options) (*Planner, error) {
	if opts.ModulesDir == "" {
		opts.ModulesDir = DefaultOptions().ModulesDir
	}
	if opts.Placeholder == "" {
		opts.Placeholder = DefaultOptions().Placeholder
	}

	exclude := make([]glob.Glob, 0, len(opts.Exclude))
	for _, pattern := range opts.Exclude {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		exclude = append(exclude, g)
	}

	return &Planner{
		fs:      fs,
		creator: fsops.NewCreator(fs),
		opts:    opts,
		exclude: exclude,
	}, nil
}

// Placeholder returns the placeholder file name.
func (p *Planner) Placeholder() string {
	return p.opts.Placeholder
}

// resolve joins a relative path onto the planner root.
func (p *Planner) resolve(path string) string {
	if filepath.IsAbs(path) || p.opts.Root == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(p.opts.Root, path)
}

// excluded reports whether a directory name matches an exclude pattern.
func (p *Planner) excluded(name string) bool {
	for _, g := range p.exclude {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// uniqueStrings drops repeated values, keeping first-seen order.
func uniqueStrings(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
