package planner

import (
	"fmt"
	"path/filepath"

	"github.com/danieljhkim/tfscaffold/internal/fsops"
)

// LiveSpec describes the environment × live-name matrix.
type LiveSpec struct {
	Environments    []string
	LiveNames       []string
	IncludeMainFile bool
}

// LiveEntry is one cell of the live matrix.
type LiveEntry struct {
	// Path is <env>/<live>
	Path string

	// Dir is the creation result of Path
	Dir fsops.CreationResult

	// File is the placeholder created in Path, empty if none was created
	File string
}

// CreateLiveStructure ensures <env>/<live> for every pair, environments
// outermost. A placeholder is only added to directories this call created,
// so an existing live environment is never touched.
func (p *Planner) CreateLiveStructure(spec LiveSpec) ([]LiveEntry, error) {
	envs := uniqueStrings(spec.Environments)
	lives := uniqueStrings(spec.LiveNames)

	entries := make([]LiveEntry, 0, len(envs)*len(lives))
	for _, env := range envs {
		for _, live := range lives {
			path := p.resolve(filepath.Join(env, live))

			dir, err := p.creator.EnsureDirectory(path)
			if err != nil {
				return entries, fmt.Errorf("live %s/%s: %w", env, live, err)
			}

			entry := LiveEntry{Path: path, Dir: dir}
			if dir.Created && spec.IncludeMainFile {
				file := filepath.Join(path, p.opts.Placeholder)
				res, err := p.creator.EnsureFile(file)
				if err != nil {
					entries = append(entries, entry)
					return entries, fmt.Errorf("live %s/%s: %w", env, live, err)
				}
				if res.Created {
					entry.File = file
				}
			}

			entries = append(entries, entry)
		}
	}

	return entries, nil
}
