package engine

import (
	"context"

	"github.com/danieljhkim/tfscaffold/internal/state"
)

// Fill adds the placeholder file to every empty directory under req.Root.
// Only the created placeholder files are recorded; the directories pre-exist.
func (e *Engine) Fill(ctx context.Context, req *FillRequest) (*FillResult, error) {
	root := req.Root
	if root == "" {
		root = "."
	}

	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	start := e.clock.Now()
	cs := state.NewChangeSet()
	cs.Root = e.cwd

	entries, runErr := e.planner.FillEmptyDirectories(root)

	rows := make([]rowFiles, 0, len(entries))
	for _, entry := range entries {
		var files []string
		if entry.File.Created {
			cs.Add(toTracked(entry.File.Path, e.cwd))
			files = []string{entry.File.Path}
		}

		path := toTracked(entry.Dir, e.cwd)
		e.logger.WithField("path", path).Debug("placeholder added")

		rows = append(rows, rowFiles{
			row: Row{
				Name:             path,
				Path:             path,
				PlaceholderAdded: entry.File.Created,
			},
			files: files,
		})
	}

	if runErr == nil && req.GitAdd {
		e.stageRows(rows)
	}

	if err := e.finish("fill", cs, start, runErr); err != nil {
		return nil, err
	}

	result := &FillResult{
		Rows:    make([]Row, 0, len(rows)),
		Created: cs.Created,
		GitAdd:  req.GitAdd,
	}
	for _, r := range rows {
		result.Rows = append(result.Rows, r.row)
	}
	return result, nil
}
