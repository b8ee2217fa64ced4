package engine

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/danieljhkim/tfscaffold/internal/fsops"
	"github.com/danieljhkim/tfscaffold/internal/planner"
	"github.com/danieljhkim/tfscaffold/internal/state"
)

// rowFiles pairs a report row with the files created for it.
type rowFiles struct {
	row   Row
	files []string
}

// Scaffold creates the requested modules, then the live matrix.
// The change set is recorded even when the run fails part way.
func (e *Engine) Scaffold(ctx context.Context, req *ScaffoldRequest) (*ScaffoldResult, error) {
	if err := validateScaffold(req); err != nil {
		return nil, err
	}

	start := e.clock.Now()
	cs := state.NewChangeSet()
	cs.Root = e.cwd
	var rows []rowFiles

	runErr := e.scaffoldModules(ctx, req, cs, &rows)
	if runErr == nil {
		runErr = e.scaffoldLive(ctx, req, cs, &rows)
	}

	if runErr == nil && req.GitAdd {
		e.stageRows(rows)
	}

	command := "module"
	if len(req.Modules) == 0 {
		command = "live"
	}
	if err := e.finish(command, cs, start, runErr); err != nil {
		return nil, err
	}

	result := &ScaffoldResult{
		Rows:    make([]Row, 0, len(rows)),
		Created: cs.Created,
		GitAdd:  req.GitAdd,
	}
	for _, r := range rows {
		result.Rows = append(result.Rows, r.row)
	}
	return result, nil
}

func (e *Engine) scaffoldModules(ctx context.Context, req *ScaffoldRequest, cs *state.ChangeSet, rows *[]rowFiles) error {
	for _, name := range req.Modules {
		if err := checkContext(ctx); err != nil {
			return err
		}

		res, err := e.planner.CreateModuleStructure(planner.ModuleSpec{
			Name:             name,
			IncludeMainFiles: !req.NoMain,
		})
		if res != nil && res.Base.Created {
			cs.Add(trackedAll(res.Base.Ancestors, e.cwd)...)
			cs.Add(toTracked(res.BasePath, e.cwd))
			cs.Add(trackedAll(res.CreatedFiles, e.cwd)...)
		}
		if err != nil {
			return err
		}

		e.logger.WithFields(logrus.Fields{
			"module":  name,
			"path":    res.BasePath,
			"created": res.Base.Created,
		}).Debug("module scaffolded")

		*rows = append(*rows, rowFiles{
			row: Row{
				Name:             name,
				Path:             toTracked(res.BasePath, e.cwd),
				PlaceholderAdded: len(res.CreatedFiles) > 0,
			},
			files: res.CreatedFiles,
		})
	}
	return nil
}

func (e *Engine) scaffoldLive(ctx context.Context, req *ScaffoldRequest, cs *state.ChangeSet, rows *[]rowFiles) error {
	if len(req.LiveNames) == 0 {
		return nil
	}
	if err := checkContext(ctx); err != nil {
		return err
	}

	entries, err := e.planner.CreateLiveStructure(planner.LiveSpec{
		Environments:    req.Environments,
		LiveNames:       req.LiveNames,
		IncludeMainFile: !req.NoMain,
	})

	for _, entry := range entries {
		if entry.Dir.Created {
			cs.Add(trackedAll(entry.Dir.Ancestors, e.cwd)...)
			cs.Add(toTracked(entry.Path, e.cwd))
		}

		var files []string
		if entry.File != "" {
			cs.Add(toTracked(entry.File, e.cwd))
			files = []string{entry.File}
		}

		path := toTracked(entry.Path, e.cwd)
		e.logger.WithFields(logrus.Fields{
			"path":    path,
			"created": entry.Dir.Created,
		}).Debug("live directory scaffolded")

		*rows = append(*rows, rowFiles{
			row: Row{
				Name:             path,
				Path:             path,
				PlaceholderAdded: entry.File != "",
			},
			files: files,
		})
	}

	return err
}

// stageRows stages every created file and sets each row's status.
// A row is staged when all of its files were staged.
func (e *Engine) stageRows(rows []rowFiles) {
	var paths []string
	for _, r := range rows {
		paths = append(paths, r.files...)
	}
	if len(paths) == 0 {
		return
	}

	staged := e.stage(paths)

	i := 0
	for idx := range rows {
		if len(rows[idx].files) == 0 {
			continue
		}
		ok := true
		for range rows[idx].files {
			ok = ok && staged[i]
			i++
		}
		rows[idx].row.Staged = &ok
	}
}

func validateScaffold(req *ScaffoldRequest) error {
	if req == nil || (len(req.Modules) == 0 && len(req.LiveNames) == 0) {
		return ErrNothingToDo
	}
	if len(req.LiveNames) > 0 && len(req.Environments) == 0 {
		return fmt.Errorf("%w: live directories require at least one environment", ErrValidation)
	}

	for _, name := range req.Modules {
		if err := fsops.ValidateIdentifier(name); err != nil {
			return fmt.Errorf("%w: module name: %v", ErrValidation, err)
		}
	}
	for _, name := range req.LiveNames {
		if err := fsops.ValidateIdentifier(name); err != nil {
			return fmt.Errorf("%w: live name: %v", ErrValidation, err)
		}
	}
	for _, env := range req.Environments {
		if err := fsops.ValidateIdentifier(env); err != nil {
			return fmt.Errorf("%w: environment: %v", ErrValidation, err)
		}
	}

	return nil
}
