// Package engine provides the core business logic for tfscaffold operations.
//
// The engine package acts as the orchestration layer between CLI commands and
// lower-level operations. It runs the scaffolding planner, records exactly
// what a run created, stages created files in git and reverts the last run.
//
// Key components:
//   - Engine: Main orchestrator that coordinates all operations
//   - Scaffold/Fill: Create module, live and placeholder layouts
//   - Revert: Remove everything the last run created
//   - History: List past runs
package engine

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/danieljhkim/tfscaffold/internal/clock"
	"github.com/danieljhkim/tfscaffold/internal/fsops"
	"github.com/danieljhkim/tfscaffold/internal/planner"
	"github.com/danieljhkim/tfscaffold/internal/state"
)

// Stager stages created files in version control.
type Stager interface {
	// Stage reports per path whether it was staged.
	Stage(paths []string) ([]bool, error)
}

// Engine orchestrates all tfscaffold operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs      fsops.FS
	planner *planner.Planner
	tracker state.Tracker
	history state.History
	stager  Stager
	clock   clock.Clock
	logger  logrus.FieldLogger
	cwd     string
}

// New creates a new Engine with the given dependencies.
// Recorded paths are stored relative to cwd.
func New(
	fs fsops.FS,
	p *planner.Planner,
	tracker state.Tracker,
	history state.History,
	stager Stager,
	clk clock.Clock,
	logger logrus.FieldLogger,
	cwd string,
) *Engine {
	return &Engine{
		fs:      fs,
		planner: p,
		tracker: tracker,
		history: history,
		stager:  stager,
		clock:   clk,
		logger:  logger,
		cwd:     cwd,
	}
}

// finish persists the change set of a run and appends it to the history.
// It runs on success and on failure so partial runs stay revertible.
func (e *Engine) finish(command string, cs *state.ChangeSet, start time.Time, runErr error) error {
	log := e.logger.WithFields(logrus.Fields{
		"command": command,
		"created": cs.Len(),
		"elapsed": clock.Since(e.clock, start).String(),
	})

	if err := e.tracker.Record(cs); err != nil {
		log.WithError(err).Error("failed to record change set")
		if runErr == nil {
			return err
		}
	}

	e.appendHistory(command, cs.Created, runErr)

	if runErr != nil {
		log.WithError(runErr).Warn("run aborted, partial changes recorded")
	} else {
		log.Info("run complete")
	}
	return runErr
}

// appendHistory writes a history entry. Failures are logged only.
func (e *Engine) appendHistory(command string, paths []string, runErr error) {
	if e.history == nil {
		return
	}
	if _, err := e.history.Append(command, paths, runErr); err != nil {
		e.logger.WithError(err).Warn("failed to append history entry")
	}
}

// stage adds paths to git and returns one status per path.
func (e *Engine) stage(paths []string) []bool {
	staged, err := e.stager.Stage(paths)
	if err != nil {
		e.logger.WithError(err).Warn("git staging incomplete")
	}
	return staged
}

func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
