package engine

import (
	"context"
	"fmt"

	"github.com/danieljhkim/tfscaffold/internal/state"
)

// History returns the run log, oldest first.
func (e *Engine) History(ctx context.Context) (*HistoryResult, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	if e.history == nil {
		return &HistoryResult{Runs: []state.HistoryEntry{}}, nil
	}

	runs, err := e.history.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	return &HistoryResult{Runs: runs}, nil
}
