package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	kindDir  = "dir"
	kindFile = "file"
)

// Revert removes every path recorded by the last run, in creation order.
// Recorded paths resolve against the directory of that run, so revert may
// be invoked from anywhere. Paths that no longer exist are skipped, so
// reverting twice is a no-op. The tracking file itself is left in place.
// Removed and skipped paths are reported relative to the current directory.
func (e *Engine) Revert(ctx context.Context, req *RevertRequest) (*RevertResult, error) {
	if req == nil {
		req = &RevertRequest{}
	}

	cs := e.tracker.Load()
	result := &RevertResult{
		Removed: []Removal{},
		Skipped: []string{},
		DryRun:  req.DryRun,
	}

	if cs.Len() == 0 {
		e.logger.Info("nothing to revert")
		return result, nil
	}

	// tracking files written before the run root was stored
	root := cs.Root
	if root == "" {
		root = e.cwd
	}

	var removedDirs []string
	var runErr error

	for _, tracked := range cs.Created {
		if err := checkContext(ctx); err != nil {
			runErr = err
			break
		}

		path := resolveTracked(tracked, root)
		shown := toTracked(path, e.cwd)

		// in a dry run, children of a listed directory would already be gone
		if req.DryRun && insideAny(path, removedDirs) {
			result.Skipped = append(result.Skipped, shown)
			continue
		}

		info, err := e.fs.Lstat(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				result.Skipped = append(result.Skipped, shown)
				continue
			}
			runErr = fmt.Errorf("failed to stat %s: %w", shown, err)
			break
		}

		kind := kindFile
		if info.IsDir() {
			kind = kindDir
		}

		if !req.DryRun {
			if err := e.remove(path, kind); err != nil {
				runErr = fmt.Errorf("failed to remove %s: %w", shown, err)
				break
			}
		}
		if kind == kindDir {
			removedDirs = append(removedDirs, path)
		}

		result.Removed = append(result.Removed, Removal{Path: shown, Kind: kind})
		e.logger.WithFields(logrus.Fields{
			"path":   shown,
			"kind":   kind,
			"dryRun": req.DryRun,
		}).Info("removed")
	}

	if !req.DryRun {
		removed := make([]string, 0, len(result.Removed))
		for _, r := range result.Removed {
			removed = append(removed, r.Path)
		}
		e.appendHistory("revert", removed, runErr)
	}

	if runErr != nil {
		return result, runErr
	}
	return result, nil
}

func (e *Engine) remove(path, kind string) error {
	if kind == kindDir {
		return e.fs.RemoveAll(path)
	}
	return e.fs.Remove(path)
}

func insideAny(path string, dirs []string) bool {
	for _, dir := range dirs {
		if strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
