// Package config manages tfscaffold configuration and filesystem paths.
//
// State lives in a directory relative to the working directory (default
// .tfscaffold/) holding the tracking record of the last run and the run
// history. The state directory can be moved with TFSCAFFOLD_STATE_DIR.
// Scaffolding defaults are read from an optional .tfscaffold.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
)

const (
	// StateDirEnv overrides the state directory.
	StateDirEnv = "TFSCAFFOLD_STATE_DIR"

	// DefaultStateDirName is the state directory used when StateDirEnv is unset.
	DefaultStateDirName = ".tfscaffold"

	// DefaultSettingsFileName is the settings file looked up in the working directory.
	DefaultSettingsFileName = ".tfscaffold.yaml"

	trackingFileName = "tracking.json"
	historyFileName  = "history.json"
)

// Paths contains all the filesystem paths used by tfscaffold.
type Paths struct {
	// StateDir holds the tracking record and history
	StateDir string

	// TrackingFile is the single-slot record of the last run
	TrackingFile string

	// HistoryFile is the append-only run log
	HistoryFile string

	// SettingsFile is the optional YAML settings file
	SettingsFile string
}

// DefaultPaths returns the default paths for tfscaffold, relative to cwd.
// Paths can be overridden with environment variables:
// - TFSCAFFOLD_STATE_DIR: Override the state directory
func DefaultPaths(cwd string) (*Paths, error) {
	stateDir := os.Getenv(StateDirEnv)
	if stateDir == "" {
		stateDir = filepath.Join(cwd, DefaultStateDirName)
	} else {
		expanded, err := homedir.Expand(stateDir)
		if err != nil {
			return nil, fmt.Errorf("failed to expand %s: %w", StateDirEnv, err)
		}
		stateDir = expanded
	}

	return &Paths{
		StateDir:     stateDir,
		TrackingFile: filepath.Join(stateDir, trackingFileName),
		HistoryFile:  filepath.Join(stateDir, historyFileName),
		SettingsFile: filepath.Join(cwd, DefaultSettingsFileName),
	}, nil
}

// WithSettingsFile returns a copy of p using the given settings file.
// A leading ~ is expanded to the user's home directory.
func (p Paths) WithSettingsFile(path string) (Paths, error) {
	if path == "" {
		return p, nil
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return p, fmt.Errorf("failed to expand settings path %q: %w", path, err)
	}

	p.SettingsFile = expanded
	return p, nil
}
