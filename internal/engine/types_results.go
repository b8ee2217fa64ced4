package engine

import "github.com/danieljhkim/tfscaffold/internal/state"

// Row is one line of a scaffolding report.
type Row struct {
	// Name is the module name or the directory that was scaffolded
	Name string `json:"name"`

	// Path is the scaffolded directory
	Path string `json:"path"`

	// PlaceholderAdded reports whether files were created for this row
	PlaceholderAdded bool `json:"placeholderAdded"`

	// Staged is nil unless staging was requested and the row has files
	Staged *bool `json:"staged,omitempty"`
}

// ScaffoldResult represents the result of a module/live run.
type ScaffoldResult struct {
	// Rows has one row per module followed by one per live directory
	Rows []Row `json:"rows"`

	// Created is the recorded change set, in creation order
	Created []string `json:"created"`

	// GitAdd mirrors the request
	GitAdd bool `json:"gitAdd"`
}

// FillResult represents the result of a fill run.
type FillResult struct {
	// Rows has one row per directory that was empty
	Rows []Row `json:"rows"`

	// Created is the recorded change set, in creation order
	Created []string `json:"created"`

	// GitAdd mirrors the request
	GitAdd bool `json:"gitAdd"`
}

// Removal is a path removed (or to be removed) by revert.
type Removal struct {
	Path string `json:"path"`

	// Kind is "dir" or "file"
	Kind string `json:"kind"`
}

// RevertResult represents the result of a revert.
type RevertResult struct {
	// Removed lists removals in creation order
	Removed []Removal `json:"removed"`

	// Skipped lists recorded paths that no longer exist
	Skipped []string `json:"skipped"`

	DryRun bool `json:"dryRun"`
}

// HistoryResult lists past runs, oldest first.
type HistoryResult struct {
	Runs []state.HistoryEntry `json:"runs"`
}
