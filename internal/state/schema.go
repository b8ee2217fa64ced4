package state

import "time"

// ChangeSet is the ordered list of paths created by a single run.
// Every path in Created was created by that run and never pre-existed.
type ChangeSet struct {
	// Created lists created paths in creation order
	Created []string `json:"created"`

	// Root is the working directory of the run. Relative entries of Created
	// are anchored to it, not to the directory revert runs in.
	Root string `json:"root,omitempty"`
}

// NewChangeSet creates an empty ChangeSet.
func NewChangeSet() *ChangeSet {
	return &ChangeSet{Created: []string{}}
}

// Add appends paths that are not already recorded.
func (c *ChangeSet) Add(paths ...string) {
	for _, p := range paths {
		if p == "" || c.Contains(p) {
			continue
		}
		c.Created = append(c.Created, p)
	}
}

// Contains reports whether path is recorded.
func (c *ChangeSet) Contains(path string) bool {
	for _, p := range c.Created {
		if p == path {
			return true
		}
	}
	return false
}

// Len returns the number of recorded paths.
func (c *ChangeSet) Len() int {
	return len(c.Created)
}

// HistoryEntry records one invocation in the history log.
type HistoryEntry struct {
	// ID uniquely identifies the run
	ID string `json:"id"`

	// Timestamp is when the run finished
	Timestamp time.Time `json:"timestamp"`

	// Command is the operation that ran ("module", "live", "fill", "revert")
	Command string `json:"command"`

	// Paths are the paths created, or removed for a revert
	Paths []string `json:"paths"`

	// Error is set when the run aborted
	Error string `json:"error,omitempty"`
}

// HistoryLog is the on-disk layout of the history file.
type HistoryLog struct {
	Runs []HistoryEntry `json:"runs"`
}
