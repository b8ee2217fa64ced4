package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/danieljhkim/tfscaffold/internal/clock"
	"github.com/danieljhkim/tfscaffold/internal/fsops"
)

// Tracker persists the ChangeSet of the most recent run.
type Tracker interface {
	// Load returns the last recorded ChangeSet. A missing or unreadable
	// tracking file yields an empty ChangeSet.
	Load() *ChangeSet

	// Record overwrites the tracking file with cs.
	Record(cs *ChangeSet) error
}

// History is an append-only log of runs.
type History interface {
	// Append adds an entry for a finished run and returns it.
	Append(command string, paths []string, runErr error) (*HistoryEntry, error)

	// List returns every entry, oldest first.
	List() ([]HistoryEntry, error)
}

// FileTracker implements Tracker using a JSON file on disk.
type FileTracker struct {
	fs     fsops.FS
	path   string
	logger logrus.FieldLogger
}

// NewFileTracker creates a FileTracker writing to path.
func NewFileTracker(fs fsops.FS, path string, logger logrus.FieldLogger) *FileTracker {
	return &FileTracker{
		fs:     fs,
		path:   path,
		logger: logger,
	}
}

// Path returns the tracking file location.
func (t *FileTracker) Path() string {
	return t.path
}

// Load returns the last recorded ChangeSet.
func (t *FileTracker) Load() *ChangeSet {
	data, err := t.fs.ReadFile(t.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			t.logger.WithError(err).WithField("path", t.path).Debug("tracking file unreadable, treating as empty")
		}
		return NewChangeSet()
	}

	var cs ChangeSet
	if err := json.Unmarshal(data, &cs); err != nil {
		t.logger.WithError(err).WithField("path", t.path).Debug("tracking file corrupt, treating as empty")
		return NewChangeSet()
	}
	if cs.Created == nil {
		cs.Created = []string{}
	}

	return &cs
}

// Record overwrites the tracking file atomically.
func (t *FileTracker) Record(cs *ChangeSet) error {
	if cs == nil {
		cs = NewChangeSet()
	}

	data, err := json.MarshalIndent(cs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal change set: %w", err)
	}

	if err := t.fs.AtomicWrite(t.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write tracking file: %w", err)
	}

	t.logger.WithFields(logrus.Fields{
		"path":    t.path,
		"created": cs.Len(),
	}).Debug("recorded change set")
	return nil
}

// FileHistory implements History using a JSON file on disk.
type FileHistory struct {
	fs    fsops.FS
	path  string
	clock clock.Clock
	newID func() string
}

// NewFileHistory creates a FileHistory writing to path.
func NewFileHistory(fs fsops.FS, path string, clk clock.Clock) *FileHistory {
	return &FileHistory{
		fs:    fs,
		path:  path,
		clock: clk,
		newID: uuid.NewString,
	}
}

// Append adds an entry for a finished run.
func (h *FileHistory) Append(command string, paths []string, runErr error) (*HistoryEntry, error) {
	log, err := h.load()
	if err != nil {
		return nil, err
	}

	if paths == nil {
		paths = []string{}
	}
	entry := HistoryEntry{
		ID:        h.newID(),
		Timestamp: h.clock.Now().UTC(),
		Command:   command,
		Paths:     paths,
	}
	if runErr != nil {
		entry.Error = runErr.Error()
	}
	log.Runs = append(log.Runs, entry)

	data, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal history: %w", err)
	}
	if err := h.fs.AtomicWrite(h.path, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write history: %w", err)
	}

	return &entry, nil
}

// List returns every entry, oldest first.
func (h *FileHistory) List() ([]HistoryEntry, error) {
	log, err := h.load()
	if err != nil {
		return nil, err
	}
	return log.Runs, nil
}

func (h *FileHistory) load() (*HistoryLog, error) {
	data, err := h.fs.ReadFile(h.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &HistoryLog{Runs: []HistoryEntry{}}, nil
		}
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	var log HistoryLog
	if err := json.Unmarshal(data, &log); err != nil {
		return nil, fmt.Errorf("failed to unmarshal history: %w", err)
	}
	if log.Runs == nil {
		log.Runs = []HistoryEntry{}
	}
	return &log, nil
}
