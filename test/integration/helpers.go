package integration

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/danieljhkim/tfscaffold/internal/clock"
	"github.com/danieljhkim/tfscaffold/internal/engine"
	"github.com/danieljhkim/tfscaffold/internal/fsops"
	"github.com/danieljhkim/tfscaffold/internal/gitx"
	"github.com/danieljhkim/tfscaffold/internal/planner"
	"github.com/danieljhkim/tfscaffold/internal/state"
)

const workDir = "/work"

// testFS is a filesystem implementation that keeps files in memory for testing.
// Operations can be made to fail per path with failOn.
type testFS struct {
	files map[string][]byte
	dirs  map[string]bool
	fail  map[string]error
	ops   []string
}

func newTestFS() *testFS {
	return &testFS{
		files: make(map[string][]byte),
		dirs:  map[string]bool{"/": true, workDir: true},
		fail:  make(map[string]error),
	}
}

// failOn makes op ("mkdir", "create", "remove", "write") fail for path.
func (m *testFS) failOn(op, path string, err error) {
	m.fail[op+":"+path] = err
}

func (m *testFS) injected(op, path string) error {
	m.ops = append(m.ops, op+":"+path)
	if err, ok := m.fail[op+":"+path]; ok {
		return &os.PathError{Op: op, Path: path, Err: err}
	}
	return nil
}

func (m *testFS) Lstat(path string) (os.FileInfo, error) {
	path = filepath.Clean(path)
	if m.dirs[path] {
		return &mockFileInfo{name: filepath.Base(path), mode: os.ModeDir | 0755, isDir: true}, nil
	}
	if content, ok := m.files[path]; ok {
		return &mockFileInfo{name: filepath.Base(path), size: int64(len(content)), mode: 0644}, nil
	}
	return nil, &os.PathError{Op: "lstat", Path: path, Err: os.ErrNotExist}
}

func (m *testFS) Stat(path string) (os.FileInfo, error) {
	return m.Lstat(path)
}

func (m *testFS) ReadDir(path string) ([]fs.DirEntry, error) {
	path = filepath.Clean(path)
	if !m.dirs[path] {
		return nil, &os.PathError{Op: "readdir", Path: path, Err: os.ErrNotExist}
	}

	var names []string
	for p := range m.dirs {
		if p != path && filepath.Dir(p) == path {
			names = append(names, p)
		}
	}
	for p := range m.files {
		if filepath.Dir(p) == path {
			names = append(names, p)
		}
	}
	sort.Strings(names)

	entries := make([]fs.DirEntry, 0, len(names))
	for _, p := range names {
		info, _ := m.Lstat(p)
		entries = append(entries, fs.FileInfoToDirEntry(info))
	}
	return entries, nil
}

func (m *testFS) EvalSymlinks(path string) (string, error) {
	if _, err := m.Lstat(path); err != nil {
		return "", err
	}
	return filepath.Clean(path), nil
}

func (m *testFS) MkdirAll(path string, perm os.FileMode) error {
	path = filepath.Clean(path)
	if err := m.injected("mkdir", path); err != nil {
		return err
	}

	var chain []string
	for p := path; !m.dirs[p]; p = filepath.Dir(p) {
		if _, isFile := m.files[p]; isFile {
			return &os.PathError{Op: "mkdir", Path: p, Err: fsops.ErrNotDirectory}
		}
		chain = append(chain, p)
	}
	for _, p := range chain {
		m.dirs[p] = true
	}
	return nil
}

func (m *testFS) CreateExclusive(path string, perm os.FileMode) error {
	path = filepath.Clean(path)
	if err := m.injected("create", path); err != nil {
		return err
	}

	if exists, _ := m.Exists(path); exists {
		return &os.PathError{Op: "open", Path: path, Err: os.ErrExist}
	}
	if !m.dirs[filepath.Dir(path)] {
		return &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	m.files[path] = nil
	return nil
}

func (m *testFS) Remove(path string) error {
	path = filepath.Clean(path)
	if err := m.injected("remove", path); err != nil {
		return err
	}

	if m.dirs[path] {
		entries, _ := m.ReadDir(path)
		if len(entries) > 0 {
			return &os.PathError{Op: "remove", Path: path, Err: fmt.Errorf("directory not empty")}
		}
		delete(m.dirs, path)
		return nil
	}
	if _, ok := m.files[path]; ok {
		delete(m.files, path)
		return nil
	}
	return &os.PathError{Op: "remove", Path: path, Err: os.ErrNotExist}
}

func (m *testFS) RemoveAll(path string) error {
	path = filepath.Clean(path)
	if err := m.injected("remove", path); err != nil {
		return err
	}

	prefix := path + string(filepath.Separator)
	for p := range m.files {
		if p == path || strings.HasPrefix(p, prefix) {
			delete(m.files, p)
		}
	}
	for p := range m.dirs {
		if p == path || strings.HasPrefix(p, prefix) {
			delete(m.dirs, p)
		}
	}
	return nil
}

func (m *testFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	path = filepath.Clean(path)
	if err := m.injected("write", path); err != nil {
		return err
	}
	if err := m.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	m.files[path] = append([]byte(nil), data...)
	return nil
}

func (m *testFS) ReadFile(path string) ([]byte, error) {
	if content, ok := m.files[filepath.Clean(path)]; ok {
		return append([]byte(nil), content...), nil
	}
	return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
}

func (m *testFS) Exists(path string) (bool, error) {
	path = filepath.Clean(path)
	_, isFile := m.files[path]
	return isFile || m.dirs[path], nil
}

func (m *testFS) ValidateRelPath(relPath string) error {
	return fsops.ValidateRelPath(relPath)
}

func (m *testFS) ValidateIdentifier(id string) error {
	return fsops.ValidateIdentifier(id)
}

// paths lists every file and directory under workDir, relative to it.
func (m *testFS) paths() []string {
	var out []string
	add := func(p string) {
		if p == workDir || !strings.HasPrefix(p, workDir+"/") {
			return
		}
		rel, _ := filepath.Rel(workDir, p)
		if strings.HasPrefix(rel, ".tfscaffold") {
			return
		}
		out = append(out, rel)
	}
	for p := range m.dirs {
		add(p)
	}
	for p := range m.files {
		add(p)
	}
	sort.Strings(out)
	return out
}

// mockFileInfo implements os.FileInfo
type mockFileInfo struct {
	name  string
	size  int64
	mode  os.FileMode
	isDir bool
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return m.size }
func (m *mockFileInfo) Mode() os.FileMode  { return m.mode }
func (m *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() interface{}   { return nil }

type testEnv struct {
	engine *engine.Engine
	fs     *testFS
	git    *gitx.FakeGitRepo
	hook   *logtest.Hook
}

func setupTestEngine(t *testing.T) *testEnv {
	t.Helper()

	memFS := newTestFS()
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	clk := clock.NewFakeClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)).WithStep(time.Second)

	opts := planner.DefaultOptions()
	opts.Root = workDir
	p, err := planner.New(memFS, opts)
	if err != nil {
		t.Fatalf("planner.New() error = %v", err)
	}

	stateDir := filepath.Join(workDir, ".tfscaffold")
	tracker := state.NewFileTracker(memFS, filepath.Join(stateDir, "tracking.json"), logger)
	history := state.NewFileHistory(memFS, filepath.Join(stateDir, "history.json"), clk)
	git := gitx.NewFakeGitRepo(workDir)

	eng := engine.New(memFS, p, tracker, history, gitx.NewStager(git, workDir), clk, logger, workDir)
	return &testEnv{engine: eng, fs: memFS, git: git, hook: hook}
}
