package gitx

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNotRepository is returned when no git repository encloses a path.
var ErrNotRepository = errors.New("not in a git repository")

// GitRepo provides an abstraction for git repository operations.
type GitRepo interface {
	// Discover finds the git repository root starting from cwd.
	Discover(cwd string) (root string, err error)

	// RelPath computes the relative path from repo root to the given absolute path.
	RelPath(root, absPath string) (string, error)

	// Add stages relPath in the index of the repository at root.
	Add(root, relPath string) error
}

// RealGitRepo implements GitRepo using actual git commands.
type RealGitRepo struct{}

// NewRealGitRepo creates a new RealGitRepo.
func NewRealGitRepo() *RealGitRepo {
	return &RealGitRepo{}
}

// Discover finds the git repository root by walking up from cwd looking for .git directory.
func (g *RealGitRepo) Discover(cwd string) (string, error) {
	absPath, err := filepath.Abs(cwd)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	current := absPath
	for {
		gitDir := filepath.Join(current, ".git")
		if info, err := os.Stat(gitDir); err == nil {
			// .git can be a directory or a file (for worktrees/submodules)
			if info.IsDir() || info.Mode().IsRegular() {
				return current, nil
			}
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", ErrNotRepository
		}
		current = parent
	}
}

// RelPath computes the relative path from repo root to the given absolute path.
func (g *RealGitRepo) RelPath(root, absPath string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute root: %w", err)
	}

	absTarget, err := filepath.Abs(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute target: %w", err)
	}

	return relWithin(absRoot, absTarget)
}

// Add runs git add for relPath inside root.
func (g *RealGitRepo) Add(root, relPath string) error {
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("git executable not found: %w", err)
	}

	cmd := exec.Command("git", "-C", root, "add", "--", relPath)
	output, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(output))
		if msg == "" {
			return fmt.Errorf("git add %s: %w", relPath, err)
		}
		return fmt.Errorf("git add %s: %s: %w", relPath, msg, err)
	}

	return nil
}

func relWithin(root, target string) (string, error) {
	relPath, err := filepath.Rel(root, target)
	if err != nil {
		return "", fmt.Errorf("failed to compute relative path: %w", err)
	}

	// Check if the path is outside the repo
	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path is outside repository: %s", target)
	}

	return relPath, nil
}

// FakeGitRepo implements GitRepo with predetermined values for testing.
type FakeGitRepo struct {
	root    string
	err     error
	addErrs map[string]error
	added   []string
}

// NewFakeGitRepo creates a new FakeGitRepo rooted at root.
func NewFakeGitRepo(root string) *FakeGitRepo {
	return &FakeGitRepo{
		root:    root,
		addErrs: make(map[string]error),
	}
}

// SetError sets an error to be returned by all methods.
func (g *FakeGitRepo) SetError(err error) {
	g.err = err
}

// SetAddError makes Add fail for relPath.
func (g *FakeGitRepo) SetAddError(relPath string, err error) {
	g.addErrs[relPath] = err
}

// Added returns the relative paths staged so far, in call order.
func (g *FakeGitRepo) Added() []string {
	return g.added
}

// Discover returns the predetermined root.
func (g *FakeGitRepo) Discover(cwd string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return g.root, nil
}

// RelPath computes the relative path (works like real implementation).
func (g *FakeGitRepo) RelPath(root, absPath string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return relWithin(root, absPath)
}

// Add records relPath unless an error is configured for it.
func (g *FakeGitRepo) Add(root, relPath string) error {
	if g.err != nil {
		return g.err
	}
	if err, ok := g.addErrs[relPath]; ok {
		return err
	}
	g.added = append(g.added, relPath)
	return nil
}
