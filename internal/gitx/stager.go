package gitx

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
)

// Stager adds created paths to the git index on a best-effort basis.
type Stager struct {
	repo GitRepo
	cwd  string
}

// NewStager creates a Stager that resolves relative paths against cwd.
func NewStager(repo GitRepo, cwd string) *Stager {
	return &Stager{repo: repo, cwd: cwd}
}

// Stage adds every path to the index and reports, per path and in order,
// whether it was staged. A failure for one path never stops the others.
// The returned error aggregates the individual failures and is informational.
func (s *Stager) Stage(paths []string) ([]bool, error) {
	staged := make([]bool, len(paths))
	if len(paths) == 0 {
		return staged, nil
	}

	root, err := s.repo.Discover(s.cwd)
	if err != nil {
		return staged, fmt.Errorf("git staging skipped: %w", err)
	}

	var result *multierror.Error
	for i, path := range paths {
		abs := path
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(s.cwd, abs)
		}

		rel, err := s.repo.RelPath(root, abs)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", path, err))
			continue
		}

		if err := s.repo.Add(root, rel); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", path, err))
			continue
		}
		staged[i] = true
	}

	return staged, result.ErrorOrNil()
}
