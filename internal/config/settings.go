package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/tfscaffold/internal/fsops"
)

// Settings are the scaffolding defaults read from .tfscaffold.yaml.
type Settings struct {
	// ModulesDir is the directory module scaffolds are created under
	ModulesDir string `yaml:"modules_dir"`

	// ModuleFiles are created inside modules/<name>/<name>/ unless --no-main
	ModuleFiles []string `yaml:"module_files"`

	// Placeholder is the file added to live directories and empty directories
	Placeholder string `yaml:"placeholder"`

	// Environments are used by live when no --env is given
	Environments []string `yaml:"environments"`

	// Exclude holds glob patterns for directory names fill never descends into
	Exclude []string `yaml:"exclude"`

	// FollowSymlinks lets fill descend into symlinked directories
	FollowSymlinks bool `yaml:"follow_symlinks"`
}

// DefaultSettings returns the settings used when no settings file exists.
func DefaultSettings() *Settings {
	return &Settings{
		ModulesDir:  "modules",
		ModuleFiles: []string{"main.tf", "outputs.tf", "variables.tf"},
		Placeholder: "main.tf",
		Exclude:     []string{".git", ".terraform", DefaultStateDirName},
	}
}

// LoadSettings reads path on top of the defaults. A missing file yields the
// defaults; an unreadable or invalid file is an error.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}

	if errs := Validate(settings); len(errs) > 0 {
		return nil, &ValidationError{Path: path, Errors: errs}
	}

	return settings, nil
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Path   string
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("settings %s are invalid:\n  - %s", e.Path, strings.Join(e.Errors, "\n  - "))
}

// Validate checks Settings for semantic correctness.
// Returns a list of validation error messages (empty if valid).
func Validate(s *Settings) []string {
	var errs []string

	if err := fsops.ValidateRelPath(s.ModulesDir); err != nil {
		errs = append(errs, fmt.Sprintf("modules_dir: %v", err))
	}

	if err := fsops.ValidateIdentifier(s.Placeholder); err != nil {
		errs = append(errs, fmt.Sprintf("placeholder: %v", err))
	}

	seen := make(map[string]bool)
	for i, name := range s.ModuleFiles {
		if err := fsops.ValidateIdentifier(name); err != nil {
			errs = append(errs, fmt.Sprintf("module_files[%d]: %v", i, err))
			continue
		}
		if seen[name] {
			errs = append(errs, fmt.Sprintf("module_files[%d]: duplicate file %q", i, name))
		}
		seen[name] = true
	}

	for i, env := range s.Environments {
		if err := fsops.ValidateIdentifier(env); err != nil {
			errs = append(errs, fmt.Sprintf("environments[%d]: %v", i, err))
		}
	}

	for i, pattern := range s.Exclude {
		if _, err := glob.Compile(pattern); err != nil {
			errs = append(errs, fmt.Sprintf("exclude[%d]: invalid pattern %q: %v", i, pattern, err))
		}
	}

	return errs
}
