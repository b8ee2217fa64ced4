package planner

import (
	"fmt"
	"path/filepath"

	"github.com/danieljhkim/tfscaffold/internal/fsops"
)

const (
	examplesDir = "examples"
	readmeFile  = "README.md"
)

// ModuleSpec describes one module scaffold.
type ModuleSpec struct {
	// Name is the module name, used for the base and inner directory
	Name string

	// IncludeMainFiles adds the Terraform files to the inner directory
	IncludeMainFiles bool
}

// ModuleResult is the outcome of CreateModuleStructure.
type ModuleResult struct {
	// BasePath is modules/<name>
	BasePath string

	// Base is the creation result of the base directory
	Base fsops.CreationResult

	// CreatedFiles lists every file of the module, but only when the base
	// directory was created by this call. Nil otherwise.
	CreatedFiles []string
}

// CreateModuleStructure creates modules/<name>/ with its subdirectories and
// files. Subdirectories and files are ensured even when the base directory
// already existed; in that case nothing is reported as created.
//
// On error the partial result is returned alongside it so the caller can
// still account for what was created.
func (p *Planner) CreateModuleStructure(spec ModuleSpec) (*ModuleResult, error) {
	base := p.resolve(filepath.Join(p.opts.ModulesDir, spec.Name))
	result := &ModuleResult{BasePath: base}

	baseResult, err := p.creator.EnsureDirectory(base)
	if err != nil {
		return result, fmt.Errorf("module %s: %w", spec.Name, err)
	}
	result.Base = baseResult

	for _, sub := range []string{examplesDir, spec.Name} {
		if _, err := p.creator.EnsureDirectory(filepath.Join(base, sub)); err != nil {
			return result, fmt.Errorf("module %s: %w", spec.Name, err)
		}
	}

	files := []string{readmeFile}
	if spec.IncludeMainFiles {
		for _, name := range p.opts.ModuleFiles {
			files = append(files, filepath.Join(spec.Name, name))
		}
	}

	for _, name := range files {
		path := filepath.Join(base, name)
		if _, err := p.creator.EnsureFile(path); err != nil {
			return result, fmt.Errorf("module %s: %w", spec.Name, err)
		}
		if baseResult.Created {
			result.CreatedFiles = append(result.CreatedFiles, path)
		}
	}

	return result, nil
}
