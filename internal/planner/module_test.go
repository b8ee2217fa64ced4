package planner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateModuleStructure_CleanWorkspace(t *testing.T) {
	p, root := newTestPlanner(t)

	result, err := p.CreateModuleStructure(ModuleSpec{Name: "net", IncludeMainFiles: true})
	require.NoError(t, err)

	base := filepath.Join(root, "modules", "net")
	assert.Equal(t, base, result.BasePath)
	assert.True(t, result.Base.Created)
	assert.Equal(t, []string{filepath.Join(root, "modules")}, result.Base.Ancestors)

	assertDir(t, base)
	assertDir(t, filepath.Join(base, "examples"))
	assertDir(t, filepath.Join(base, "net"))

	wantFiles := []string{
		filepath.Join(base, "README.md"),
		filepath.Join(base, "net", "main.tf"),
		filepath.Join(base, "net", "outputs.tf"),
		filepath.Join(base, "net", "variables.tf"),
	}
	assert.Equal(t, wantFiles, result.CreatedFiles)
	for _, f := range wantFiles {
		assertFile(t, f)
	}
}

func TestCreateModuleStructure_WithoutMainFiles(t *testing.T) {
	p, root := newTestPlanner(t)

	result, err := p.CreateModuleStructure(ModuleSpec{Name: "dns"})
	require.NoError(t, err)

	base := filepath.Join(root, "modules", "dns")
	assert.Equal(t, []string{filepath.Join(base, "README.md")}, result.CreatedFiles)
	assertDir(t, filepath.Join(base, "dns"))
	assert.NoFileExists(t, filepath.Join(base, "dns", "main.tf"))
}

func TestCreateModuleStructure_RerunReportsNothing(t *testing.T) {
	p, root := newTestPlanner(t)

	_, err := p.CreateModuleStructure(ModuleSpec{Name: "net", IncludeMainFiles: true})
	require.NoError(t, err)

	main := filepath.Join(root, "modules", "net", "net", "main.tf")
	require.NoError(t, os.WriteFile(main, []byte("module body"), 0644))

	// remove a file so the rerun has to recreate it
	outputs := filepath.Join(root, "modules", "net", "net", "outputs.tf")
	require.NoError(t, os.Remove(outputs))

	result, err := p.CreateModuleStructure(ModuleSpec{Name: "net", IncludeMainFiles: true})
	require.NoError(t, err)

	assert.False(t, result.Base.Created)
	assert.Nil(t, result.CreatedFiles, "existing base directory must report no created files")

	// files are still touched, but never truncated
	assertFile(t, outputs)
	content, err := os.ReadFile(main)
	require.NoError(t, err)
	assert.Equal(t, "module body", string(content))
}

func TestCreateModuleStructure_ExistingBaseGetsMissingSubdirectories(t *testing.T) {
	p, root := newTestPlanner(t)

	base := filepath.Join(root, "modules", "iam")
	require.NoError(t, os.MkdirAll(base, 0755))

	result, err := p.CreateModuleStructure(ModuleSpec{Name: "iam", IncludeMainFiles: true})
	require.NoError(t, err)

	assert.False(t, result.Base.Created)
	assert.Nil(t, result.CreatedFiles)
	assertDir(t, filepath.Join(base, "examples"))
	assertFile(t, filepath.Join(base, "iam", "variables.tf"))
}

func TestCreateModuleStructure_CustomLayout(t *testing.T) {
	p, root := newTestPlanner(t, func(o *Options) {
		o.ModulesDir = filepath.Join("terraform", "modules")
		o.ModuleFiles = []string{"main.tf", "versions.tf"}
	})

	result, err := p.CreateModuleStructure(ModuleSpec{Name: "s3", IncludeMainFiles: true})
	require.NoError(t, err)

	base := filepath.Join(root, "terraform", "modules", "s3")
	assert.Equal(t, []string{
		filepath.Join(base, "README.md"),
		filepath.Join(base, "s3", "main.tf"),
		filepath.Join(base, "s3", "versions.tf"),
	}, result.CreatedFiles)
	assert.Equal(t, []string{
		filepath.Join(root, "terraform"),
		filepath.Join(root, "terraform", "modules"),
	}, result.Base.Ancestors)
}

func TestCreateModuleStructure_BaseBlockedByFile(t *testing.T) {
	p, root := newTestPlanner(t)

	require.NoError(t, os.MkdirAll(filepath.Join(root, "modules"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "modules", "net"), nil, 0644))

	result, err := p.CreateModuleStructure(ModuleSpec{Name: "net", IncludeMainFiles: true})
	require.Error(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Base.Created)
	assert.Empty(t, result.CreatedFiles)
}
