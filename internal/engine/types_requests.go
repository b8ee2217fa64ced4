package engine

// ScaffoldRequest represents a request to create module and live layouts.
type ScaffoldRequest struct {
	// Modules are module names created under the modules directory
	Modules []string

	// LiveNames are live directory names created under every environment
	LiveNames []string

	// Environments are the environments for LiveNames
	Environments []string

	// NoMain skips the Terraform placeholder files
	NoMain bool

	// GitAdd stages created files in git
	GitAdd bool
}

// FillRequest represents a request to add placeholders to empty directories.
type FillRequest struct {
	// Root is the directory to walk (relative to the working directory or absolute)
	Root string

	// GitAdd stages created files in git
	GitAdd bool
}

// RevertRequest represents a request to undo the last run.
type RevertRequest struct {
	// DryRun shows what would be removed without actually removing
	DryRun bool
}
