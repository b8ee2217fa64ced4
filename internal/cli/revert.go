package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/tfscaffold/internal/engine"
)

func newRevertCmd(opts *globalOptions) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "revert",
		Short: "Remove everything the last run created",
		Long: `Remove every path recorded by the last module, live or fill run.

Paths that no longer exist are skipped, so running revert twice is safe.
Files that existed before the last run are never touched. Recorded paths
belong to the directory the last run was started in, whichever directory
revert is run from.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := opts.newEngine(cmd, nil)
			if err != nil {
				return err
			}

			result, err := eng.Revert(cmd.Context(), &engine.RevertRequest{DryRun: dryRun})
			return opts.renderRevert(cmd.OutOrStdout(), result, err)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be removed without removing")
	return cmd
}

// renderRevert prints the outcome of a revert. A failed revert still lists
// the paths removed before the failure, then returns the failure.
func (o *globalOptions) renderRevert(w io.Writer, result *engine.RevertResult, runErr error) error {
	if result == nil {
		return runErr
	}

	if o.jsonOutput {
		if err := outputJSON(w, result); err != nil {
			return err
		}
		return runErr
	}

	if runErr != nil {
		renderRemovals(w, result)
		return runErr
	}

	if len(result.Removed) == 0 {
		printEmptyState(w, "Nothing to revert")
		return nil
	}

	renderRemovals(w, result)
	if result.DryRun {
		printInfo(w, fmt.Sprintf("Dry run: %s would be removed", printCount(len(result.Removed), "path", "paths")))
		return nil
	}
	printSuccess(w, fmt.Sprintf("Reverted %s", printCount(len(result.Removed), "path", "paths")))
	return nil
}
