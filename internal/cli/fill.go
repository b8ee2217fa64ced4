package cli

import (
	"fmt"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/tfscaffold/internal/config"
	"github.com/danieljhkim/tfscaffold/internal/engine"
)

func newFillCmd(opts *globalOptions) *cobra.Command {
	var (
		gitAdd         bool
		exclude        []string
		followSymlinks bool
	)

	cmd := &cobra.Command{
		Use:   "fill [dir]",
		Short: "Add the placeholder file to every empty directory",
		Long: `Walk dir (default ".") and add the placeholder file (main.tf by default)
to every directory that has no entries.

Directories matching an exclude pattern are not entered. Symlinked
directories are only followed with --follow-symlinks.`,
		Example: `  tfscaffold fill
  tfscaffold fill ~/infra/live --exclude "tmp-*" --git-add`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				expanded, err := homedir.Expand(args[0])
				if err != nil {
					return fmt.Errorf("failed to expand %q: %w", args[0], err)
				}
				root = expanded
			}

			eng, settings, err := opts.newEngine(cmd, func(s *config.Settings) {
				s.Exclude = append(s.Exclude, exclude...)
				if followSymlinks {
					s.FollowSymlinks = true
				}
			})
			if err != nil {
				return err
			}

			result, err := eng.Fill(cmd.Context(), &engine.FillRequest{
				Root:   root,
				GitAdd: gitAdd,
			})
			if err != nil {
				return err
			}

			return opts.renderScaffold(cmd.OutOrStdout(), result.Rows, result.Created, settings.Placeholder, gitAdd, result)
		},
	}

	cmd.Flags().BoolVar(&gitAdd, "git-add", false, "Add created files to git")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Glob patterns of directory names to skip")
	cmd.Flags().BoolVar(&followSymlinks, "follow-symlinks", false, "Descend into symlinked directories")
	return cmd
}
