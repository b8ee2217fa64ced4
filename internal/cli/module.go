package cli

import (
	"github.com/spf13/cobra"

	"github.com/danieljhkim/tfscaffold/internal/engine"
)

func newModuleCmd(opts *globalOptions) *cobra.Command {
	var noMain, gitAdd bool

	cmd := &cobra.Command{
		Use:   "module <name>...",
		Short: "Create module directory layouts",
		Long: `Create modules/<name>/ with examples/, <name>/ and a README.md for every name.

Unless --no-main is given, <name>/ also receives main.tf, outputs.tf and
variables.tf. Existing directories and files are never modified.`,
		Example: `  tfscaffold module network dns
  tfscaffold module iam --no-main --git-add`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, settings, err := opts.newEngine(cmd, nil)
			if err != nil {
				return err
			}

			result, err := eng.Scaffold(cmd.Context(), &engine.ScaffoldRequest{
				Modules: args,
				NoMain:  noMain,
				GitAdd:  gitAdd,
			})
			if err != nil {
				return err
			}

			return opts.renderScaffold(cmd.OutOrStdout(), result.Rows, result.Created, settings.Placeholder, gitAdd, result)
		},
	}

	cmd.Flags().BoolVar(&noMain, "no-main", false, "Do not create Terraform files")
	cmd.Flags().BoolVar(&gitAdd, "git-add", false, "Add created files to git")
	return cmd
}
