package cli

import (
	"github.com/spf13/cobra"

	"github.com/danieljhkim/tfscaffold/internal/engine"
)

func newLiveCmd(opts *globalOptions) *cobra.Command {
	var (
		envs   []string
		noMain bool
		gitAdd bool
	)

	cmd := &cobra.Command{
		Use:   "live <name>...",
		Short: "Create live directories for every environment",
		Long: `Create <env>/<name>/ for every environment and name.

A newly created directory receives the placeholder file (main.tf by default)
unless --no-main is given. Environments default to the "environments" list
of the settings file.`,
		Example: `  tfscaffold live app db -e dev -e prod
  tfscaffold live app --env dev,stage --git-add`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, settings, err := opts.newEngine(cmd, nil)
			if err != nil {
				return err
			}

			if len(envs) == 0 {
				envs = settings.Environments
			}

			result, err := eng.Scaffold(cmd.Context(), &engine.ScaffoldRequest{
				LiveNames:    args,
				Environments: envs,
				NoMain:       noMain,
				GitAdd:       gitAdd,
			})
			if err != nil {
				return err
			}

			return opts.renderScaffold(cmd.OutOrStdout(), result.Rows, result.Created, settings.Placeholder, gitAdd, result)
		},
	}

	cmd.Flags().StringSliceVarP(&envs, "env", "e", nil, "Environments to create the live directories in")
	cmd.Flags().BoolVar(&noMain, "no-main", false, "Do not create the placeholder file")
	cmd.Flags().BoolVar(&gitAdd, "git-add", false, "Add created files to git")
	return cmd
}
