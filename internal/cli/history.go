package cli

import (
	"github.com/spf13/cobra"
)

func newHistoryCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List past runs",
		Long:  `List every recorded run, oldest first. Only the most recent run can be reverted.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := opts.newEngine(cmd, nil)
			if err != nil {
				return err
			}

			result, err := eng.History(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return outputJSON(out, result)
			}

			if len(result.Runs) == 0 {
				printEmptyState(out, "No runs recorded")
				return nil
			}
			return renderHistory(out, result.Runs)
		},
	}
}
