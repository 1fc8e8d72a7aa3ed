package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func refreshCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Merge in recurring tasks and drop expired auto-delete tasks",
		Long: `Merge in the tasks issued by the recurring sources.

Auto-delete tasks are dropped first. Recurring tasks are then merged by
priority; a recurring task whose name is already on the list is skipped.

Sources are recurring.toml in the data directory and, when set, the
output of TODO_REFRESH_COMMAND (one task per line in the task file format).`,
		Args: exactArgs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(); err != nil {
				return err
			}

			result, err := a.store.Refresh(cmd.Context(), a.opts.Source(a.cfg))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Refreshed: %d added, %d expired, %d already present\n",
				len(result.Added), len(result.Expired), len(result.Skipped))
			return nil
		},
	}
}
