package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JamesPrial/todo/internal/filter"
)

func removeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <regex>",
		Aliases: []string{"rm"},
		Short:   "Remove every task whose name matches a regular expression",
		Long: `Remove every task whose name matches <regex>.

The expression matches anywhere in the name; anchor it with ^ and $ to
match whole names.`,
		Example: `  todo remove '^report$'`,
		Args:    exactArgs("regex"),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := filter.Compile(args[0])
			if err != nil {
				return err
			}
			if err := a.open(); err != nil {
				return err
			}

			n, err := a.store.Remove(m)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d task(s)\n", n)
			return nil
		},
	}
}

func clearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all tasks",
		Args:  exactArgs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(); err != nil {
				return err
			}

			n, err := a.store.Clear()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d task(s)\n", n)
			return nil
		},
	}
}
