package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JamesPrial/todo/internal/task"
)

func addCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <description> <due_date> <priority> <auto_delete>",
		Short: "Add a task",
		Long: `Add a task to the list.

The task is inserted immediately before the first task whose priority is
lower than <priority>, or at the end. Names must be unique.
<auto_delete> is true or false (1/0 and yes/no also work).`,
		Example: `  todo add report "Quarterly report" 2024-03-31 5 false`,
		Args:    exactArgs("name", "description", "due_date", "priority", "auto_delete"),
		RunE: func(cmd *cobra.Command, args []string) error {
			priority, err := task.ParsePriority(args[3])
			if err != nil {
				return err
			}
			autoDelete, err := task.ParseAutoDelete(args[4])
			if err != nil {
				return err
			}

			if err := a.open(); err != nil {
				return err
			}

			t := task.Task{
				Name:        args[0],
				Description: args[1],
				DueDate:     args[2],
				Priority:    priority,
				AutoDelete:  autoDelete,
			}
			if err := a.store.Add(t); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added '%s'\n", t.Name)
			return nil
		},
	}
}
