package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/JamesPrial/todo/internal/filter"
	"github.com/JamesPrial/todo/internal/task"
)

func listCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list [regex]",
		Aliases: []string{"ls"},
		Short:   "List tasks, optionally only those whose name matches a regular expression",
		Args:    optionalArgs("regex"),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := ""
			if len(args) == 1 {
				pattern = args[0]
			}
			m, err := filter.CompileOptional(pattern)
			if err != nil {
				return err
			}
			if err := a.open(); err != nil {
				return err
			}

			tasks, err := a.store.List(m)
			if err != nil {
				return err
			}

			printTasks(cmd.OutOrStdout(), tasks, a.opts.NoColor)
			return nil
		},
	}
}

// printTasks writes one block per task:
//
//	* name:
//	  description
//	  Due by due_date
func printTasks(w io.Writer, tasks []task.Task, noColor bool) {
	name := color.New(color.FgCyan, color.Bold)
	due := color.New(color.FgYellow)
	if noColor {
		name.DisableColor()
		due.DisableColor()
	}

	for _, t := range tasks {
		fmt.Fprintf(w, "* %s:\n", name.Sprint(t.Name))
		fmt.Fprintf(w, "  %s\n", t.Description)
		fmt.Fprintf(w, "  Due by %s\n\n", due.Sprint(t.DueDate))
	}
}
