package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the todo command tree.
func NewRootCmd(opts Options) *cobra.Command {
	opts.setDefaults()
	a := &app{opts: opts}

	var generate string

	root := &cobra.Command{
		Use:   "todo",
		Short: "A small priority-ordered task list",
		Long: `todo keeps a priority-ordered task list in .todo/tasks.txt next to the executable.

A new task is placed ahead of every task with a lower priority value.
Tasks flagged auto_delete are dropped on the next refresh unless the
recurring source issues them again.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w %q for %q", ErrUnknownCommand, args[0], cmd.CommandPath())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if generate != "" {
				return writeCompletion(cmd.Root(), generate, opts.Stdout)
			}
			return cmd.Help()
		},
	}
	root.SetOut(opts.Stdout)
	root.SetErr(opts.Stderr)
	root.Flags().StringVar(&generate, "generate", "", "print a completion script for the given shell (bash, zsh, fish, powershell)")

	root.AddCommand(addCmd(a))
	root.AddCommand(removeCmd(a))
	root.AddCommand(listCmd(a))
	root.AddCommand(refreshCmd(a))
	root.AddCommand(clearCmd(a))

	return root
}

// exactArgs requires one argument per name, reporting the first missing one.
func exactArgs(names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < len(names) {
			return fmt.Errorf("%w <%s>. See `todo %s --help` for usage", ErrMissingArgument, names[len(args)], cmd.Name())
		}
		if len(args) > len(names) {
			return fmt.Errorf("%w %q. See `todo %s --help` for usage", ErrUnexpectedArgument, args[len(names)], cmd.Name())
		}
		return nil
	}
}

// optionalArgs accepts up to one argument per name.
func optionalArgs(names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > len(names) {
			return fmt.Errorf("%w %q. See `todo %s --help` for usage", ErrUnexpectedArgument, args[len(names)], cmd.Name())
		}
		return nil
	}
}
