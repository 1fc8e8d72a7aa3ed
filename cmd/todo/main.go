// Package main implements the todo command.
//
// Tasks live in a pipe-delimited text file, by default .todo/tasks.txt next
// to the executable.
//
// Exit codes:
//   - 0: Success
//   - 1: Any error (bad arguments, malformed task file, storage failure)
//
// Environment variables:
//   - TODO_HOME: Optional. Data directory (default: <exe dir>/.todo).
//   - TODO_STORAGE_BACKEND: Optional. "text" (default), "sqlite" or "postgres".
//   - TODO_FILE: Optional. Task file path relative to the data directory.
//   - TODO_SQLITE_PATH: Optional. SQLite database path relative to the data directory.
//   - TODO_POSTGRES_URL: Required for the postgres backend.
//   - TODO_RECURRING_FILE: Optional. Recurring definitions (default: recurring.toml).
//   - TODO_REFRESH_COMMAND: Optional. Command whose output refresh merges in.
//   - TODO_LOG_LEVEL: Optional. hclog level (default: warn).
//   - DEBUG: Optional. Enable debug logging to stderr.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"

	"github.com/JamesPrial/todo/internal/cli"
)

// run executes the command line and returns the exit code.
//
// Errors are printed to stderr with an "Error: " prefix.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := cli.NewRootCmd(cli.Options{
		Stdout:  stdout,
		Stderr:  stderr,
		NoColor: color.NoColor,
	})
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
