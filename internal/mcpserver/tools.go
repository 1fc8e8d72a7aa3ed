// Package mcpserver exposes the task list as MCP tools over stdio.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// listTasksTool returns a tool definition for listing tasks.
func listTasksTool() mcp.Tool {
	return mcp.NewTool("list_tasks",
		mcp.WithDescription("List tasks in priority order. Returns a JSON array of tasks."),
		mcp.WithString("pattern",
			mcp.Description("Regular expression; only tasks whose name matches are returned")),
	)
}

// addTaskTool returns a tool definition for adding a task.
func addTaskTool() mcp.Tool {
	return mcp.NewTool("add_task",
		mcp.WithDescription("Add a task. It is placed before the first task with a lower priority. Names must be unique."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Unique task name")),
		mcp.WithString("description",
			mcp.Required(),
			mcp.Description("Free-form description")),
		mcp.WithString("due_date",
			mcp.Required(),
			mcp.Description("Due date, free-form (e.g. 2024-03-31)")),
		mcp.WithNumber("priority",
			mcp.Required(),
			mcp.Description("Non-negative integer; higher values sort first")),
		mcp.WithBoolean("auto_delete",
			mcp.Description("Drop the task on the next refresh (defaults to false)")),
	)
}

// removeTasksTool returns a tool definition for removing tasks by name pattern.
func removeTasksTool() mcp.Tool {
	return mcp.NewTool("remove_tasks",
		mcp.WithDescription("Remove every task whose name matches a regular expression. Use ^ and $ to match a whole name."),
		mcp.WithString("pattern",
			mcp.Required(),
			mcp.Description("Regular expression matched against task names")),
	)
}

// clearTasksTool returns a tool definition for removing all tasks.
func clearTasksTool() mcp.Tool {
	return mcp.NewTool("clear_tasks",
		mcp.WithDescription("Remove all tasks."),
	)
}

// refreshTasksTool returns a tool definition for merging in recurring tasks.
func refreshTasksTool() mcp.Tool {
	return mcp.NewTool("refresh_tasks",
		mcp.WithDescription("Drop auto-delete tasks and merge in tasks from the recurring sources."),
	)
}
