package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/JamesPrial/todo/internal/filter"
	"github.com/JamesPrial/todo/internal/recurring"
	"github.com/JamesPrial/todo/internal/task"
	"github.com/JamesPrial/todo/internal/todo"
)

// TaskHandler serves the task tools. Failures are reported as tool-result
// errors so the client sees the message; the returned error is always nil.
type TaskHandler struct {
	store  *todo.Store
	source recurring.Source
}

// HandleListTasks returns the tasks, optionally filtered by pattern, as JSON.
func (h *TaskHandler) HandleListTasks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	m, err := filter.CompileOptional(request.GetString("pattern", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	tasks, err := h.store.List(m)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list tasks: %v", err)), nil
	}
	if tasks == nil {
		tasks = []task.Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode tasks: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// HandleAddTask inserts a task by priority.
func (h *TaskHandler) HandleAddTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var t task.Task
	for _, field := range []struct {
		param string
		dst   *string
	}{
		{"name", &t.Name},
		{"description", &t.Description},
		{"due_date", &t.DueDate},
	} {
		v, err := request.RequireString(field.param)
		if err != nil {
			return mcp.NewToolResultError("Missing required parameter: " + field.param), nil
		}
		*field.dst = v
	}

	priority, err := request.RequireFloat("priority")
	if err != nil {
		return mcp.NewToolResultError("Missing required parameter: priority"), nil
	}
	if priority < 0 || priority > math.MaxUint32 || priority != math.Trunc(priority) {
		return mcp.NewToolResultError(fmt.Sprintf("priority must be an integer between 0 and %d, got %v", uint32(math.MaxUint32), priority)), nil
	}
	t.Priority = uint32(priority)
	t.AutoDelete = request.GetBool("auto_delete", false)

	if err := h.store.Add(t); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to add task: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Added '%s'", t.Name)), nil
}

// HandleRemoveTasks removes every task whose name matches pattern.
func (h *TaskHandler) HandleRemoveTasks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pattern, err := request.RequireString("pattern")
	if err != nil {
		return mcp.NewToolResultError("Missing required parameter: pattern"), nil
	}
	m, err := filter.Compile(pattern)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	n, err := h.store.Remove(m)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to remove tasks: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Removed %d task(s)", n)), nil
}

// HandleClearTasks removes all tasks.
func (h *TaskHandler) HandleClearTasks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n, err := h.store.Clear()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to clear tasks: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Removed %d task(s)", n)), nil
}

// HandleRefreshTasks merges in recurring tasks.
func (h *TaskHandler) HandleRefreshTasks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := h.store.Refresh(ctx, h.source)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to refresh tasks: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Refreshed: %d added, %d expired, %d already present",
		len(result.Added), len(result.Expired), len(result.Skipped))), nil
}
