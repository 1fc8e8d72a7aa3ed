package mcpserver

import (
	"errors"

	"github.com/mark3labs/mcp-go/server"

	"github.com/JamesPrial/todo/internal/recurring"
	"github.com/JamesPrial/todo/internal/todo"
)

// NewServer creates an MCP server with the task tools registered against store.
// src feeds refresh_tasks.
func NewServer(store *todo.Store, src recurring.Source) (*server.MCPServer, error) {
	if store == nil {
		return nil, errors.New("mcpserver: nil store")
	}
	if src == nil {
		src = recurring.Static(nil)
	}
	h := &TaskHandler{store: store, source: src}

	s := server.NewMCPServer(
		"todo",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	s.AddTool(listTasksTool(), h.HandleListTasks)
	s.AddTool(addTaskTool(), h.HandleAddTask)
	s.AddTool(removeTasksTool(), h.HandleRemoveTasks)
	s.AddTool(clearTasksTool(), h.HandleClearTasks)
	s.AddTool(refreshTasksTool(), h.HandleRefreshTasks)

	return s, nil
}
