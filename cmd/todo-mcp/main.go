// Package main implements the MCP server for the todo task list.
//
// The server exposes list, add, remove, clear and refresh as tools and
// communicates via stdio JSON-RPC (Model Context Protocol). Settings are
// read from the same environment variables as the todo command.
package main

import (
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/JamesPrial/todo/internal/config"
	"github.com/JamesPrial/todo/internal/logging"
	"github.com/JamesPrial/todo/internal/mcpserver"
	"github.com/JamesPrial/todo/internal/recurring"
	"github.com/JamesPrial/todo/internal/storage"
	"github.com/JamesPrial/todo/internal/todo"
)

func run() int {
	errLogger := log.New(os.Stderr, "[todo-mcp] ", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		errLogger.Printf("Failed to load configuration: %v", err)
		return 1
	}

	backend, err := storage.GetStorageBackend(cfg)
	if err != nil {
		errLogger.Printf("Failed to open storage: %v", err)
		return 1
	}

	store := todo.NewStore(backend, logging.New(cfg.LogLevel, os.Stderr))
	srv, err := mcpserver.NewServer(store, recurring.FromConfig(cfg))
	if err != nil {
		errLogger.Printf("Failed to create MCP server: %v", err)
		return 1
	}

	if err := server.ServeStdio(srv, server.WithErrorLogger(errLogger)); err != nil {
		errLogger.Printf("Server error: %v", err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(run())
}
