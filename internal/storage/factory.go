package storage

import (
	"fmt"

	"github.com/JamesPrial/todo/internal/config"
)

// GetStorageBackend returns the backend selected by cfg.Backend.
//
// The text backend's file is created if missing so that a fresh install
// starts with an empty list. SQL backends create their schema on open.
//
// Returns an error if the backend type is unknown or cannot be opened.
func GetStorageBackend(cfg *config.Config) (Backend, error) {
	switch cfg.Backend {
	case config.BackendText, "":
		backend := NewTextBackend(cfg.TasksFile)
		if err := backend.EnsureFile(); err != nil {
			return nil, err
		}
		return backend, nil

	case config.BackendSQLite:
		return NewSQLiteBackend(cfg.SQLitePath)

	case config.BackendPostgres:
		if cfg.PostgresURL == "" {
			return nil, fmt.Errorf("postgres backend requires %s", config.EnvPostgresURL)
		}
		return NewPostgresBackend(cfg.PostgresURL)

	default:
		return nil, fmt.Errorf("unknown storage backend: %q. Expected %q, %q or %q",
			cfg.Backend, config.BackendText, config.BackendSQLite, config.BackendPostgres)
	}
}
