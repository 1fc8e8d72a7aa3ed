// Package config resolves runtime settings from the environment.
//
// Settings come from, in increasing priority: built-in defaults, an
// optional .env file in the data directory, and the process environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/JamesPrial/todo/internal/pathutil"
)

// Storage backend names accepted by TODO_STORAGE_BACKEND.
const (
	BackendText     = "text"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Environment variables read by Load.
const (
	EnvHome           = "TODO_HOME"
	EnvBackend        = "TODO_STORAGE_BACKEND"
	EnvTasksFile      = "TODO_FILE"
	EnvSQLitePath     = "TODO_SQLITE_PATH"
	EnvPostgresURL    = "TODO_POSTGRES_URL"
	EnvRecurringFile  = "TODO_RECURRING_FILE"
	EnvRefreshCommand = "TODO_REFRESH_COMMAND"
	EnvLogLevel       = "TODO_LOG_LEVEL"
	EnvDebug          = "DEBUG"
)

// Default file names inside the data directory.
const (
	DefaultTasksFile     = "tasks.txt"
	DefaultSQLiteFile    = "tasks.db"
	DefaultRecurringFile = "recurring.toml"
	DefaultLogLevel      = "warn"
	envFileName          = ".env"
)

// Config holds resolved settings. All paths are absolute.
type Config struct {
	// DataDir holds the task file, the recurring definitions and .env.
	DataDir string

	// Backend is one of BackendText, BackendSQLite or BackendPostgres.
	Backend string

	TasksFile     string
	SQLitePath    string
	PostgresURL   string
	RecurringFile string

	// RefreshCommand, when set, is run by refresh and its output parsed as task lines.
	RefreshCommand string

	LogLevel string
}

// Load resolves the data directory (TODO_HOME, or .todo next to the
// executable) and reads the rest of the settings relative to it.
func Load() (*Config, error) {
	dataDir := strings.TrimSpace(os.Getenv(EnvHome))
	if dataDir == "" {
		var err error
		dataDir, err = pathutil.DefaultDataDir()
		if err != nil {
			return nil, err
		}
	}
	return LoadFromDir(dataDir)
}

// LoadFromDir reads settings using dataDir as the data directory.
//
// Custom file paths are confined to dataDir; a path that escapes it is an
// error.
func LoadFromDir(dataDir string) (*Config, error) {
	abs, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory: %w", err)
	}

	// godotenv.Load never overrides variables that are already set.
	envFile := filepath.Join(abs, envFileName)
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		DataDir:        abs,
		Backend:        strings.ToLower(getEnv(EnvBackend, BackendText)),
		PostgresURL:    getEnv(EnvPostgresURL, ""),
		RefreshCommand: getEnv(EnvRefreshCommand, ""),
		LogLevel:       strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
	}
	if getEnv(EnvDebug, "") != "" {
		cfg.LogLevel = "debug"
	}

	paths := []struct {
		env      string
		fallback string
		dst      *string
	}{
		{EnvTasksFile, DefaultTasksFile, &cfg.TasksFile},
		{EnvSQLitePath, DefaultSQLiteFile, &cfg.SQLitePath},
		{EnvRecurringFile, DefaultRecurringFile, &cfg.RecurringFile},
	}
	for _, p := range paths {
		resolved, err := resolvePath(abs, p.env, p.fallback)
		if err != nil {
			return nil, err
		}
		*p.dst = resolved
	}

	switch cfg.Backend {
	case BackendText, BackendSQLite, BackendPostgres:
	default:
		return nil, fmt.Errorf("unknown storage backend: %q. Expected %q, %q or %q",
			cfg.Backend, BackendText, BackendSQLite, BackendPostgres)
	}

	return cfg, nil
}

// resolvePath reads env as a path relative to dataDir, defaulting to fallback.
func resolvePath(dataDir, env, fallback string) (string, error) {
	custom := getEnv(env, "")
	if custom == "" {
		return filepath.Join(dataDir, fallback), nil
	}

	safe, err := pathutil.ResolveSafePath(dataDir, custom)
	if err != nil {
		return "", fmt.Errorf("invalid %s: %w", env, err)
	}
	return safe, nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
