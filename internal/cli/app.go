// Package cli implements the todo command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/JamesPrial/todo/internal/config"
	"github.com/JamesPrial/todo/internal/logging"
	"github.com/JamesPrial/todo/internal/recurring"
	"github.com/JamesPrial/todo/internal/storage"
	"github.com/JamesPrial/todo/internal/todo"
)

var (
	// ErrMissingArgument is returned when a command gets too few arguments.
	ErrMissingArgument = errors.New("missing argument")

	// ErrUnexpectedArgument is returned when a command gets too many arguments.
	ErrUnexpectedArgument = errors.New("unexpected argument")

	// ErrUnknownCommand is returned for an unrecognised subcommand.
	ErrUnknownCommand = errors.New("unknown command")
)

// Options configures NewRootCmd. Zero values select the real environment.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer

	// LoadConfig resolves settings; defaults to config.Load.
	LoadConfig func() (*config.Config, error)

	// Source builds the recurring source for refresh; defaults to
	// recurring.FromConfig.
	Source func(cfg *config.Config) recurring.Source

	// NoColor disables highlighting in list output.
	NoColor bool
}

func (o *Options) setDefaults() {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.LoadConfig == nil {
		o.LoadConfig = config.Load
	}
	if o.Source == nil {
		o.Source = func(cfg *config.Config) recurring.Source { return recurring.FromConfig(cfg) }
	}
}

// app is opened lazily so that help and completion output never touch
// the data directory.
type app struct {
	opts   Options
	cfg    *config.Config
	store  *todo.Store
	logger hclog.Logger
}

func (a *app) open() error {
	if a.store != nil {
		return nil
	}

	cfg, err := a.opts.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logging.New(cfg.LogLevel, a.opts.Stderr)
	logger.Debug("configuration loaded", "data_dir", cfg.DataDir, "backend", cfg.Backend)

	backend, err := storage.GetStorageBackend(cfg)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.store = todo.NewStore(backend, logger)
	return nil
}
