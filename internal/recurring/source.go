// Package recurring supplies the tasks that a refresh merges into the list.
//
// A Source is consulted once per refresh. Sources decide what is due today;
// the todo package decides where those tasks go.
package recurring

import (
	"context"

	"github.com/JamesPrial/todo/internal/config"
	"github.com/JamesPrial/todo/internal/task"
)

// Source issues the recurring tasks for the current refresh.
type Source interface {
	Fetch(ctx context.Context) ([]task.Task, error)
}

// SourceFunc adapts an ordinary function to the Source interface.
type SourceFunc func(ctx context.Context) ([]task.Task, error)

// Fetch calls f(ctx).
func (f SourceFunc) Fetch(ctx context.Context) ([]task.Task, error) {
	return f(ctx)
}

// Static is a Source that always issues the same tasks.
type Static []task.Task

// Fetch returns a copy of the static tasks.
func (s Static) Fetch(context.Context) ([]task.Task, error) {
	out := make([]task.Task, len(s))
	copy(out, s)
	return out, nil
}

// Multi concatenates the output of several sources, in order.
type Multi []Source

// Fetch queries each source in turn and stops at the first error.
func (m Multi) Fetch(ctx context.Context) ([]task.Task, error) {
	var out []task.Task
	for _, src := range m {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tasks, err := src.Fetch(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, tasks...)
	}
	return out, nil
}

// FromConfig returns the sources configured for refresh: the definitions
// file, followed by the refresh command when one is set.
func FromConfig(cfg *config.Config) Source {
	sources := Multi{NewFileSource(cfg.RecurringFile)}
	if cfg.RefreshCommand != "" {
		sources = append(sources, NewCommandSource(cfg.RefreshCommand, cfg.DataDir))
	}
	return sources
}
