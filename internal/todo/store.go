// Package todo implements the task list operations on top of a storage
// backend.
//
// Every operation loads the full list, works on it in memory, and saves
// the result in one call. Nothing is cached between operations, and a
// failure before Save leaves the stored list untouched. Operations on one
// Store are serialized; separate processes are not coordinated.
package todo

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/JamesPrial/todo/internal/filter"
	"github.com/JamesPrial/todo/internal/recurring"
	"github.com/JamesPrial/todo/internal/storage"
	"github.com/JamesPrial/todo/internal/task"
)

// ErrDuplicateName is returned when adding a task whose name is taken.
var ErrDuplicateName = errors.New("duplicate task")

// Store performs task list operations against a Backend. It is safe for
// concurrent use.
type Store struct {
	// mu is held across each load-modify-save cycle.
	mu      sync.Mutex
	backend storage.Backend
	logger  hclog.Logger
}

// NewStore returns a Store over backend. A nil logger discards output.
func NewStore(backend storage.Backend, logger hclog.Logger) *Store {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Store{
		backend: backend,
		logger:  logger.Named("store"),
	}
}

// Load returns every task in stored order.
func (s *Store) Load() ([]task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() ([]task.Task, error) {
	tasks, err := s.backend.Load()
	if err != nil {
		return nil, err
	}
	s.logger.Debug("loaded tasks", "count", len(tasks))
	return tasks, nil
}

func (s *Store) save(tasks []task.Task) error {
	if err := s.backend.Save(tasks); err != nil {
		return err
	}
	s.logger.Debug("saved tasks", "count", len(tasks))
	return nil
}

// Add inserts t ahead of the first task with a strictly lower priority.
//
// Returns task.ErrMalformedRecord if t cannot be stored and
// ErrDuplicateName if the name is taken; the stored list is unchanged in
// both cases.
func (s *Store) Add(t task.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.load()
	if err != nil {
		return err
	}

	updated, err := Insert(tasks, t)
	if err != nil {
		return err
	}

	s.logger.Debug("adding task", "name", t.Name, "priority", t.Priority, "position", insertPosition(tasks, t))
	return s.save(updated)
}

// Remove deletes every task whose name m matches and returns how many were
// removed. The list is saved even when nothing matched.
func (s *Store) Remove(m filter.Matcher) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.load()
	if err != nil {
		return 0, err
	}

	kept := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if m.Match(t.Name) {
			s.logger.Debug("removing task", "name", t.Name)
			continue
		}
		kept = append(kept, t)
	}

	if err := s.save(kept); err != nil {
		return 0, err
	}
	return len(tasks) - len(kept), nil
}

// Clear deletes every task.
func (s *Store) Clear() (int, error) {
	return s.Remove(filter.All())
}

// List returns the tasks whose name m matches, in stored order. It never
// writes to the backend.
func (s *Store) List(m filter.Matcher) ([]task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.load()
	if err != nil {
		return nil, err
	}

	matched := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if m.Match(t.Name) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

// Refresh fetches the recurring tasks from src and merges them into the
// list as described by Merge.
//
// The source is consulted before anything is loaded; if it fails, or
// issues a task that cannot be stored, the list is left as it was.
func (s *Store) Refresh(ctx context.Context, src recurring.Source) (MergeResult, error) {
	incoming, err := src.Fetch(ctx)
	if err != nil {
		return MergeResult{}, fmt.Errorf("failed to fetch recurring tasks: %w", err)
	}
	for _, t := range incoming {
		if err := t.Validate(); err != nil {
			return MergeResult{}, fmt.Errorf("recurring task %q: %w", t.Name, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.load()
	if err != nil {
		return MergeResult{}, err
	}

	result := Merge(tasks, incoming)
	s.logger.Debug("refresh merged",
		"expired", len(result.Expired),
		"skipped", len(result.Skipped),
		"added", len(result.Added),
	)
	if len(result.Skipped) > 0 {
		s.logger.Info("recurring tasks already present", "names", result.Skipped)
	}

	if err := s.save(result.Tasks); err != nil {
		return MergeResult{}, err
	}
	return result, nil
}
