// Package storage persists the task list.
//
// Every backend stores the whole ordered list at once: Load returns all
// tasks in stored order and Save replaces them. Backends never merge or
// reorder; ordering rules live in the todo package.
package storage

import (
	"errors"

	"github.com/JamesPrial/todo/internal/task"
)

// ErrIO is wrapped by every error caused by the underlying medium failing
// to open, read or write.
var ErrIO = errors.New("task storage I/O error")

// Backend defines the contract for task list persistence.
type Backend interface {
	// Load returns all tasks in stored order.
	//
	// Returns an error wrapping ErrIO if the storage cannot be read, or
	// task.ErrMalformedRecord if stored data does not decode.
	Load() ([]task.Task, error)

	// Save replaces the stored list with tasks.
	//
	// Implementations must leave the previous list intact if the write
	// fails part way.
	Save(tasks []task.Task) error
}
