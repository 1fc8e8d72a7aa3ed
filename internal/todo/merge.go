package todo

import (
	"fmt"

	"github.com/JamesPrial/todo/internal/task"
)

// insertPosition returns the index at which t belongs: immediately before
// the first task whose priority is strictly lower than t's, or the end of
// the list. Equal priorities keep their existing relative order and the
// newcomer goes after them.
func insertPosition(tasks []task.Task, t task.Task) int {
	for i, existing := range tasks {
		if existing.Priority < t.Priority {
			return i
		}
	}
	return len(tasks)
}

// Insert returns a new list with t placed by priority.
//
// Returns ErrDuplicateName if a task with the same name is present. The
// input slice is never modified.
func Insert(tasks []task.Task, t task.Task) ([]task.Task, error) {
	for _, existing := range tasks {
		if existing.Name == t.Name {
			return nil, fmt.Errorf("%w '%s'", ErrDuplicateName, t.Name)
		}
	}

	pos := insertPosition(tasks, t)
	out := make([]task.Task, 0, len(tasks)+1)
	out = append(out, tasks[:pos]...)
	out = append(out, t)
	out = append(out, tasks[pos:]...)
	return out, nil
}

// MergeResult describes the outcome of Merge.
type MergeResult struct {
	// Tasks is the merged list in stored order.
	Tasks []task.Task

	// Expired lists auto-delete tasks dropped from the existing list.
	Expired []string

	// Skipped lists incoming tasks ignored because their name was already
	// taken by a surviving task or by an earlier incoming task.
	Skipped []string

	// Added lists incoming tasks that made it into Tasks.
	Added []string
}

// Merge reconciles the stored list with tasks issued by a recurring source.
//
// Existing auto-delete tasks are dropped first. Incoming tasks whose name
// matches a surviving task, or repeats an earlier incoming task, are
// skipped so names stay unique. The rest are merged in: walking the
// surviving tasks in order, every pending incoming task with a higher
// priority value than the current task is emitted ahead of it, in source
// order, and consumed. Whatever is still pending at the end is appended.
// Each incoming task is emitted at most once.
func Merge(existing, incoming []task.Task) MergeResult {
	var result MergeResult

	kept := make([]task.Task, 0, len(existing))
	taken := make(map[string]bool, len(existing)+len(incoming))
	for _, t := range existing {
		if t.AutoDelete {
			result.Expired = append(result.Expired, t.Name)
			continue
		}
		kept = append(kept, t)
		taken[t.Name] = true
	}

	pending := make([]task.Task, 0, len(incoming))
	for _, t := range incoming {
		if taken[t.Name] {
			result.Skipped = append(result.Skipped, t.Name)
			continue
		}
		taken[t.Name] = true
		pending = append(pending, t)
	}

	consumed := make([]bool, len(pending))
	merged := make([]task.Task, 0, len(kept)+len(pending))
	for _, t := range kept {
		for i, p := range pending {
			if consumed[i] || t.Priority >= p.Priority {
				continue
			}
			merged = append(merged, p)
			result.Added = append(result.Added, p.Name)
			consumed[i] = true
		}
		merged = append(merged, t)
	}
	for i, p := range pending {
		if !consumed[i] {
			merged = append(merged, p)
			result.Added = append(result.Added, p.Name)
		}
	}

	result.Tasks = merged
	return result
}
