package storage

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/JamesPrial/todo/internal/task"
)

// TextBackend implements Backend using a pipe-delimited text file with one
// task per line.
type TextBackend struct {
	// Path is the absolute path to the task file.
	Path string
}

// NewTextBackend creates a TextBackend for the given file path.
func NewTextBackend(path string) *TextBackend {
	return &TextBackend{
		Path: path,
	}
}

// EnsureFile creates the task file and its parent directory if they do not
// exist. An existing file is left untouched.
func (b *TextBackend) EnsureFile() error {
	if err := os.MkdirAll(filepath.Dir(b.Path), 0o755); err != nil {
		return fmt.Errorf("%w: failed to create tasks directory: %w", ErrIO, err)
	}

	f, err := os.OpenFile(b.Path, os.O_RDONLY|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("%w: failed to create tasks file: %w", ErrIO, err)
	}
	return f.Close()
}

// Load reads every task from the file, skipping blank lines.
//
// A missing file is an error; callers create it with EnsureFile first.
// Malformed lines are reported with their 1-based line number.
func (b *TextBackend) Load() ([]task.Task, error) {
	f, err := os.Open(b.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open tasks file: %w", ErrIO, err)
	}
	defer func() { _ = f.Close() }()

	tasks := make([]task.Task, 0)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), task.MaxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		t, err := task.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", b.Path, lineNo, err)
		}
		tasks = append(tasks, t)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: can't read from tasks file: %w", ErrIO, err)
	}

	return tasks, nil
}

// Save rewrites the whole file from tasks.
//
// The content is written to a temporary file in the same directory and
// renamed over the target, so a failure leaves the previous file intact.
func (b *TextBackend) Save(tasks []task.Task) error {
	var content strings.Builder
	for _, t := range tasks {
		content.WriteString(t.String())
		content.WriteByte('\n')
	}

	dir := filepath.Dir(b.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create tasks directory: %w", ErrIO, err)
	}

	tmpFile, err := os.CreateTemp(dir, ".tasks-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: failed to open tasks file: %w", ErrIO, err)
	}
	tmpPath := tmpFile.Name()

	// CreateTemp uses 0600; keep the task file readable like one made by EnsureFile.
	if err := tmpFile.Chmod(0o644); err != nil {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to set tasks file mode: %w", ErrIO, err)
	}

	_, writeErr := tmpFile.WriteString(content.String())
	closeErr := tmpFile.Close()

	if writeErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to write to tasks file: %w", ErrIO, writeErr)
	}
	if closeErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to write to tasks file: %w", ErrIO, closeErr)
	}

	if err := os.Rename(tmpPath, b.Path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to replace tasks file: %w", ErrIO, err)
	}

	return nil
}
