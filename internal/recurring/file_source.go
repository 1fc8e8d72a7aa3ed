package recurring

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/JamesPrial/todo/internal/task"
)

// DatePlaceholder in a definition's due field expands to the refresh date.
const DatePlaceholder = "{date}"

// Definition is one [[task]] table in the recurring file.
//
//	[[task]]
//	name = "standup"
//	description = "daily standup notes"
//	due = "{date} 09:30"
//	priority = 5
//	auto_delete = true
//	days = ["mon", "tue", "wed", "thu", "fri"]
type Definition struct {
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Due         string   `toml:"due"`
	Priority    uint32   `toml:"priority"`
	AutoDelete  bool     `toml:"auto_delete"`
	Days        []string `toml:"days"`
}

type definitionsFile struct {
	Tasks []Definition `toml:"task"`
}

// FileSource reads recurring task definitions from a TOML file.
type FileSource struct {
	// Path is the definitions file. A missing file issues no tasks.
	Path string

	// Now returns the refresh time; defaults to time.Now.
	Now func() time.Time
}

// NewFileSource returns a FileSource reading path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path, Now: time.Now}
}

// Fetch returns the definitions scheduled for today.
func (s *FileSource) Fetch(ctx context.Context) ([]task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	defs, err := LoadDefinitions(s.Path)
	if err != nil {
		return nil, err
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	today := now()

	tasks := make([]task.Task, 0, len(defs))
	for _, d := range defs {
		due, err := d.scheduledOn(today.Weekday())
		if err != nil {
			return nil, fmt.Errorf("%s: task %q: %w", s.Path, d.Name, err)
		}
		if !due {
			continue
		}
		tasks = append(tasks, d.Task(today))
	}
	return tasks, nil
}

// LoadDefinitions decodes the definitions file at path.
//
// Returns no definitions and no error if the file does not exist.
func LoadDefinitions(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read recurring tasks file: %w", err)
	}

	var file definitionsFile
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown keys %v", path, undecoded)
	}
	for _, d := range file.Tasks {
		if err := d.validateDays(); err != nil {
			return nil, fmt.Errorf("%s: task %q: %w", path, d.Name, err)
		}
	}

	return file.Tasks, nil
}

// Task renders the definition as a task for the given day.
func (d Definition) Task(day time.Time) task.Task {
	return task.Task{
		Name:        d.Name,
		Description: d.Description,
		DueDate:     strings.ReplaceAll(d.Due, DatePlaceholder, day.Format(time.DateOnly)),
		Priority:    d.Priority,
		AutoDelete:  d.AutoDelete,
	}
}

// validateDays checks every weekday name, whatever day it is today.
func (d Definition) validateDays() error {
	for _, name := range d.Days {
		if _, err := parseWeekday(name); err != nil {
			return err
		}
	}
	return nil
}

// scheduledOn reports whether the definition is due on day. An empty Days
// list means every day.
func (d Definition) scheduledOn(day time.Weekday) (bool, error) {
	if err := d.validateDays(); err != nil {
		return false, err
	}
	if len(d.Days) == 0 {
		return true, nil
	}
	for _, name := range d.Days {
		if wd, _ := parseWeekday(name); wd == day {
			return true, nil
		}
	}
	return false, nil
}

var weekdays = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

func parseWeekday(name string) (time.Weekday, error) {
	wd, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown weekday %q", name)
	}
	return wd, nil
}
