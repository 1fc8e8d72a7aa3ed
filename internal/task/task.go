// Package task defines the task record and its pipe-delimited line format.
//
// A task file holds one record per line:
//
//	name|description|due_date|priority|auto_delete
//
// where auto_delete is "1" or "0". The due date is an opaque string; it is
// stored and printed verbatim and never interpreted as a calendar date.
package task

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Separator joins the fields of a serialized task.
const Separator = "|"

// MaxLineSize bounds a single serialized record, including its separators.
const MaxLineSize = 1 << 20

// fieldCount is the number of fields in a well-formed record.
const fieldCount = 5

// ErrMalformedRecord is returned when a line or a field value cannot be
// represented as a task record.
var ErrMalformedRecord = errors.New("malformed task record")

// Task is a single entry in the task list.
type Task struct {
	// Name identifies the task. Names are unique within a store.
	Name string `json:"name"`

	// Description is free text shown under the name when listing.
	Description string `json:"description"`

	// DueDate is an opaque, user supplied due date.
	DueDate string `json:"due_date"`

	// Priority orders the list. A task is placed ahead of every task with
	// a strictly lower priority value.
	Priority uint32 `json:"priority"`

	// AutoDelete marks a task that expires on the next refresh unless the
	// recurring source issues it again.
	AutoDelete bool `json:"auto_delete"`
}

// Parse decodes a single record line.
//
// Returns ErrMalformedRecord if the line has fewer than five fields or the
// priority is not a non-negative integer. Fields past the fifth are ignored.
func Parse(line string) (Task, error) {
	fields := strings.Split(line, Separator)
	if len(fields) < fieldCount {
		return Task{}, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedRecord, fieldCount, len(fields))
	}

	priority, err := strconv.ParseUint(fields[3], 10, 32)
	if err != nil {
		return Task{}, fmt.Errorf("%w: invalid priority %q", ErrMalformedRecord, fields[3])
	}

	return Task{
		Name:        fields[0],
		Description: fields[1],
		DueDate:     fields[2],
		Priority:    uint32(priority),
		AutoDelete:  fields[4] == "1",
	}, nil
}

// String encodes the task as a record line without a trailing newline.
func (t Task) String() string {
	flag := "0"
	if t.AutoDelete {
		flag = "1"
	}

	var b strings.Builder
	b.WriteString(t.Name)
	b.WriteString(Separator)
	b.WriteString(t.Description)
	b.WriteString(Separator)
	b.WriteString(t.DueDate)
	b.WriteString(Separator)
	b.WriteString(strconv.FormatUint(uint64(t.Priority), 10))
	b.WriteString(Separator)
	b.WriteString(flag)
	return b.String()
}

// Validate reports whether the task survives a String/Parse round trip.
//
// Names must be non-empty, and no field may contain the separator or a
// line break. Whitespace is kept as is, so any non-empty name Parse reads
// from a file can be stored again.
func (t Task) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("%w: name is empty", ErrMalformedRecord)
	}

	fields := []struct {
		label string
		value string
	}{
		{"name", t.Name},
		{"description", t.Description},
		{"due date", t.DueDate},
	}
	for _, f := range fields {
		if strings.ContainsAny(f.value, Separator+"\r\n") {
			return fmt.Errorf("%w: %s %q contains %q or a line break", ErrMalformedRecord, f.label, f.value, Separator)
		}
	}

	return nil
}

// ParsePriority parses a priority argument given on the command line.
func ParsePriority(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: priority must be a non-negative integer, got %q", ErrMalformedRecord, s)
	}
	return uint32(v), nil
}

// ParseAutoDelete parses an auto-delete argument given on the command line.
//
// Accepts 1/0, true/false and yes/no, case-insensitively.
func ParseAutoDelete(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes":
		return true, nil
	case "0", "false", "no":
		return false, nil
	default:
		return false, fmt.Errorf("%w: auto_delete must be true or false, got %q", ErrMalformedRecord, s)
	}
}
