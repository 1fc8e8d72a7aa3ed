package recurring

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/JamesPrial/todo/internal/task"
)

// CommandSource runs an external command and reads task lines, in the
// task file format, from its standard output.
type CommandSource struct {
	// Command is passed to the platform shell (sh -c, or cmd /C on Windows).
	Command string

	// Dir is the working directory; empty means the current directory.
	Dir string
}

// NewCommandSource returns a CommandSource running command in dir.
func NewCommandSource(command, dir string) *CommandSource {
	return &CommandSource{Command: command, Dir: dir}
}

// Fetch runs the command and parses its output. Blank lines are skipped.
//
// Returns an error if the command exits non-zero or prints a malformed line.
func (s *CommandSource) Fetch(ctx context.Context) ([]task.Task, error) {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.CommandContext(ctx, "cmd", "/C", s.Command)
	} else {
		cmd = exec.CommandContext(ctx, "sh", "-c", s.Command)
	}
	cmd.Dir = s.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("refresh command %q failed: %w: %s", s.Command, err, msg)
		}
		return nil, fmt.Errorf("refresh command %q failed: %w", s.Command, err)
	}

	tasks := make([]task.Task, 0)
	scanner := bufio.NewScanner(&stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), task.MaxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		t, err := task.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("refresh command output line %d: %w", lineNo, err)
		}
		tasks = append(tasks, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read refresh command output: %w", err)
	}

	return tasks, nil
}
