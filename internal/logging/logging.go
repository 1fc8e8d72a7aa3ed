// Package logging builds the leveled logger shared by the CLI and the MCP server.
package logging

import (
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Name prefixes every log line.
const Name = "todo"

// New returns a logger writing to w at the named level.
//
// Unknown level names fall back to warn, so a typo in TODO_LOG_LEVEL never
// silences errors.
func New(level string, w io.Writer) hclog.Logger {
	lvl := hclog.LevelFromString(strings.TrimSpace(level))
	if lvl == hclog.NoLevel {
		lvl = hclog.Warn
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   Name,
		Level:  lvl,
		Output: w,
	})
}

// Discard returns a logger that drops everything.
func Discard() hclog.Logger {
	return hclog.NewNullLogger()
}
