// Package pathutil locates the data directory and confines user supplied
// paths to it.
package pathutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DataDirName is the directory created next to the executable.
const DataDirName = ".todo"

// ErrEscapesBase is returned when a path resolves outside its base directory.
var ErrEscapesBase = errors.New("path escapes base directory")

// ExecutableDir returns the directory holding the running binary, with
// symlinks resolved so that a linked binary shares its target's data.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to get executable path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// DefaultDataDir returns <executable dir>/.todo.
func DefaultDataDir() (string, error) {
	dir, err := ExecutableDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DataDirName), nil
}

// ResolveSafePath resolves userPath against baseDir and verifies that the
// result, after following symlinks, is still inside baseDir.
//
// Relative paths are joined to baseDir; absolute paths are checked as is.
// Neither baseDir nor userPath needs to exist yet: the deepest existing
// ancestor is resolved and the missing components are appended to it.
//
// Returns an error for empty paths, paths containing NUL, and paths that
// escape baseDir (ErrEscapesBase).
func ResolveSafePath(baseDir, userPath string) (string, error) {
	if strings.TrimSpace(userPath) == "" {
		return "", fmt.Errorf("path is empty or whitespace-only")
	}
	if strings.ContainsRune(userPath, 0) {
		return "", fmt.Errorf("path contains null byte")
	}

	candidate := userPath
	if !filepath.IsAbs(candidate) {
		candidate = filepath.Join(baseDir, candidate)
	}

	resolved, err := resolveExisting(candidate)
	if err != nil {
		return "", err
	}
	base, err := resolveExisting(baseDir)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(base, resolved)
	if err != nil {
		return "", fmt.Errorf("failed to compute relative path: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrEscapesBase, userPath)
	}

	return resolved, nil
}

// resolveExisting follows symlinks in the longest existing prefix of path
// and re-appends the components that do not exist yet.
func resolveExisting(path string) (string, error) {
	current := filepath.Clean(path)
	var missing []string

	for {
		resolved, err := filepath.EvalSymlinks(current)
		if err == nil {
			for i := len(missing) - 1; i >= 0; i-- {
				resolved = filepath.Join(resolved, missing[i])
			}
			return resolved, nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("failed to resolve symlinks: %w", err)
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("no existing parent directory found for %s", path)
		}
		missing = append(missing, filepath.Base(current))
		current = parent
	}
}
