// Package filter provides name predicates used to select tasks.
//
// The store never sees a regular expression directly; it is handed a
// Matcher, so the matching strategy can change without touching I/O code.
package filter

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidPattern is returned when a pattern does not compile.
var ErrInvalidPattern = errors.New("invalid regular expression")

// Matcher decides whether a task name is selected.
type Matcher interface {
	Match(name string) bool
}

// MatcherFunc adapts an ordinary function to the Matcher interface.
type MatcherFunc func(name string) bool

// Match calls f(name).
func (f MatcherFunc) Match(name string) bool {
	return f(name)
}

// All returns a Matcher that selects every name.
func All() Matcher {
	return MatcherFunc(func(string) bool { return true })
}

// Regexp selects names containing a match of the compiled expression.
type Regexp struct {
	re *regexp.Regexp
}

// Match reports whether name contains any match of the expression.
// Patterns are not implicitly anchored; use ^ and $ for whole-name matches.
func (r *Regexp) Match(name string) bool {
	return r.re.MatchString(name)
}

// String returns the source pattern.
func (r *Regexp) String() string {
	return r.re.String()
}

// Compile builds a Matcher from a regular expression.
//
// Returns an error wrapping ErrInvalidPattern if the pattern does not compile.
func Compile(pattern string) (*Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
	}
	return &Regexp{re: re}, nil
}

// CompileOptional compiles pattern, or returns All when pattern is empty.
func CompileOptional(pattern string) (Matcher, error) {
	if pattern == "" {
		return All(), nil
	}
	return Compile(pattern)
}
