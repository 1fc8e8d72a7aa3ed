package filter_test

import (
	"errors"
	"testing"

	"github.com/JamesPrial/todo/internal/filter"
)

func Test_Compile_Match(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		{pattern: "^A$", name: "A", want: true},
		{pattern: "^A$", name: "AB", want: false},
		{pattern: "A", name: "BAB", want: true},
		{pattern: "^work-", name: "work-report", want: true},
		{pattern: "^work-", name: "homework-1", want: false},
		{pattern: ".*", name: "", want: true},
		{pattern: "(?i)laundry", name: "Do LAUNDRY", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := filter.Compile(tt.pattern)
			if err != nil {
				t.Fatalf("Compile(%q) unexpected error: %v", tt.pattern, err)
			}
			if got := m.Match(tt.name); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func Test_Compile_InvalidPattern(t *testing.T) {
	t.Parallel()

	for _, pattern := range []string{"(", "[a-", "*x", `\`} {
		_, err := filter.Compile(pattern)
		if !errors.Is(err, filter.ErrInvalidPattern) {
			t.Errorf("Compile(%q) error = %v, want ErrInvalidPattern", pattern, err)
		}
	}
}

func Test_All_MatchesEverything(t *testing.T) {
	t.Parallel()

	m := filter.All()
	for _, name := range []string{"", "A", "anything at all"} {
		if !m.Match(name) {
			t.Errorf("All().Match(%q) = false, want true", name)
		}
	}
}

func Test_CompileOptional(t *testing.T) {
	t.Parallel()

	m, err := filter.CompileOptional("")
	if err != nil {
		t.Fatalf("CompileOptional(\"\") unexpected error: %v", err)
	}
	if !m.Match("x") {
		t.Error("empty pattern should match everything")
	}

	m, err = filter.CompileOptional("^a")
	if err != nil {
		t.Fatalf("CompileOptional(\"^a\") unexpected error: %v", err)
	}
	if m.Match("ba") {
		t.Error("^a should not match \"ba\"")
	}

	if _, err := filter.CompileOptional("("); !errors.Is(err, filter.ErrInvalidPattern) {
		t.Errorf("CompileOptional(\"(\") error = %v, want ErrInvalidPattern", err)
	}
}

func Test_MatcherFunc(t *testing.T) {
	t.Parallel()

	var m filter.Matcher = filter.MatcherFunc(func(name string) bool { return len(name) == 3 })
	if !m.Match("abc") || m.Match("ab") {
		t.Error("MatcherFunc did not delegate to the wrapped function")
	}
}
