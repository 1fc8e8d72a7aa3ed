package recurring_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/JamesPrial/todo/internal/recurring"
	"github.com/JamesPrial/todo/internal/task"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("command source tests use POSIX shell syntax")
	}
}

func Test_CommandSource_ParsesOutput(t *testing.T) {
	skipOnWindows(t)
	t.Parallel()

	dir := t.TempDir()
	content := "gym|leg day|tonight|4|1\n\nbills|pay rent|1st|9|0\n"
	if err := os.WriteFile(filepath.Join(dir, "feed.txt"), []byte(content), 0o644); err != nil {
		t.Fatalf("write feed: %v", err)
	}

	got, err := recurring.NewCommandSource("cat feed.txt", dir).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}

	want := []task.Task{
		{Name: "gym", Description: "leg day", DueDate: "tonight", Priority: 4, AutoDelete: true},
		{Name: "bills", Description: "pay rent", DueDate: "1st", Priority: 9},
	}
	if len(got) != len(want) {
		t.Fatalf("Fetch() returned %d tasks, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("task[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func Test_CommandSource_LongLine(t *testing.T) {
	skipOnWindows(t)
	t.Parallel()

	dir := t.TempDir()
	long := strings.Repeat("a", 200*1024)
	if err := os.WriteFile(filepath.Join(dir, "feed.txt"), []byte("big|"+long+"|x|1|0\n"), 0o644); err != nil {
		t.Fatalf("write feed: %v", err)
	}

	got, err := recurring.NewCommandSource("cat feed.txt", dir).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Description != long {
		t.Errorf("Fetch() did not return the long record intact (%d tasks)", len(got))
	}
}

func Test_CommandSource_NonZeroExit(t *testing.T) {
	skipOnWindows(t)
	t.Parallel()

	_, err := recurring.NewCommandSource("echo nope >&2; exit 3", "").Fetch(context.Background())
	if err == nil {
		t.Fatal("Fetch() expected error, got nil")
	}
	if !strings.Contains(err.Error(), "nope") {
		t.Errorf("error = %q, want stderr included", err.Error())
	}
}

func Test_CommandSource_MalformedLine(t *testing.T) {
	skipOnWindows(t)
	t.Parallel()

	_, err := recurring.NewCommandSource("echo 'a|b|c|x|0'", "").Fetch(context.Background())
	if !errors.Is(err, task.ErrMalformedRecord) {
		t.Errorf("Fetch() error = %v, want ErrMalformedRecord", err)
	}
}

func Test_CommandSource_EmptyOutput(t *testing.T) {
	skipOnWindows(t)
	t.Parallel()

	got, err := recurring.NewCommandSource("true", "").Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Fetch() = %v, want empty", got)
	}
}
