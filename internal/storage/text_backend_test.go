package storage_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"

	"github.com/JamesPrial/todo/internal/storage"
	"github.com/JamesPrial/todo/internal/task"
)

// sampleTasks is shared by every backend's tests.
func sampleTasks() []task.Task {
	return []task.Task{
		{Name: "A", Description: "d", DueDate: "2024-01-01", Priority: 5},
		{Name: "C", Description: "d", DueDate: "2024-01-03", Priority: 4, AutoDelete: true},
		{Name: "B", Description: "", DueDate: "", Priority: 3},
		{Name: "你好", Description: "español", DueDate: "mañana", Priority: 4294967295},
	}
}

// ---------------------------------------------------------------------------
// NewTextBackend
// ---------------------------------------------------------------------------

func Test_NewTextBackend_ImplementsBackend(t *testing.T) {
	t.Parallel()
	var _ storage.Backend = storage.NewTextBackend("/some/path")
}

// ---------------------------------------------------------------------------
// Load
// ---------------------------------------------------------------------------

func Test_TextBackend_Load_Cases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content *string
		want    []task.Task
		wantErr error
	}{
		{
			name:    "missing file is an I/O error",
			content: nil,
			wantErr: storage.ErrIO,
		},
		{
			name:    "empty file",
			content: strPtr(""),
			want:    []task.Task{},
		},
		{
			name:    "blank lines skipped",
			content: strPtr("\nA|d|x|5|0\n\n\nB|d|y|3|1\n"),
			want: []task.Task{
				{Name: "A", Description: "d", DueDate: "x", Priority: 5},
				{Name: "B", Description: "d", DueDate: "y", Priority: 3, AutoDelete: true},
			},
		},
		{
			name:    "no trailing newline",
			content: strPtr("A|d|x|5|0"),
			want:    []task.Task{{Name: "A", Description: "d", DueDate: "x", Priority: 5}},
		},
		{
			name:    "CRLF line endings",
			content: strPtr("A|d|x|5|1\r\n"),
			want:    []task.Task{{Name: "A", Description: "d", DueDate: "x", Priority: 5, AutoDelete: true}},
		},
		{
			name:    "malformed line",
			content: strPtr("A|d|x|5|0\nbroken\n"),
			wantErr: task.ErrMalformedRecord,
		},
		{
			name:    "bad priority",
			content: strPtr("A|d|x|-5|0\n"),
			wantErr: task.ErrMalformedRecord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "tasks.txt")
			if tt.content != nil {
				if err := os.WriteFile(path, []byte(*tt.content), 0o644); err != nil {
					t.Fatalf("write setup file: %v", err)
				}
			}

			got, err := storage.NewTextBackend(path).Load()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Load() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Load() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Save
// ---------------------------------------------------------------------------

func Test_TextBackend_Save_WritesLines(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tasks.txt")
	b := storage.NewTextBackend(path)
	if err := b.Save(sampleTasks()[:3]); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := "A|d|2024-01-01|5|0\nC|d|2024-01-03|4|1\nB|||3|0\n"
	if string(data) != want {
		t.Errorf("file = %q, want %q", string(data), want)
	}
}

func Test_TextBackend_SaveLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	b := storage.NewTextBackend(filepath.Join(t.TempDir(), "nested", "dir", "tasks.txt"))
	if err := b.Save(sampleTasks()); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}
	got, err := b.Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, sampleTasks()) {
		t.Errorf("Load() = %+v, want %+v", got, sampleTasks())
	}
}

func Test_TextBackend_Save_EmptyListTruncates(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tasks.txt")
	if err := os.WriteFile(path, []byte("A|d|x|5|0\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := storage.NewTextBackend(path).Save(nil); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("size = %d, want 0", info.Size())
	}
}

func Test_TextBackend_Save_LeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	b := storage.NewTextBackend(filepath.Join(dir, "tasks.txt"))
	for i := 0; i < 3; i++ {
		if err := b.Save(sampleTasks()); err != nil {
			t.Fatalf("Save() unexpected error: %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory contains %v, want only tasks.txt", names)
	}
}

func Test_TextBackend_Save_FailureKeepsPreviousFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("directory permissions differ on Windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.txt")
	original := "A|d|x|5|0\n"
	if err := os.WriteFile(path, []byte(original), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	err := storage.NewTextBackend(path).Save(sampleTasks())
	if !errors.Is(err, storage.ErrIO) {
		t.Fatalf("Save() error = %v, want ErrIO", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != original {
		t.Errorf("file = %q, want %q", string(data), original)
	}
}

// ---------------------------------------------------------------------------
// EnsureFile
// ---------------------------------------------------------------------------

func Test_TextBackend_EnsureFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".todo", "tasks.txt")
	b := storage.NewTextBackend(path)
	if err := b.EnsureFile(); err != nil {
		t.Fatalf("EnsureFile() unexpected error: %v", err)
	}
	got, err := b.Load()
	if err != nil {
		t.Fatalf("Load() after EnsureFile unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Load() = %v, want empty", got)
	}

	// Existing content survives a second call.
	if err := b.Save(sampleTasks()); err != nil {
		t.Fatalf("Save(): %v", err)
	}
	if err := b.EnsureFile(); err != nil {
		t.Fatalf("EnsureFile() second call: %v", err)
	}
	got, err = b.Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if len(got) != len(sampleTasks()) {
		t.Errorf("EnsureFile() clobbered existing content: %d tasks left", len(got))
	}
}

func strPtr(s string) *string { return &s }
