package task

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadMissingFileReturnsSamples(t *testing.T) {
	src, err := NewSource(filepath.Join(t.TempDir(), "tasks.toml"))
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}

	tasks, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if diff := cmp.Diff(SampleTasks(), tasks); diff != "" {
		t.Fatalf("tasks mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.toml")
	content := `
[[tasks]]
id = 7
title = "Write launch email"
status = "active"
project = "comm"
created_at = "2026-08-27"

[[tasks]]
id = 8
title = "File quarterly report"
status = "completed"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	src, err := NewSource(path)
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	tasks, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	want := []Task{
		{ID: 7, Title: "Write launch email", Status: StatusActive, Project: "comm", CreatedAt: "2026-08-27"},
		{ID: 8, Title: "File quarterly report", Status: StatusCompleted},
	}
	if diff := cmp.Diff(want, tasks); diff != "" {
		t.Fatalf("tasks mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDefaultsMissingStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.toml")
	content := "[[tasks]]\nid = 1\ntitle = \"Untagged\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	src, err := NewSource(path)
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	tasks, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if tasks[0].Status != StatusActive {
		t.Fatalf("Status = %q, want %q", tasks[0].Status, StatusActive)
	}
}

func TestLoadRejectsInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.toml")
	if err := os.WriteFile(path, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	src, err := NewSource(path)
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	if _, err := src.Load(context.Background()); err == nil {
		t.Fatal("Load should fail on invalid TOML")
	}
}

func TestLoadRejectsEmptyTitle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.toml")
	if err := os.WriteFile(path, []byte("[[tasks]]\nid = 1\ntitle = \"  \"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	src, err := NewSource(path)
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	if _, err := src.Load(context.Background()); err == nil {
		t.Fatal("Load should fail on a blank title")
	}
}

func TestLoadHonorsCancelledContext(t *testing.T) {
	src, err := NewSource(filepath.Join(t.TempDir(), "tasks.toml"))
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := src.Load(ctx); err == nil {
		t.Fatal("Load should fail once the context is cancelled")
	}
}

func TestParsedCreatedAt(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want time.Time
	}{
		{"empty", "", time.Time{}},
		{"date_only", "2026-08-20", time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)},
		{"rfc3339", "2026-08-20T10:30:00Z", time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC)},
		{"garbage", "last tuesday", time.Time{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Task{CreatedAt: tc.in}.ParsedCreatedAt()
			if !got.Equal(tc.want) {
				t.Fatalf("ParsedCreatedAt(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
