package task

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const defaultTasksPath = "~/.local/share/winnow/tasks.toml"

// Source loads tasks from a TOML file on disk.
//
// A missing file is not an error: the source falls back to a built-in
// sample set so Winnow works out of the box. Parse errors are reported;
// a half-readable task file should not be silently replaced by samples.
type Source struct {
	path string
}

// NewSource builds a Source for the given path. An empty path uses the
// default location under ~/.local/share/winnow.
func NewSource(path string) (*Source, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	return &Source{path: resolved}, nil
}

// Path returns the resolved task file path.
func (s *Source) Path() string {
	return s.path
}

// Load reads and parses the task file. It honors ctx cancellation so the
// reload poller can shut down promptly.
func (s *Source) Load(ctx context.Context) ([]Task, error) {
	if s == nil {
		return nil, fmt.Errorf("source is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bytes, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return SampleTasks(), nil
		}
		return nil, fmt.Errorf("read tasks: %w", err)
	}

	var raw struct {
		Tasks []Task `toml:"tasks"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return nil, fmt.Errorf("parse tasks: %w", err)
	}

	for i, t := range raw.Tasks {
		if strings.TrimSpace(t.Title) == "" {
			return nil, fmt.Errorf("task %d: title is empty", i)
		}
		if t.Status == "" {
			raw.Tasks[i].Status = StatusActive
		}
	}
	return raw.Tasks, nil
}

// SampleTasks returns the built-in demo task set used when no task file
// exists yet.
func SampleTasks() []Task {
	return []Task{
		{ID: 1, Title: "Draft release notes", Status: StatusActive, Project: "release", CreatedAt: "2026-08-20"},
		{ID: 2, Title: "Fix flaky reload test", Status: StatusActive, Project: "ci", CreatedAt: "2026-08-22"},
		{ID: 3, Title: "Upgrade toolchain", Status: StatusBlocked, Project: "ci", CreatedAt: "2026-08-18"},
		{ID: 4, Title: "Archive old dashboards", Status: StatusCompleted, Project: "ops", CreatedAt: "2026-08-11"},
		{ID: 5, Title: "Review storage proposal", Status: StatusActive, Project: "storage", CreatedAt: "2026-08-25"},
		{ID: 6, Title: "Rotate access tokens", Status: StatusCompleted, Project: "ops", CreatedAt: "2026-08-15"},
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultTasksPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
