package task

import "time"

// Status classifies a task's position in its lifecycle. Values line up
// with the filter identifiers in the default catalog so the filter sheet
// can match on them directly.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusBlocked   Status = "blocked"
)

// Task is a single entry in the browsed list.
type Task struct {
	ID        int64  `toml:"id"`
	Title     string `toml:"title"`
	Status    Status `toml:"status"`
	Project   string `toml:"project"`
	CreatedAt string `toml:"created_at"`
}

// ParsedCreatedAt returns the creation timestamp as time.Time, or the
// zero time when absent or unparseable.
func (t Task) ParsedCreatedAt() time.Time {
	return parseTime(t.CreatedAt)
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, time.DateOnly} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts
		}
	}
	return time.Time{}
}
