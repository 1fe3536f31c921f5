package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/jspittman/winnow/internal/task"
)

// Snapshot represents the latest task data available to the UI.
type Snapshot struct {
	Tasks               []task.Task
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsStale returns true when the task file has failed to load for
// multiple consecutive reload attempts.
func (s Snapshot) IsStale() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot. The zero value
// is ready to use.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored tasks. When err is non-nil the previous
// tasks are kept but the error is recorded for visibility.
func (s *Store) Update(tasks []task.Task, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Tasks = cloneTasks(tasks)
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Tasks = cloneTasks(s.snapshot.Tasks)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneTasks(items []task.Task) []task.Task {
	if len(items) == 0 {
		return nil
	}
	dup := make([]task.Task, len(items))
	copy(dup, items)
	return dup
}
