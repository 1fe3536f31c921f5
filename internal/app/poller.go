package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jspittman/winnow/internal/state"
	"github.com/jspittman/winnow/internal/task"
)

const (
	defaultPollInterval = 2 * time.Second
	maxBackoff          = 30 * time.Second
)

// StartPoller launches a background goroutine that re-reads the task file
// at a fixed cadence, backing off while reads keep failing. It returns
// immediately.
func StartPoller(ctx context.Context, store *state.Store, source *task.Source, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		for {
			refresh(ctx, store, source)

			wait := calculateBackoff(store.Snapshot().ConsecutiveFailures, interval)
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
}

// calculateBackoff doubles the base interval per consecutive failure,
// capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}

func refresh(ctx context.Context, store *state.Store, source *task.Source) {
	tasks, err := source.Load(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		store.Update(nil, err)
		slog.Warn("task reload failed", "path", source.Path(), "error", err)
		return
	}
	store.Update(tasks, nil)
}
