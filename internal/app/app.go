package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jspittman/winnow/internal/config"
	"github.com/jspittman/winnow/internal/prefs"
	"github.com/jspittman/winnow/internal/state"
	"github.com/jspittman/winnow/internal/task"
	"github.com/jspittman/winnow/internal/ui"
)

// Options configure the Winnow application.
type Options struct {
	ConfigPath  string
	TasksPath   string // overrides tasks_path from the config when set
	PrefsPath   string // empty uses default ~/.config/winnow/prefs.toml
	PollEvery   int    // seconds; zero uses default
	MultiSelect bool   // force multi-select mode regardless of config
}

// Run boots the Winnow TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.MultiSelect {
		cfg.MultiSelect = true
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	tasksPath := opts.TasksPath
	if tasksPath == "" {
		tasksPath = cfg.TasksPath
	}
	source, err := task.NewSource(tasksPath)
	if err != nil {
		return fmt.Errorf("init task source: %w", err)
	}

	store := &state.Store{}

	interval := defaultPollInterval
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	// Start background reloader
	StartPoller(ctx, store, source, interval)

	// Do initial load to populate store before UI starts
	refresh(ctx, store, source)

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		Config:    &cfg,
		PollTick:  interval,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
