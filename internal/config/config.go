package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/jspittman/winnow/internal/icons"
	"github.com/jspittman/winnow/internal/selection"
)

// Config captures the filter catalog and task source settings.
type Config struct {
	Filters       []selection.Option
	DefaultFilter string
	MultiSelect   bool
	TasksPath     string
}

const defaultConfigPath = "~/.config/winnow/config.toml"

// DefaultFilters returns the built-in filter catalog used when no config
// file exists. The ids track the task statuses in the task package.
func DefaultFilters() []selection.Option {
	return []selection.Option{
		{ID: "all", Label: "All tasks", Icon: "list"},
		{ID: "active", Label: "Active", Icon: "circle"},
		{ID: "completed", Label: "Completed", Icon: "check"},
		{ID: "blocked", Label: "Blocked", Icon: "blocked"},
	}
}

// Load locates and parses the winnow config, falling back to the built-in
// catalog when the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Filters:       DefaultFilters(),
		DefaultFilter: selection.DefaultFilterID,
	}

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DefaultFilter string `toml:"default_filter"`
		MultiSelect   bool   `toml:"multi_select"`
		TasksPath     string `toml:"tasks_path"`
		Filters       []struct {
			ID    string `toml:"id"`
			Label string `toml:"label"`
			Icon  string `toml:"icon"`
		} `toml:"filter"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if len(raw.Filters) > 0 {
		cfg.Filters = make([]selection.Option, 0, len(raw.Filters))
		for _, f := range raw.Filters {
			cfg.Filters = append(cfg.Filters, selection.Option{
				ID:    strings.TrimSpace(f.ID),
				Label: strings.TrimSpace(f.Label),
				Icon:  strings.TrimSpace(f.Icon),
			})
		}
	}

	if id := strings.TrimSpace(raw.DefaultFilter); id != "" {
		cfg.DefaultFilter = id
	}
	cfg.MultiSelect = raw.MultiSelect
	cfg.TasksPath = strings.TrimSpace(raw.TasksPath)

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// validate enforces catalog consistency up front. The selection model
// accepts arbitrary ids at runtime; the catalog is where misconfiguration
// gets caught.
func (c Config) validate() error {
	if len(c.Filters) == 0 {
		return fmt.Errorf("filter catalog is empty")
	}

	seen := make(map[string]bool, len(c.Filters))
	defaultPresent := false
	for i, f := range c.Filters {
		if f.ID == "" {
			return fmt.Errorf("filter %d: id is empty", i)
		}
		if f.Label == "" {
			return fmt.Errorf("filter %q: label is empty", f.ID)
		}
		if seen[f.ID] {
			return fmt.Errorf("filter %q: duplicate id", f.ID)
		}
		seen[f.ID] = true
		if _, err := icons.Parse(f.Icon); err != nil {
			return fmt.Errorf("filter %q: %w", f.ID, err)
		}
		if f.ID == c.DefaultFilter {
			defaultPresent = true
		}
	}

	if !defaultPresent {
		return fmt.Errorf("default filter %q is not in the catalog", c.DefaultFilter)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
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
