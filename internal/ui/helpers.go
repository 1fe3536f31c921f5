package ui

import (
	"fmt"
	"strings"
	"time"
)

// truncate trims s to at most limit runes, with an ellipsis when cut.
func truncate(s string, limit int) string {
	trimmed := strings.TrimSpace(s)
	runes := []rune(trimmed)
	if limit <= 0 || len(runes) <= limit {
		return trimmed
	}
	if limit == 1 {
		return "…"
	}
	return string(runes[:limit-1]) + "…"
}

// humanizeSince renders the elapsed time since t in the coarsest useful
// unit.
func humanizeSince(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}
