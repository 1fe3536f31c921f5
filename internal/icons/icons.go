// Package icons defines the closed set of icon identifiers a filter
// catalog may reference. Config validates names against this set at load
// time, so the UI never renders an unrecognized icon.
package icons

import "fmt"

// Icon identifies a glyph the filter sheet can render next to an option.
type Icon int

const (
	None Icon = iota
	List
	Circle
	Check
	Blocked
	Star
	Tag
	Folder
)

var names = map[string]Icon{
	"":        None,
	"list":    List,
	"circle":  Circle,
	"check":   Check,
	"blocked": Blocked,
	"star":    Star,
	"tag":     Tag,
	"folder":  Folder,
}

var glyphs = map[Icon]string{
	None:    " ",
	List:    "☰",
	Circle:  "●",
	Check:   "✓",
	Blocked: "⊘",
	Star:    "★",
	Tag:     "⚑",
	Folder:  "▤",
}

// Parse resolves an icon name from a filter catalog. The empty string is
// valid and means "no icon".
func Parse(name string) (Icon, error) {
	icon, ok := names[name]
	if !ok {
		return None, fmt.Errorf("unknown icon %q", name)
	}
	return icon, nil
}

// Glyph returns the single-cell glyph for the icon.
func (i Icon) Glyph() string {
	if g, ok := glyphs[i]; ok {
		return g
	}
	return glyphs[None]
}

// String returns the canonical name for the icon.
func (i Icon) String() string {
	for name, icon := range names {
		if icon == i && name != "" {
			return name
		}
	}
	return "none"
}
