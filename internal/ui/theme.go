package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string
	Surface    string
	SurfaceAlt string

	// Selection colors
	SelectionBg   string
	SelectionText string

	// Border colors
	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string

	// Per-status badge colors, keyed by task status
	StatusColors map[string]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		CommandBar: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		SheetBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Background(lipgloss.Color(t.SurfaceAlt)).
			Padding(0, 1),

		SheetTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Checkbox: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),

		CheckboxEmpty: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		statusColors: t.StatusColors,
		muted:        t.Muted,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Header     lipgloss.Style
	CommandBar lipgloss.Style
	Selected   lipgloss.Style

	SheetBorder   lipgloss.Style
	SheetTitle    lipgloss.Style
	Checkbox      lipgloss.Style
	CheckboxEmpty lipgloss.Style

	statusColors map[string]string
	muted        string
}

// StatusBadge returns a style for the given task status.
func (s Styles) StatusBadge(status string) lipgloss.Style {
	color := s.muted
	if c, ok := s.statusColors[status]; ok {
		color = c
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24",
		Surface:    "#192330",
		SurfaceAlt: "#212e3f",

		SelectionBg:   "#2b3b51",
		SelectionText: "#cdcecf",

		Border:      "#39506d",
		BorderFocus: "#719cd6",

		Text:    "#cdcecf",
		Muted:   "#738091",
		Faint:   "#71839b",
		Accent:  "#719cd6",
		Success: "#81b29a",
		Warning: "#dbc074",
		Danger:  "#c94f6d",

		StatusColors: map[string]string{
			"active":    "#719cd6",
			"completed": "#81b29a",
			"blocked":   "#c94f6d",
		},
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",

		Background: "#1f1f28",
		Surface:    "#2a2a37",
		SurfaceAlt: "#363646",

		SelectionBg:   "#2d4f67",
		SelectionText: "#dcd7ba",

		Border:      "#54546d",
		BorderFocus: "#7e9cd8",

		Text:    "#dcd7ba",
		Muted:   "#727169",
		Faint:   "#9e9b93",
		Accent:  "#7e9cd8",
		Success: "#98bb6c",
		Warning: "#e6c384",
		Danger:  "#c34043",

		StatusColors: map[string]string{
			"active":    "#7e9cd8",
			"completed": "#98bb6c",
			"blocked":   "#c34043",
		},
	}
}

func slateTheme() Theme {
	return Theme{
		Name: "Slate",

		Background: "#0f172a",
		Surface:    "#1e293b",
		SurfaceAlt: "#334155",

		SelectionBg:   "#475569",
		SelectionText: "#f1f5f9",

		Border:      "#475569",
		BorderFocus: "#38bdf8",

		Text:    "#e2e8f0",
		Muted:   "#94a3b8",
		Faint:   "#64748b",
		Accent:  "#38bdf8",
		Success: "#4ade80",
		Warning: "#facc15",
		Danger:  "#f87171",

		StatusColors: map[string]string{
			"active":    "#38bdf8",
			"completed": "#4ade80",
			"blocked":   "#f87171",
		},
	}
}
