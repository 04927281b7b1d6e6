package theme

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors one shop theme paints the terminal with.
type Palette struct {
	Base    lipgloss.Color
	Mantle  lipgloss.Color
	Surface lipgloss.Color
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Accent  lipgloss.Color
	Good    lipgloss.Color
	Warm    lipgloss.Color
}

// Default follows Catppuccin Mocha.
var Default = Palette{
	Base:    lipgloss.Color("#1e1e2e"),
	Mantle:  lipgloss.Color("#181825"),
	Surface: lipgloss.Color("#45475a"),
	Text:    lipgloss.Color("#cdd6f4"),
	Subtext: lipgloss.Color("#a6adc8"),
	Accent:  lipgloss.Color("#74c7ec"),
	Good:    lipgloss.Color("#a6e3a1"),
	Warm:    lipgloss.Color("#fab387"),
}

var palettes = map[string]Palette{
	"default":     Default,
	"soft-blue":   {Base: "#1b2433", Mantle: "#151c28", Surface: "#34445e", Text: "#dbe7ff", Subtext: "#9fb3d1", Accent: "#8ab4f8", Good: "#a6e3a1", Warm: "#f9c97c"},
	"clean-green": {Base: "#16241c", Mantle: "#111c16", Surface: "#2e4a3a", Text: "#dff5e6", Subtext: "#9cc7ac", Accent: "#6fd39a", Good: "#b5f0c3", Warm: "#f2cc8f"},
	"warm-beige":  {Base: "#2b251e", Mantle: "#221d17", Surface: "#4d4336", Text: "#f3e9dc", Subtext: "#c8b8a2", Accent: "#e0b884", Good: "#b7d48a", Warm: "#f0a868"},
	"dark-blue":   {Base: "#0d1321", Mantle: "#080d18", Surface: "#1d2d44", Text: "#d6e2f0", Subtext: "#8da2bd", Accent: "#4f83cc", Good: "#7fc8a9", Warm: "#f4a259"},
	"dark-red":    {Base: "#1f1012", Mantle: "#170b0d", Surface: "#3d1f24", Text: "#f1dcdc", Subtext: "#c09a9d", Accent: "#d9534f", Good: "#9bc59d", Warm: "#f0a35e"},
	"black":       {Base: "#000000", Mantle: "#0a0a0a", Surface: "#2a2a2a", Text: "#eeeeee", Subtext: "#9e9e9e", Accent: "#ffffff", Good: "#9be89b", Warm: "#ffb86c"},
	"light-red":   {Base: "#2a1719", Mantle: "#211214", Surface: "#4a2a2e", Text: "#ffe3e3", Subtext: "#d6a9ab", Accent: "#ff8a8a", Good: "#a8e6a3", Warm: "#ffc38a"},
	"purple":      {Base: "#1d1630", Mantle: "#161125", Surface: "#3a2d5c", Text: "#e8defc", Subtext: "#b0a2d1", Accent: "#b48cff", Good: "#a6e3a1", Warm: "#f5b883"},
	"orange":      {Base: "#2a1b0f", Mantle: "#21150b", Surface: "#4f331c", Text: "#fbe8d6", Subtext: "#d6b394", Accent: "#ff9f43", Good: "#b8e08a", Warm: "#ffd166"},
}

// For returns the palette of a theme id, or Default for unknown ids.
func For(themeID string) Palette {
	if p, ok := palettes[themeID]; ok {
		return p
	}
	return Default
}

// Styles are the Lip Gloss styles derived from one palette.
type Styles struct {
	Palette    Palette
	App        lipgloss.Style
	Pane       lipgloss.Style
	PaneActive lipgloss.Style
	Bar        lipgloss.Style
	Title      lipgloss.Style
	Muted      lipgloss.Style
	Hot        lipgloss.Style
	Good       lipgloss.Style
}

func NewStyles(p Palette) Styles {
	pane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface).
		Foreground(p.Text).
		Padding(0, 1)
	return Styles{
		Palette:    p,
		App:        lipgloss.NewStyle().Background(p.Base).Foreground(p.Text),
		Pane:       pane,
		PaneActive: pane.BorderForeground(p.Accent),
		Bar:        lipgloss.NewStyle().Background(p.Mantle).Foreground(p.Text),
		Title:      lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Muted:      lipgloss.NewStyle().Foreground(p.Subtext),
		Hot:        lipgloss.NewStyle().Foreground(p.Warm).Bold(true),
		Good:       lipgloss.NewStyle().Foreground(p.Good),
	}
}

var strips = map[string]string{
	"radius-gradient":  "░▒▓█▓▒",
	"up-down-gradient": "▁▂▃▄▅▆▇█▇▆▅▄▃▂",
	"triangle-pattern": "▲△",
	"grid-pattern":     "┼─",
	"horizontal-lines": "─",
}

// Strip renders the decorative band of a background id, width cells wide.
// The default background has no band.
func Strip(backgroundID string, width int) string {
	unit, ok := strips[backgroundID]
	if !ok || width <= 0 {
		return ""
	}
	cells := []rune(unit)
	out := make([]rune, width)
	for i := range out {
		out[i] = cells[i%len(cells)]
	}
	return string(out)
}
