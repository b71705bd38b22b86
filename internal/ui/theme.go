package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Accent   lipgloss.Color
	Border   lipgloss.Color
	Good     lipgloss.Color
	Bad      lipgloss.Color
	Warning  lipgloss.Color
	BarFill  lipgloss.Color
	BarEmpty lipgloss.Color
}

var palettes = map[string]palette{
	"catppuccin": {
		Text:     lipgloss.Color("#cdd6f4"),
		Muted:    lipgloss.Color("#a6adc8"),
		Accent:   lipgloss.Color("#cba6f7"),
		Border:   lipgloss.Color("#585b70"),
		Good:     lipgloss.Color("#a6e3a1"),
		Bad:      lipgloss.Color("#f38ba8"),
		Warning:  lipgloss.Color("#f9e2af"),
		BarFill:  lipgloss.Color("#94e2d5"),
		BarEmpty: lipgloss.Color("#313244"),
	},
	"dracula": {
		Text:     lipgloss.Color("#f8f8f2"),
		Muted:    lipgloss.Color("#6272a4"),
		Accent:   lipgloss.Color("#ff79c6"),
		Border:   lipgloss.Color("#44475a"),
		Good:     lipgloss.Color("#50fa7b"),
		Bad:      lipgloss.Color("#ff5555"),
		Warning:  lipgloss.Color("#f1fa8c"),
		BarFill:  lipgloss.Color("#50fa7b"),
		BarEmpty: lipgloss.Color("#343746"),
	},
	"gruvbox": {
		Text:     lipgloss.Color("#ebdbb2"),
		Muted:    lipgloss.Color("#a89984"),
		Accent:   lipgloss.Color("#fabd2f"),
		Border:   lipgloss.Color("#665c54"),
		Good:     lipgloss.Color("#b8bb26"),
		Bad:      lipgloss.Color("#fb4934"),
		Warning:  lipgloss.Color("#fe8019"),
		BarFill:  lipgloss.Color("#b8bb26"),
		BarEmpty: lipgloss.Color("#3c3836"),
	},
}

// styles are the lipgloss styles derived from one palette.
type styles struct {
	title   lipgloss.Style
	panel   lipgloss.Style
	muted   lipgloss.Style
	good    lipgloss.Style
	bad     lipgloss.Style
	warning lipgloss.Style
	cursor  lipgloss.Style
	fill    lipgloss.Style
	empty   lipgloss.Style
}

func newStyles(p palette) styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		panel:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Padding(0, 1).Foreground(p.Text),
		muted:   lipgloss.NewStyle().Foreground(p.Muted),
		good:    lipgloss.NewStyle().Foreground(p.Good),
		bad:     lipgloss.NewStyle().Foreground(p.Bad),
		warning: lipgloss.NewStyle().Foreground(p.Warning),
		cursor:  lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		fill:    lipgloss.NewStyle().Foreground(p.BarFill),
		empty:   lipgloss.NewStyle().Foreground(p.BarEmpty),
	}
}

func paletteFor(name string) palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes["catppuccin"]
}

func themeNames() []string {
	names := make([]string, 0, len(palettes))
	for k := range palettes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func nextThemeName(current string, step int) string {
	names := themeNames()
	if len(names) == 0 {
		return current
	}
	idx := 0
	for i, name := range names {
		if name == current {
			idx = i
			break
		}
	}
	idx = (idx + step) % len(names)
	if idx < 0 {
		idx += len(names)
	}
	return names[idx]
}
