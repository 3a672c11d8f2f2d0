package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used by the interactive views.
type Theme struct {
	Name        string
	Surface     lipgloss.Color // selected row background
	Border      lipgloss.Color
	TextMuted   lipgloss.Color
	TextPrimary lipgloss.Color
	Accent      lipgloss.Color
	Green       lipgloss.Color
	Red         lipgloss.Color
}

// FlexokiDark is the default theme - warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:        "flexoki-dark",
	Surface:     lipgloss.Color("#282726"),
	Border:      lipgloss.Color("#403E3C"),
	TextMuted:   lipgloss.Color("#878580"),
	TextPrimary: lipgloss.Color("#FFFCF0"),
	Accent:      lipgloss.Color("#3AA99F"),
	Green:       lipgloss.Color("#879A39"),
	Red:         lipgloss.Color("#D14D41"),
}

// Terminal uses the 16 ANSI colors so it follows the terminal palette.
var Terminal = Theme{
	Name:        "terminal",
	Surface:     lipgloss.Color("8"),
	Border:      lipgloss.Color("8"),
	TextMuted:   lipgloss.Color("7"),
	TextPrimary: lipgloss.Color("15"),
	Accent:      lipgloss.Color("6"),
	Green:       lipgloss.Color("2"),
	Red:         lipgloss.Color("1"),
}

// Themes lists the available themes.
var Themes = []Theme{FlexokiDark, Terminal}

// ThemeByName returns a theme by its name, defaulting to FlexokiDark.
func ThemeByName(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}
