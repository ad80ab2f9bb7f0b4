package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Timer     lipgloss.Style
	Phase     lipgloss.Style
	Accent    lipgloss.Style
	Input     lipgloss.Style
	Flash     lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Align(lipgloss.Center),
		Timer:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Phase:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		Flash:     lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("208")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true).Align(lipgloss.Center),
		Timer:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Phase:     lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
		Flash:     lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("215")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
	},
}

// themeOrder fixes the cycling order for the theme key.
var themeOrder = []string{"default", "dracula"}

// CurrentTheme holds the currently active theme.
// We initialize it to default to avoid nil pointer dereferences.
var CurrentTheme = Themes["default"]

// currentThemeName tracks the map key of CurrentTheme.
var currentThemeName = "default"

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
		currentThemeName = name
	}
}

// CurrentThemeName returns the map key of the active theme.
func CurrentThemeName() string {
	return currentThemeName
}

// NextTheme returns the theme name following the given one in cycle
// order.
func NextTheme(name string) string {
	for i, n := range themeOrder {
		if n == name {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}
