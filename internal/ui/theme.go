package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Title     lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Border    lipgloss.Style
	Hint      lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Header    lipgloss.Style
	Digits    lipgloss.Style
	ScanLine  lipgloss.Style
}

var DefaultTheme = Theme{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	Label:     lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#89B4FA")),
	Value:     lipgloss.NewStyle().Foreground(lipgloss.Color("#F2CDCD")),
	Border:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1),
	Hint:      lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#CBA6F7")),
	Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
	Success:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	Tab:       lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("#9399B2")),
	ActiveTab: lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(lipgloss.Color("#1E1E2E")).Background(lipgloss.Color("#A6E3A1")),
	Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#2B2B2B")).Padding(0, 1),
	Digits:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Padding(0, 1),
	ScanLine:  lipgloss.NewStyle().Foreground(lipgloss.Color("#00E5FF")),
}

// MonoTheme drops colours for terminals that render them poorly.
var MonoTheme = Theme{
	Title:     lipgloss.NewStyle().Bold(true),
	Label:     lipgloss.NewStyle().Faint(true),
	Value:     lipgloss.NewStyle(),
	Border:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1),
	Hint:      lipgloss.NewStyle().Faint(true),
	Error:     lipgloss.NewStyle().Bold(true).Underline(true),
	Success:   lipgloss.NewStyle().Bold(true),
	Tab:       lipgloss.NewStyle().Padding(0, 2),
	ActiveTab: lipgloss.NewStyle().Padding(0, 2).Reverse(true),
	Header:    lipgloss.NewStyle().Bold(true).Padding(0, 1),
	Digits:    lipgloss.NewStyle().Bold(true).Padding(0, 1),
	ScanLine:  lipgloss.NewStyle().Bold(true),
}

// ThemeByName maps the `theme` config key; unknown names get the default.
func ThemeByName(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mono", "plain":
		return MonoTheme
	}
	return DefaultTheme
}
