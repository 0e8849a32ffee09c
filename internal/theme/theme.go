package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Container         *lipgloss.Style
	ContainerFocused  *lipgloss.Style
	Value             *lipgloss.Style
	Badge             *lipgloss.Style
	BadgeFocused      *lipgloss.Style
	BadgeRemove       *lipgloss.Style
	Overflow          *lipgloss.Style
	Clear             *lipgloss.Style
	ClearFocused      *lipgloss.Style
	Divider           *lipgloss.Style
	Caret             *lipgloss.Style
	Option            *lipgloss.Style
	OptionSelected    *lipgloss.Style
	OptionHighlighted *lipgloss.Style
	OptionMark        *lipgloss.Style
	Empty             *lipgloss.Style
	Title             *lipgloss.Style
	Error             *lipgloss.Style
	Footer            *lipgloss.Style
}

var defaultStyles = Styles{
	Container: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Background(lipgloss.Color("235")),
	),
	ContainerFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("237")),
	),
	Value: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	Badge: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("24")),
	),
	BadgeFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Bold(true),
	),
	BadgeRemove: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Background(lipgloss.Color("24")),
	),
	Overflow: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	),
	Clear: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	ClearFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("196")).Bold(true),
	),
	Divider: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	Caret: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Option: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	OptionSelected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("24")),
	),
	OptionHighlighted: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	OptionMark: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Empty: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
