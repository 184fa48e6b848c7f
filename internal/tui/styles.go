package tui

import (
	"envytui/internal/envy"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	Accent     = lipgloss.Color("#8B5CF6")
	Green      = lipgloss.Color("#22C55E")
	Yellow     = lipgloss.Color("#EAB308")
	Red        = lipgloss.Color("#EF4444")
	Gray       = lipgloss.Color("245")
	DimGray    = lipgloss.Color("239")
	White      = lipgloss.Color("255")
	Blue       = lipgloss.Color("#3B82F6")
	Emerald    = lipgloss.Color("#10B981")
	NvidiaLime = lipgloss.Color("#76B900")

	// Text styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Gray)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent)

	NormalStyle = lipgloss.NewStyle().
			Foreground(White)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Yellow)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	// Panel styles
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray).
			Padding(0, 1)

	FocusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Accent).
				Padding(0, 1)

	// Popup styles
	SuccessBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Padding(1, 2)

	ErrorBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Padding(1, 2)

	ConfirmBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Yellow).
			Padding(1, 2)

	// Footer style
	FooterStyle = lipgloss.NewStyle().
			Foreground(Gray).
			MarginTop(1)

	// Key style
	KeyStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
)

// ModeColor returns the stable color tag for a mode. Each mode has a
// distinct color so the header and mode list stay visually consistent.
func ModeColor(m envy.Mode) lipgloss.Color {
	switch m {
	case envy.ModeIntegrated:
		return Blue
	case envy.ModeHybrid:
		return Emerald
	case envy.ModeNvidia:
		return NvidiaLime
	}
	return Gray
}

// ModeStyle returns a foreground style in the mode's color.
func ModeStyle(m envy.Mode) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ModeColor(m))
}

// RenderKey renders a keyboard shortcut
func RenderKey(key, desc string) string {
	return KeyStyle.Render("["+key+"]") + " " + SubtitleStyle.Render(desc)
}
