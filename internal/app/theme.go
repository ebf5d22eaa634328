package app

import (
	"charm.land/lipgloss/v2"

	"corkboard/internal/config"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
)

type boardTheme struct {
	body        lipgloss.Style
	editing     lipgloss.Style
	placeholder lipgloss.Style
	border      lipgloss.Style
	active      lipgloss.Style
	handle      lipgloss.Style
	trash       lipgloss.Style
}

func newBoardTheme(settings config.ThemeSettings) boardTheme {
	note := lipgloss.Color(settings.NoteColor)
	text := lipgloss.Color(settings.NoteTextColor)
	return boardTheme{
		body:        lipgloss.NewStyle().Background(note).Foreground(text),
		editing:     lipgloss.NewStyle().Background(lipgloss.Color(settings.EditingColor)).Foreground(text),
		placeholder: lipgloss.NewStyle().Background(note).Foreground(lipgloss.Color(settings.BorderColor)).Italic(true),
		border:      lipgloss.NewStyle().Background(note).Foreground(lipgloss.Color(settings.BorderColor)),
		active:      lipgloss.NewStyle().Background(note).Foreground(lipgloss.Color(settings.HandleColor)).Bold(true),
		handle:      lipgloss.NewStyle().Background(lipgloss.Color(settings.HandleColor)).Foreground(note),
		trash: lipgloss.NewStyle().
			Background(lipgloss.Color(settings.TrashColor)).
			Foreground(lipgloss.Color(settings.TrashTextColor)).
			Bold(true),
	}
}
