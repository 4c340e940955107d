package tui

import (
	"github.com/MKhiriev/qa-console/internal/notify"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	userStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	botStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	metaStyle     = lipgloss.NewStyle().Faint(true).PaddingLeft(5)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	tabStyle      = lipgloss.NewStyle().Padding(0, 1)
	activeTab     = tabStyle.Reverse(true)

	toastStyles = map[notify.Level]lipgloss.Style{
		notify.LevelInfo:    lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("12")),
		notify.LevelSuccess: lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("10")),
		notify.LevelWarning: lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("11")),
		notify.LevelError:   lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("9")),
	}
)
