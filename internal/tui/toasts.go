package tui

import (
	"strings"
	"time"

	"github.com/MKhiriev/qa-console/internal/notify"
	tea "github.com/charmbracelet/bubbletea"
)

const toastTickInterval = time.Second

func toastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

func renderToasts(list []notify.Notification) string {
	if len(list) == 0 {
		return ""
	}

	lines := make([]string, 0, len(list))
	for _, n := range list {
		style, ok := toastStyles[n.Level]
		if !ok {
			style = toastStyles[notify.LevelInfo]
		}
		lines = append(lines, style.Render("["+string(n.Level)+"] "+n.Message))
	}

	return strings.Join(lines, "\n")
}
