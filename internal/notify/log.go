package notify

import (
	"github.com/MKhiriev/qa-console/internal/logger"
)

// LogNotifier writes notifications to the structured log.
type LogNotifier struct {
	logger *logger.Logger
}

func NewLogNotifier(logger *logger.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (l *LogNotifier) Notify(n Notification) {
	event := l.logger.Info()
	if n.Level == LevelError || n.Level == LevelWarning {
		event = l.logger.Warn()
	}

	event.Str("notification", string(n.Level)).Msg(n.Message)
}
