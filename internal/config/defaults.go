package config

import "time"

// Default values applied before any other source.
const (
	DefaultHTTPAddress      = "http://localhost:8080"
	DefaultBasePath         = "/api/v1"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultWebAddress       = "localhost:5173"
	DefaultNotificationTTL  = 3 * time.Second
	DefaultLogLevel         = "debug"
	DefaultHistoryRetention = 30 * 24 * time.Hour
	DefaultPruneInterval    = time.Hour
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			NotificationTTL: DefaultNotificationTTL,
			LogLevel:        DefaultLogLevel,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			BasePath:       DefaultBasePath,
			RequestTimeout: DefaultRequestTimeout,
		},
		Web: Web{
			HTTPAddress: DefaultWebAddress,
		},
		Workers: Workers{
			HistoryRetention: DefaultHistoryRetention,
			PruneInterval:    DefaultPruneInterval,
		},
	}
}
