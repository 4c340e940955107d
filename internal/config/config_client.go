package config

import (
	"fmt"
	"time"
)

// ClientApp holds user-facing settings shared by the terminal and web consoles.
type ClientApp struct {
	// UserID is attached to chat messages when non-empty.
	UserID string
	// NotificationTTL is how long a toast stays visible.
	NotificationTTL time.Duration
	// LogLevel is the zerolog level name.
	LogLevel string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the QA backend address.
	HTTPAddress string
	// BasePath is the API prefix, e.g. "/api/v1".
	BasePath string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path or PostgreSQL URL. Empty disables history.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWeb holds the web console listener settings.
type ClientWeb struct {
	HTTPAddress string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// HistoryRetention is how long chat turns are kept. Negative disables pruning.
	HistoryRetention time.Duration
	// PruneInterval defines how often the history pruner runs.
	PruneInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Web     ClientWeb
	Workers ClientWorkers
}

// HistoryEnabled reports whether a chat history database is configured.
func (cfg *ClientConfig) HistoryEnabled() bool {
	return cfg.Storage.DB.DSN != ""
}

// PruningEnabled reports whether the history pruner should be started.
func (cfg *ClientConfig) PruningEnabled() bool {
	return cfg.HistoryEnabled() && cfg.Workers.HistoryRetention > 0
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields used by
// the consoles, and validates the resulting [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			UserID:          cfg.App.UserID,
			NotificationTTL: cfg.App.NotificationTTL,
			LogLevel:        cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			BasePath:       cfg.Adapter.BasePath,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Web: ClientWeb{HTTPAddress: cfg.Web.HTTPAddress},
		Workers: ClientWorkers{
			HistoryRetention: cfg.Workers.HistoryRetention,
			PruneInterval:    cfg.Workers.PruneInterval,
		},
	}
}
