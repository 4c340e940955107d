// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds user-facing application settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the QA backend address and HTTP client settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local chat history database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Web holds the listen address of the web console.
	Web Web `envPrefix:"WEB_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds user-facing application settings.
type App struct {
	// UserID is sent with every chat message when non-empty.
	// Env: APP_USER_ID
	UserID string `env:"USER_ID"`

	// NotificationTTL is how long an error or success toast stays visible.
	// Env: APP_NOTIFICATION_TTL
	NotificationTTL time.Duration `env:"NOTIFICATION_TTL"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Adapter holds settings of the HTTP client talking to the QA backend.
type Adapter struct {
	// HTTPAddress is the backend address, with or without scheme
	// (e.g. "localhost:8080" or "https://qa.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// BasePath is the API prefix appended to HTTPAddress.
	// Env: ADAPTER_BASE_PATH
	BasePath string `env:"BASE_PATH"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the local persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the chat history database connection string. A file path selects
// SQLite, a postgres:// URL selects PostgreSQL, and an empty value disables
// history.
type DB struct {
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Web holds the web console listener settings.
type Web struct {
	// HTTPAddress is the "host:port" the console listens on.
	// Env: WEB_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Workers holds background job settings.
type Workers struct {
	// HistoryRetention is how long chat turns are kept. A negative value
	// such as -1s disables pruning. Zero counts as unset and keeps the default.
	// Env: WORKERS_HISTORY_RETENTION
	HistoryRetention time.Duration `env:"HISTORY_RETENTION"`

	// PruneInterval is how often expired turns are removed.
	// Env: WORKERS_PRUNE_INTERVAL
	PruneInterval time.Duration `env:"PRUNE_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. args are the command-line arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
