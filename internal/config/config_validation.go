// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [ClientConfig] satisfies all
// invariants before it is used at startup.
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if !validBackendAddress(cfg.Adapter.HTTPAddress) {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.BasePath != "" && !strings.HasPrefix(cfg.Adapter.BasePath, "/") {
		return ErrInvalidAdapterConfigs
	}

	if strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.NotificationTTL <= 0 {
		return ErrInvalidAppConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return ErrInvalidAppConfigs
	}

	if cfg.Web.HTTPAddress == "" {
		return ErrInvalidWebConfigs
	}

	if cfg.Workers.HistoryRetention > 0 && cfg.Workers.PruneInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// validBackendAddress accepts "host:port" as well as full URLs; a missing
// scheme is treated as http.
func validBackendAddress(address string) bool {
	if !strings.Contains(address, "://") {
		address = "http://" + address
	}

	u, err := url.Parse(address)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
