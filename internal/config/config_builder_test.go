package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterConfigOverrides verifies that non-zero fields of later
// configs win while zero fields keep earlier values.
func TestBuild_LaterConfigOverrides(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://env:1"}},
		&StructuredConfig{Adapter: Adapter{RequestTimeout: 5 * time.Second}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://env:1", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultBasePath, cfg.Adapter.BasePath)
	assert.Equal(t, DefaultWebAddress, cfg.Web.HTTPAddress)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"user_id": "from-json"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/does/not/exist.json"},
		&StructuredConfig{JSONFilePath: path},
	)

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "from-json", cfg.App.UserID)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	_, err := b.withJSON().build()
	assert.Error(t, err)
}

func TestWithFlags_InvalidRecorded(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-request-timeout", "never"})
	assert.Error(t, b.err)
}

// ── GetStructuredConfig / GetClientConfig ────────────────────────────────────

func TestGetStructuredConfig_Priority(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{"request_timeout": "45s"},
	})
	t.Setenv("ADAPTER_ADDRESS", "http://from-env:1")
	t.Setenv("APP_USER_ID", "env-user")

	cfg, err := GetStructuredConfig([]string{"-user-id", "flag-user", "-c", path})
	require.NoError(t, err)

	assert.Equal(t, "http://from-env:1", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "flag-user", cfg.App.UserID)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultBasePath, cfg.Adapter.BasePath)
}

func TestGetClientConfig_Defaults(t *testing.T) {
	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultBasePath, cfg.Adapter.BasePath)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultNotificationTTL, cfg.App.NotificationTTL)
	assert.Equal(t, DefaultWebAddress, cfg.Web.HTTPAddress)
	assert.False(t, cfg.HistoryEnabled())
	assert.False(t, cfg.PruningEnabled())
}

func TestGetClientConfig_WithHistory(t *testing.T) {
	cfg, err := GetClientConfig([]string{"-d", "history.db"})
	require.NoError(t, err)
	assert.True(t, cfg.HistoryEnabled())
	assert.True(t, cfg.PruningEnabled())
}

func TestGetClientConfig_ZeroRetentionKeepsDefault(t *testing.T) {
	t.Setenv("WORKERS_HISTORY_RETENTION", "0")

	cfg, err := GetClientConfig([]string{"-d", "history.db"})
	require.NoError(t, err)
	assert.Equal(t, DefaultHistoryRetention, cfg.Workers.HistoryRetention)
	assert.True(t, cfg.PruningEnabled())
}

func TestGetClientConfig_NegativeRetentionDisablesPruning(t *testing.T) {
	t.Setenv("WORKERS_HISTORY_RETENTION", "-1s")

	cfg, err := GetClientConfig([]string{"-d", "history.db"})
	require.NoError(t, err)
	assert.True(t, cfg.HistoryEnabled())
	assert.False(t, cfg.PruningEnabled())

	cfg, err = GetClientConfig([]string{"-d", "history.db", "-history-retention=-1s"})
	require.NoError(t, err)
	assert.False(t, cfg.PruningEnabled())
}
