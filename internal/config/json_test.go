package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"user_id":          "json-user",
			"notification_ttl": "4s",
			"log_level":        "error",
		},
		"adapter": map[string]any{
			"http_address":    "https://qa.example.com",
			"base_path":       "/api/v1",
			"request_timeout": "1m",
		},
		"storage": map[string]any{
			"db": map[string]any{"dsn": "postgres://u:p@localhost/qa"},
		},
		"web":     map[string]any{"address": "127.0.0.1:8081"},
		"workers": map[string]any{"history_retention": "72h", "prune_interval": 60000000000},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-user", cfg.App.UserID)
	assert.Equal(t, 4*time.Second, cfg.App.NotificationTTL)
	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, "https://qa.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/api/v1", cfg.Adapter.BasePath)
	assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "postgres://u:p@localhost/qa", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:8081", cfg.Web.HTTPAddress)
	assert.Equal(t, 72*time.Hour, cfg.Workers.HistoryRetention)
	assert.Equal(t, time.Minute, cfg.Workers.PruneInterval)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseJSON_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"90s"`, want: 90 * time.Second},
		{name: "number", input: `1000`, want: time.Microsecond},
		{name: "bad string", input: `"later"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(3 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"3s"`, string(b))
}
