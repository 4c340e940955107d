package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/qa-console/internal/config"
	"github.com/MKhiriev/qa-console/internal/logger"
	"github.com/MKhiriev/qa-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientStorages_EmptyDSNDisablesHistory(t *testing.T) {
	storages, err := NewClientStorages(context.Background(), config.ClientStorage{}, logger.Nop())
	require.NoError(t, err)

	repo := storages.ConversationRepository
	require.NotNil(t, repo)
	assert.NoError(t, repo.SaveTurn(context.Background(), models.ChatTurn{}))

	turns, err := repo.ListSession(context.Background(), "s", 10)
	require.NoError(t, err)
	assert.Empty(t, turns)

	n, err := repo.DeleteOlderThan(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.NoError(t, storages.Close())
}

func TestIsPostgresDSN(t *testing.T) {
	assert.True(t, isPostgresDSN("postgres://u:p@localhost/qa"))
	assert.True(t, isPostgresDSN("PostgreSQL://localhost/qa"))
	assert.False(t, isPostgresDSN("history.db"))
	assert.False(t, isPostgresDSN("file:history.db?cache=shared"))
}

func TestClientStorages_CloseNil(t *testing.T) {
	var s *ClientStorages
	assert.NoError(t, s.Close())
}
