package store

import (
	"context"
	"time"

	"github.com/MKhiriev/qa-console/models"
)

// noopConversationRepository is used when no history DSN is configured.
type noopConversationRepository struct{}

func NewNoopConversationRepository() ConversationRepository {
	return noopConversationRepository{}
}

func (noopConversationRepository) SaveTurn(context.Context, models.ChatTurn) error {
	return nil
}

func (noopConversationRepository) ListSession(context.Context, string, int) ([]models.ChatTurn, error) {
	return []models.ChatTurn{}, nil
}

func (noopConversationRepository) ListRecent(context.Context, int) ([]models.ChatTurn, error) {
	return []models.ChatTurn{}, nil
}

func (noopConversationRepository) DeleteOlderThan(context.Context, time.Time) (int64, error) {
	return 0, nil
}
