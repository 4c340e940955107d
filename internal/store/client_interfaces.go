package store

import (
	"context"
	"time"

	"github.com/MKhiriev/qa-console/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// ConversationRepository keeps the local chat history.
type ConversationRepository interface {
	// SaveTurn persists a single exchange. A repeated TurnID yields
	// [ErrDuplicateTurn].
	SaveTurn(ctx context.Context, turn models.ChatTurn) error

	// ListSession returns up to limit most recent turns of a session in
	// chronological order.
	ListSession(ctx context.Context, sessionID string, limit int) ([]models.ChatTurn, error)

	// ListRecent returns up to limit most recent turns across sessions,
	// newest first.
	ListRecent(ctx context.Context, limit int) ([]models.ChatTurn, error)

	// DeleteOlderThan removes turns created before cutoff and reports how
	// many were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
