package service

import (
	"context"

	"github.com/MKhiriev/qa-console/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientChatService defines the client-side contract of a chat conversation.
// An implementation holds the current session id, so it represents one
// conversation at a time.
type ClientChatService interface {
	// Send validates message, posts it with the current session id and
	// returns the recorded turn together with the backend answer. The session
	// id reported by the backend becomes the current one.
	// Returns an error wrapping ErrInvalidDataProvided for a blank or
	// oversized message, or the adapter error when the call fails.
	Send(ctx context.Context, message string) (models.ChatTurn, models.ChatResponse, error)

	// SessionID returns the current session id, empty before the first answer.
	SessionID() string

	// NewSession forgets the current session id; the next Send starts a new
	// conversation.
	NewSession()

	// Resume adopts the session of the most recent locally stored turn when
	// no session is current and returns the current session id. It returns ""
	// when the history is empty.
	Resume(ctx context.Context) (string, error)

	// History returns up to limit turns of the current session from the local
	// history, oldest first.
	History(ctx context.Context, limit int) ([]models.ChatTurn, error)
}

// ClientKnowledgeService defines the client-side contract for managing the
// knowledge base. Every operation validates its input before the backend is
// called.
type ClientKnowledgeService interface {
	// List returns one page of entries.
	List(ctx context.Context, params models.KnowledgeListParams) (models.KnowledgeList, error)

	// Get returns a single entry.
	Get(ctx context.Context, id int64) (models.Knowledge, error)

	// Create adds an entry and returns its id.
	Create(ctx context.Context, item models.KnowledgeCreate) (models.KnowledgeRef, error)

	// Update applies a partial update to an entry.
	Update(ctx context.Context, id int64, update models.KnowledgeUpdate) (models.KnowledgeRef, error)

	// Delete removes an entry.
	Delete(ctx context.Context, id int64) (models.KnowledgeRef, error)

	// Search looks entries up by keyword.
	Search(ctx context.Context, keyword string) (models.KnowledgeList, error)
}
