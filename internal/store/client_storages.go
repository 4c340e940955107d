package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/qa-console/internal/config"
	"github.com/MKhiriev/qa-console/internal/logger"
)

// ClientStorages groups the local repositories of a console.
type ClientStorages struct {
	// ConversationRepository keeps the chat history. It is a no-op
	// implementation when history is disabled.
	ConversationRepository ConversationRepository

	db *DB
}

// NewClientStorages opens the history database named by cfg.DB.DSN and
// applies its migrations:
//   - empty DSN: history disabled, a no-op repository is returned;
//   - postgres:// or postgresql:// DSN: PostgreSQL through pgx;
//   - anything else: a SQLite file, created when missing.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	if cfg.DB.DSN == "" {
		logger.Info().Msg("chat history disabled")
		return &ClientStorages{ConversationRepository: NewNoopConversationRepository()}, nil
	}

	logger.Info().Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	if isPostgresDSN(cfg.DB.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("history database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		ConversationRepository: NewConversationRepository(db, logger),
		db:                     db,
	}, nil
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func isPostgresDSN(dsn string) bool {
	lower := strings.ToLower(dsn)
	return strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://")
}
