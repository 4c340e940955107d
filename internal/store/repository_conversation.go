package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/qa-console/internal/logger"
	"github.com/MKhiriev/qa-console/models"
)

const (
	conversationTable = "conversation_history"

	// DefaultHistoryLimit applies when a list call passes a non-positive limit.
	DefaultHistoryLimit = 50
)

var conversationColumns = []string{
	"turn_id",
	"session_id",
	"user_id",
	"user_message",
	"bot_response",
	"intent",
	"confidence",
	"knowledge_id",
	"answer_source",
	"response_time_ms",
	"created_at",
}

// conversationRepository is the SQL implementation of [ConversationRepository]
// shared by the SQLite and PostgreSQL backends; only the placeholder format
// differs.
type conversationRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewConversationRepository(db *DB, logger *logger.Logger) ConversationRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating conversation repository")
	return &conversationRepository{
		db:     db,
		logger: logger,
	}
}

func (r *conversationRepository) SaveTurn(ctx context.Context, turn models.ChatTurn) error {
	if turn.TurnID == "" || turn.SessionID == "" {
		return ErrInvalidTurn
	}
	if turn.CreatedAt.IsZero() {
		turn.CreatedAt = time.Now()
	}

	var knowledgeID sql.NullInt64
	if turn.KnowledgeID != nil {
		knowledgeID = sql.NullInt64{Int64: *turn.KnowledgeID, Valid: true}
	}

	query, args, err := r.db.builder.
		Insert(conversationTable).
		Columns(conversationColumns...).
		Values(
			turn.TurnID,
			turn.SessionID,
			turn.UserID,
			turn.UserMessage,
			turn.BotResponse,
			turn.Intent,
			turn.Confidence,
			knowledgeID,
			turn.AnswerSource,
			turn.ResponseTimeMS,
			turn.CreatedAt.UTC(),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert turn query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*conversationRepository.SaveTurn").Str("turn_id", turn.TurnID).Msg("error inserting turn")
		return r.wrapError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrTurnNotSaved
	}

	return nil
}

func (r *conversationRepository) ListSession(ctx context.Context, sessionID string, limit int) ([]models.ChatTurn, error) {
	query, args, err := r.db.builder.
		Select(conversationColumns...).
		From(conversationTable).
		Where(sq.Eq{"session_id": sessionID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(normalizeLimit(limit))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list session query: %w", err)
	}

	turns, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	// newest first from the database, chronological for the caller
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}

	return turns, nil
}

func (r *conversationRepository) ListRecent(ctx context.Context, limit int) ([]models.ChatTurn, error) {
	query, args, err := r.db.builder.
		Select(conversationColumns...).
		From(conversationTable).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(normalizeLimit(limit))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list recent query: %w", err)
	}

	return r.query(ctx, query, args...)
}

func (r *conversationRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := r.db.builder.
		Delete(conversationTable).
		Where(sq.Lt{"created_at": cutoff.UTC()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*conversationRepository.DeleteOlderThan").Msg("error deleting turns")
		return 0, r.wrapError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}

	return affected, nil
}

func (r *conversationRepository) query(ctx context.Context, query string, args ...any) ([]models.ChatTurn, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*conversationRepository.query").Msg("error selecting turns")
		return nil, r.wrapError(err)
	}
	defer rows.Close()

	turns := make([]models.ChatTurn, 0)
	for rows.Next() {
		var (
			turn        models.ChatTurn
			knowledgeID sql.NullInt64
		)
		if err := rows.Scan(
			&turn.TurnID,
			&turn.SessionID,
			&turn.UserID,
			&turn.UserMessage,
			&turn.BotResponse,
			&turn.Intent,
			&turn.Confidence,
			&knowledgeID,
			&turn.AnswerSource,
			&turn.ResponseTimeMS,
			&turn.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan turn: %w", err)
		}
		if knowledgeID.Valid {
			id := knowledgeID.Int64
			turn.KnowledgeID = &id
		}
		turns = append(turns, turn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate turns: %w", err)
	}

	return turns, nil
}

func (r *conversationRepository) wrapError(err error) error {
	switch {
	case isUniqueViolation(err):
		return ErrDuplicateTurn
	case r.db.classify(err) == Retryable:
		return fmt.Errorf("%w: %w", ErrTemporary, err)
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	return limit
}
