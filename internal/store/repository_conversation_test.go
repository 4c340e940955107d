package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/qa-console/internal/logger"
	"github.com/MKhiriev/qa-console/migrations"
	"github.com/MKhiriev/qa-console/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConversationRepo(t *testing.T, dialect string) (ConversationRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	var classifier ErrorClassificator = NewSQLiteErrorClassifier()
	if dialect == migrations.DialectPostgres {
		classifier = NewPostgresErrorClassifier()
	}

	l := logger.Nop()
	repo := NewConversationRepository(newDB(db, dialect, classifier, l), l)
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func testTurn() models.ChatTurn {
	knowledgeID := int64(7)
	return models.ChatTurn{
		TurnID:         "0190-turn",
		SessionID:      "session-1",
		UserID:         "user-1",
		UserMessage:    "How do I get a refund?",
		BotResponse:    "Open the orders page.",
		Intent:         "refund",
		Confidence:     0.9,
		KnowledgeID:    &knowledgeID,
		AnswerSource:   models.AnswerSourceKnowledgeBase,
		ResponseTimeMS: 420,
		CreatedAt:      time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

var turnColumns = []string{
	"turn_id", "session_id", "user_id", "user_message", "bot_response", "intent",
	"confidence", "knowledge_id", "answer_source", "response_time_ms", "created_at",
}

// ── SaveTurn ─────────────────────────────────────────────────────────────────

func TestSaveTurn_SQLitePlaceholders(t *testing.T) {
	repo, mock, db := newTestConversationRepo(t, migrations.DialectSQLite)
	defer db.Close()

	turn := testTurn()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO conversation_history (turn_id,session_id,user_id,user_message,bot_response,intent,confidence,knowledge_id,answer_source,response_time_ms,created_at) VALUES (?,?,?,?,?,?,?,?,?,?,?)")).
		WithArgs(turn.TurnID, turn.SessionID, turn.UserID, turn.UserMessage, turn.BotResponse, turn.Intent,
			turn.Confidence, int64(7), turn.AnswerSource, turn.ResponseTimeMS, turn.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveTurn(context.Background(), turn))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveTurn_PostgresPlaceholders(t *testing.T) {
	repo, mock, db := newTestConversationRepo(t, migrations.DialectPostgres)
	defer db.Close()

	turn := testTurn()
	turn.KnowledgeID = nil
	mock.ExpectExec(regexp.QuoteMeta("VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)")).
		WithArgs(turn.TurnID, turn.SessionID, turn.UserID, turn.UserMessage, turn.BotResponse, turn.Intent,
			turn.Confidence, nil, turn.AnswerSource, turn.ResponseTimeMS, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveTurn(context.Background(), turn))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveTurn_StampsMissingTime(t *testing.T) {
	repo, mock, db := newTestConversationRepo(t, migrations.DialectSQLite)
	defer db.Close()

	turn := testTurn()
	turn.CreatedAt = time.Time{}
	mock.ExpectExec("INSERT INTO conversation_history").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), notZeroTime{}).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveTurn(context.Background(), turn))
	assert.NoError(t, mock.ExpectationsWereMet())
}

type notZeroTime struct{}

func (notZeroTime) Match(v driver.Value) bool {
	ts, ok := v.(time.Time)
	return ok && !ts.IsZero()
}

func TestSaveTurn_MissingIdentifiers(t *testing.T) {
	repo, mock, db := newTestConversationRepo(t, migrations.DialectSQLite)
	defer db.Close()

	turn := testTurn()
	turn.TurnID = ""
	assert.ErrorIs(t, repo.SaveTurn(context.Background(), turn), ErrInvalidTurn)

	turn = testTurn()
	turn.SessionID = ""
	assert.ErrorIs(t, repo.SaveTurn(context.Background(), turn), ErrInvalidTurn)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveTurn_NoRowsAffected(t *testing.T) {
	repo, mock, db := newTestConversationRepo(t, migrations.DialectSQLite)
	defer db.Close()

	mock.ExpectExec("INSERT INTO conversation_history").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.SaveTurn(context.Background(), testTurn()), ErrTurnNotSaved)
}

func TestSaveTurn_Errors(t *testing.T) {
	tests := []struct {
		name    string
		dialect string
		dbErr   error
		wantErr error
	}{
		{
			name:    "postgres unique violation",
			dialect: migrations.DialectPostgres,
			dbErr:   pgError(pgerrcode.UniqueViolation),
			wantErr: ErrDuplicateTurn,
		},
		{
			name:    "sqlite unique violation",
			dialect: migrations.DialectSQLite,
			dbErr:   sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique},
			wantErr: ErrDuplicateTurn,
		},
		{
			name:    "postgres deadlock",
			dialect: migrations.DialectPostgres,
			dbErr:   pgError(pgerrcode.DeadlockDetected),
			wantErr: ErrTemporary,
		},
		{
			name:    "sqlite busy",
			dialect: migrations.DialectSQLite,
			dbErr:   sqlite3.Error{Code: sqlite3.ErrBusy},
			wantErr: ErrTemporary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestConversationRepo(t, tt.dialect)
			defer db.Close()

			mock.ExpectExec("INSERT INTO conversation_history").WillReturnError(tt.dbErr)

			assert.ErrorIs(t, repo.SaveTurn(context.Background(), testTurn()), tt.wantErr)
		})
	}
}

func TestSaveTurn_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestConversationRepo(t, migrations.DialectPostgres)
	defer db.Close()

	mock.ExpectExec("INSERT INTO conversation_history").WillReturnError(errors.New("disk full"))

	err := repo.SaveTurn(context.Background(), testTurn())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected DB error")
	assert.NotErrorIs(t, err, ErrTemporary)
}

// ── ListSession / ListRecent ─────────────────────────────────────────────────

func TestListSession_ChronologicalOrder(t *testing.T) {
	repo, mock, db := newTestConversationRepo(t, migrations.DialectSQLite)
	defer db.Close()

	older := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	newer := older.Add(time.Minute)

	rows := sqlmock.NewRows(turnColumns).
		AddRow("t-2", "session-1", "", "second", "b2", "", 0.5, nil, models.AnswerSourceGeneralAI, 100, newer).
		AddRow("t-1", "session-1", "", "first", "b1", "", 0.9, int64(3), models.AnswerSourceKnowledgeBase, 200, older)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT turn_id, session_id, user_id, user_message, bot_response, intent, confidence, knowledge_id, answer_source, response_time_ms, created_at FROM conversation_history WHERE session_id = ? ORDER BY created_at DESC, id DESC LIMIT 10")).
		WithArgs("session-1").
		WillReturnRows(rows)

	turns, err := repo.ListSession(context.Background(), "session-1", 10)
	require.NoError(t, err)
	require.Len(t, turns, 2)

	assert.Equal(t, "t-1", turns[0].TurnID)
	require.NotNil(t, turns[0].KnowledgeID)
	assert.Equal(t, int64(3), *turns[0].KnowledgeID)
	assert.Equal(t, "t-2", turns[1].TurnID)
	assert.Nil(t, turns[1].KnowledgeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSession_DefaultLimit(t *testing.T) {
	repo, mock, db := newTestConversationRepo(t, migrations.DialectPostgres)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE session_id = $1 ORDER BY created_at DESC, id DESC LIMIT 50")).
		WithArgs("s").
		WillReturnRows(sqlmock.NewRows(turnColumns))

	turns, err := repo.ListSession(context.Background(), "s", 0)
	require.NoError(t, err)
	assert.Empty(t, turns)
	assert.NotNil(t, turns)
}

func TestListRecent(t *testing.T) {
	repo, mock, db := newTestConversationRepo(t, migrations.DialectSQLite)
	defer db.Close()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(turnColumns).
		AddRow("t-9", "s-2", "", "q", "a", "", 0.1, nil, models.AnswerSourceWebSearch, 50, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM conversation_history ORDER BY created_at DESC, id DESC LIMIT 5")).
		WillReturnRows(rows)

	turns, err := repo.ListRecent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, "s-2", turns[0].SessionID)
}

func TestListRecent_QueryError(t *testing.T) {
	repo, mock, db := newTestConversationRepo(t, migrations.DialectSQLite)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("no such table"))

	_, err := repo.ListRecent(context.Background(), 5)
	assert.Error(t, err)
}

func TestListRecent_ScanError(t *testing.T) {
	repo, mock, db := newTestConversationRepo(t, migrations.DialectSQLite)
	defer db.Close()

	rows := sqlmock.NewRows(turnColumns).
		AddRow("t", "s", "", "q", "a", "", "not-a-float", nil, "", 1, time.Now())
	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	_, err := repo.ListRecent(context.Background(), 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scan turn")
}

// ── DeleteOlderThan ──────────────────────────────────────────────────────────

func TestDeleteOlderThan(t *testing.T) {
	repo, mock, db := newTestConversationRepo(t, migrations.DialectPostgres)
	defer db.Close()

	cutoff := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM conversation_history WHERE created_at < $1")).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 12))

	n, err := repo.DeleteOlderThan(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteOlderThan_Error(t *testing.T) {
	repo, mock, db := newTestConversationRepo(t, migrations.DialectSQLite)
	defer db.Close()

	mock.ExpectExec("DELETE FROM conversation_history").WillReturnError(errors.New("locked"))

	_, err := repo.DeleteOlderThan(context.Background(), time.Now())
	assert.Error(t, err)
}
