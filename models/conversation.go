package models

import "time"

// ChatTurn is one question/answer exchange kept in the local history.
type ChatTurn struct {
	// TurnID is a client-generated unique id (UUID v7).
	TurnID string

	SessionID      string
	UserID         string
	UserMessage    string
	BotResponse    string
	Intent         string
	Confidence     float64
	KnowledgeID    *int64
	AnswerSource   string
	ResponseTimeMS int64
	CreatedAt      time.Time
}
