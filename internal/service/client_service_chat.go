package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/qa-console/internal/adapter"
	"github.com/MKhiriev/qa-console/internal/app"
	"github.com/MKhiriev/qa-console/internal/logger"
	"github.com/MKhiriev/qa-console/internal/notify"
	"github.com/MKhiriev/qa-console/internal/store"
	"github.com/MKhiriev/qa-console/internal/utils"
	"github.com/MKhiriev/qa-console/internal/validators"
	"github.com/MKhiriev/qa-console/models"
)

type clientChatService struct {
	serverAdapter adapter.ServerAdapter
	history       store.ConversationRepository
	validator     validators.Validator
	notifier      notify.Notifier
	uuid          *utils.UUIDGenerator
	userID        string
	logger        *logger.Logger

	now func() time.Time

	mu        sync.RWMutex
	sessionID string
}

func NewClientChatService(
	history store.ConversationRepository,
	serverAdapter adapter.ServerAdapter,
	notifier notify.Notifier,
	userID string,
	logger *logger.Logger,
) ClientChatService {
	return &clientChatService{
		serverAdapter: serverAdapter,
		history:       history,
		validator:     validators.NewQAValidator(),
		notifier:      notifier,
		uuid:          utils.NewUUIDGenerator(),
		userID:        userID,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *clientChatService) Send(ctx context.Context, message string) (models.ChatTurn, models.ChatResponse, error) {
	req := models.ChatRequest{
		Message:   strings.TrimSpace(message),
		SessionID: s.SessionID(),
		UserID:    s.userID,
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		notify.Warning(s.notifier, err.Error())
		return models.ChatTurn{}, models.ChatResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	started := s.now()
	resp, err := s.serverAdapter.Chat().SendMessage(ctx, req)
	if err != nil {
		return models.ChatTurn{}, models.ChatResponse{}, mapAdapterError(err)
	}
	elapsed := s.now().Sub(started)

	sessionID := resp.SessionID
	if sessionID == "" {
		sessionID = req.SessionID
	}
	if sessionID == "" {
		// backend did not open a session, keep the history grouped anyway
		sessionID = s.uuid.Generate()
	}
	s.setSessionID(sessionID)

	turn := models.ChatTurn{
		TurnID:         s.uuid.Generate(),
		SessionID:      sessionID,
		UserID:         s.userID,
		UserMessage:    req.Message,
		BotResponse:    resp.Answer,
		Confidence:     resp.Confidence,
		KnowledgeID:    resp.TopKnowledgeID(),
		AnswerSource:   resp.AnswerSource,
		ResponseTimeMS: elapsed.Milliseconds(),
		CreatedAt:      started,
	}
	if resp.Intent != nil {
		turn.Intent = *resp.Intent
	}

	if err := s.history.SaveTurn(ctx, turn); err != nil {
		s.logger.Err(err).
			Str("func", "*clientChatService.Send").
			Str("turn_id", turn.TurnID).
			Msg("error saving chat turn to history")
	}

	return turn, resp, nil
}

func (s *clientChatService) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sessionID
}

func (s *clientChatService) NewSession() {
	s.setSessionID("")
	notify.Info(s.notifier, app.MsgNewSession)
}

func (s *clientChatService) Resume(ctx context.Context) (string, error) {
	if id := s.SessionID(); id != "" {
		return id, nil
	}

	recent, err := s.history.ListRecent(ctx, 1)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientChatService.Resume").Msg("error reading latest chat turn")
		return "", fmt.Errorf("error reading chat history: %w", err)
	}
	if len(recent) == 0 {
		return "", nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// a Send may have opened a session meanwhile
	if s.sessionID == "" {
		s.sessionID = recent[0].SessionID
		s.logger.Debug().Str("session_id", s.sessionID).Msg("resumed chat session from history")
	}
	return s.sessionID, nil
}

func (s *clientChatService) History(ctx context.Context, limit int) ([]models.ChatTurn, error) {
	sessionID := s.SessionID()
	if sessionID == "" {
		return []models.ChatTurn{}, nil
	}

	turns, err := s.history.ListSession(ctx, sessionID, limit)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientChatService.History").Msg("error reading chat history")
		return nil, fmt.Errorf("error reading chat history: %w", err)
	}

	return turns, nil
}

func (s *clientChatService) setSessionID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessionID = id
}
