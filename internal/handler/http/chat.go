package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/qa-console/internal/app"
	"github.com/MKhiriev/qa-console/internal/logger"
	"github.com/MKhiriev/qa-console/internal/notify"
	"github.com/MKhiriev/qa-console/internal/router"
	"github.com/MKhiriev/qa-console/internal/service"
	"github.com/MKhiriev/qa-console/models"
)

type chatEntry struct {
	Question     string
	Answer       string
	Confidence   float64
	AnswerSource string
	Sources      []models.ChatSource
	Related      []string
	Err          string
	At           time.Time
}

type chatPage struct {
	SessionID string
	Entries   []chatEntry
	MaxLength int
}

func (h *Handler) showChat(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, pageChat, router.ViewChat, http.StatusOK, chatPage{
		SessionID: h.chat.SessionID(),
		Entries:   h.entries(),
		MaxLength: models.MaxChatMessageLength,
	})
}

// sendMessage asks the backend and returns the browser to the chat page.
// Validation failures are reported through the notifier only; other
// failures are kept in the transcript.
func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		notify.Warning(h.notifier, app.MsgInvalidDataProvided)
		seeOther(w, r, router.PathChat)
		return
	}

	question := r.PostForm.Get("message")
	_, resp, err := h.chat.Send(r.Context(), question)
	if errors.Is(err, service.ErrInvalidDataProvided) {
		seeOther(w, r, router.PathChat)
		return
	}

	entry := chatEntry{Question: strings.TrimSpace(question), At: h.now()}
	if err != nil {
		log.Err(err).Msg("chat message failed")
		entry.Err = chatErrorText(err)
	} else {
		entry.Answer = resp.Answer
		entry.Confidence = resp.Confidence
		entry.AnswerSource = resp.AnswerSource
		entry.Sources = resp.Sources
		entry.Related = resp.RelatedQuestions
	}
	h.appendEntry(entry)

	seeOther(w, r, router.PathChat)
}

func (h *Handler) resetChat(w http.ResponseWriter, r *http.Request) {
	h.chat.NewSession()

	h.mu.Lock()
	h.transcript = nil
	h.mu.Unlock()

	seeOther(w, r, router.PathChat)
}

// RestoreTranscript resumes the most recent stored chat session and fills the
// transcript with its turns. It does nothing when the history is empty.
func (h *Handler) RestoreTranscript(ctx context.Context) error {
	sessionID, err := h.chat.Resume(ctx)
	if err != nil || sessionID == "" {
		return err
	}

	turns, err := h.chat.History(ctx, maxTranscript)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.transcript = h.transcript[:0]
	for _, turn := range turns {
		h.transcript = append(h.transcript, chatEntry{
			Question:     turn.UserMessage,
			Answer:       turn.BotResponse,
			Confidence:   turn.Confidence,
			AnswerSource: turn.AnswerSource,
			At:           turn.CreatedAt,
		})
	}
	h.logger.Info().Str("session_id", sessionID).Int("turns", len(turns)).Msg("chat transcript restored")
	return nil
}

func (h *Handler) entries() []chatEntry {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]chatEntry, len(h.transcript))
	copy(out, h.transcript)
	return out
}

func (h *Handler) appendEntry(entry chatEntry) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.transcript = append(h.transcript, entry)
	if over := len(h.transcript) - maxTranscript; over > 0 {
		h.transcript = h.transcript[over:]
	}
}

func chatErrorText(err error) string {
	if errors.Is(err, service.ErrBackendUnavailable) {
		return app.MsgServerUnavailable
	}
	return app.MsgNoAnswer
}
