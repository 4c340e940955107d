package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/qa-console/internal/app"
	"github.com/MKhiriev/qa-console/internal/mock"
	"github.com/MKhiriev/qa-console/internal/notify"
	"github.com/MKhiriev/qa-console/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordedNotes struct {
	items []notify.Notification
}

func (r *recordedNotes) Notify(n notify.Notification) {
	r.items = append(r.items, n)
}

func newTestChatModel(t *testing.T, ctrl *gomock.Controller) (chatModel, *mock.MockClientChatService, *recordedNotes) {
	t.Helper()

	svc := mock.NewMockClientChatService(ctrl)
	notes := &recordedNotes{}
	return newChatModel(context.Background(), svc, notes), svc, notes
}

func typeText(m tea.Model, text string) tea.Model {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return updated
}

func answered(question string) chatAnsweredMsg {
	return chatAnsweredMsg{
		question: question,
		turn:     models.ChatTurn{SessionID: "session-1"},
		response: models.ChatResponse{
			SessionID:        "session-1",
			Answer:           "Open the orders page.",
			Confidence:       0.87,
			AnswerSource:     models.AnswerSourceKnowledgeBase,
			Sources:          []models.ChatSource{{ID: 42, Question: "How to get a refund?", Similarity: 0.91}},
			RelatedQuestions: []string{"How long does a refund take?"},
		},
	}
}

func TestChatModel_EnterSendsQuestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, svc, _ := newTestChatModel(t, ctrl)

	updated := typeText(m, "refund?")
	updated, cmd := updated.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(chatModel)

	require.NotNil(t, cmd)
	assert.True(t, m.waiting)
	assert.Equal(t, "refund?", m.pending)
	assert.Empty(t, m.input.Value())

	resp := answered("refund?")
	svc.EXPECT().Send(gomock.Any(), "refund?").Return(resp.turn, resp.response, nil)

	msg := m.cmdSend("refund?")()
	assert.Equal(t, resp, msg)
}

func TestChatModel_EnterIgnoredWhileWaitingOrBlank(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, _ := newTestChatModel(t, ctrl)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)

	m.waiting = true
	updated := typeText(m, "second")
	_, cmd = updated.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestChatModel_AnswerRendered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, _ := newTestChatModel(t, ctrl)
	m.waiting = true

	updated, _ := m.Update(answered("refund?"))
	m = updated.(chatModel)

	assert.False(t, m.waiting)
	require.Len(t, m.entries, 1)
	assert.Equal(t, "session-1", m.sessionID)

	transcript := m.renderTranscript()
	assert.Contains(t, transcript, "refund?")
	assert.Contains(t, transcript, "Open the orders page.")
	assert.Contains(t, transcript, "confidence 87%")
	assert.Contains(t, transcript, "#42 How to get a refund?")
	assert.Contains(t, transcript, "How long does a refund take?")
	assert.Contains(t, m.View(), "session-1")
}

func TestChatModel_ErrorRenderedInline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, _ := newTestChatModel(t, ctrl)

	updated, _ := m.Update(chatAnsweredMsg{question: "hi", err: errors.New("dial tcp 127.0.0.1:8080: connection refused")})
	m = updated.(chatModel)

	require.Len(t, m.entries, 1)
	assert.Equal(t, "network is down or the QA server is unavailable", m.entries[0].err)
	assert.Empty(t, m.sessionID)
}

func TestChatModel_HistoryLoaded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, svc, _ := newTestChatModel(t, ctrl)

	turns := []models.ChatTurn{{UserMessage: "q1", BotResponse: "a1"}, {UserMessage: "q2", BotResponse: "a2"}}
	gomock.InOrder(
		svc.EXPECT().Resume(gomock.Any()).Return("prev", nil),
		svc.EXPECT().History(gomock.Any(), historyLimit).Return(turns, nil),
	)

	msg := m.cmdLoadHistory()()
	updated, _ := m.Update(msg)
	m = updated.(chatModel)

	assert.True(t, m.historyLoaded)
	assert.Equal(t, "prev", m.sessionID)
	require.Len(t, m.entries, 2)
	assert.Equal(t, "a2", m.entries[1].answer)
	assert.Contains(t, m.View(), "prev")
}

func TestChatModel_HistoryEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, svc, _ := newTestChatModel(t, ctrl)

	// no stored session: History is not asked for
	svc.EXPECT().Resume(gomock.Any()).Return("", nil)

	updated, _ := m.Update(m.cmdLoadHistory()())
	m = updated.(chatModel)

	assert.True(t, m.historyLoaded)
	assert.Empty(t, m.sessionID)
	assert.Empty(t, m.entries)
}

func TestChatModel_HistoryResumeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, svc, _ := newTestChatModel(t, ctrl)

	svc.EXPECT().Resume(gomock.Any()).Return("", errors.New("database is locked"))

	updated, _ := m.Update(m.cmdLoadHistory()())
	m = updated.(chatModel)

	assert.True(t, m.historyLoaded)
	assert.Empty(t, m.entries)
}

func TestChatModel_CopyLastAnswer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, notes := newTestChatModel(t, ctrl)

	var copied string
	m.copy = func(s string) error {
		copied = s
		return nil
	}

	updated, _ := m.Update(answered("refund?"))
	_, cmd := updated.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	require.NotNil(t, cmd)

	assert.Equal(t, copiedMsg{}, cmd())
	assert.Equal(t, "Open the orders page.", copied)
	require.Len(t, notes.items, 1)
	assert.Equal(t, app.MsgAnswerCopied, notes.items[0].Message)
}

func TestChatModel_CopyWithoutAnswer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, notes := newTestChatModel(t, ctrl)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Nil(t, cmd)
	require.Len(t, notes.items, 1)
	assert.Equal(t, notify.LevelWarning, notes.items[0].Level)
}

func TestChatModel_CopyFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, notes := newTestChatModel(t, ctrl)
	m.copy = func(string) error { return errors.New("no xclip") }

	updated, _ := m.Update(answered("refund?"))
	_, cmd := updated.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	require.NotNil(t, cmd)

	msg := cmd().(copiedMsg)
	assert.Error(t, msg.err)
	require.Len(t, notes.items, 1)
	assert.Equal(t, app.MsgClipboardUnavailable, notes.items[0].Message)
}

func TestChatModel_NewSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, svc, _ := newTestChatModel(t, ctrl)
	svc.EXPECT().NewSession()

	updated, _ := m.Update(answered("refund?"))
	updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	m = updated.(chatModel)

	assert.Empty(t, m.entries)
	assert.Empty(t, m.sessionID)
}
