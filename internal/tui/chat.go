package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/qa-console/internal/app"
	"github.com/MKhiriev/qa-console/internal/notify"
	"github.com/MKhiriev/qa-console/internal/service"
	"github.com/MKhiriev/qa-console/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// historyLimit is how many turns of the current session are restored.
const historyLimit = 50

type chatEntry struct {
	question     string
	answer       string
	confidence   float64
	answerSource string
	sources      []models.ChatSource
	related      []string
	err          string
}

type chatModel struct {
	ctx      context.Context
	chat     service.ClientChatService
	notifier notify.Notifier
	copy     func(string) error

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	entries       []chatEntry
	pending       string
	waiting       bool
	historyLoaded bool
	sessionID     string
}

func newChatModel(ctx context.Context, chat service.ClientChatService, notifier notify.Notifier) chatModel {
	input := textinput.New()
	input.Placeholder = "Ask a question..."
	input.CharLimit = models.MaxChatMessageLength
	input.Width = 70
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := chatModel{
		ctx:      ctx,
		chat:     chat,
		notifier: notifier,
		copy:     clipboard.WriteAll,
		input:    input,
		viewport: viewport.New(76, 15),
		spinner:  s,
	}
	m.refresh()
	return m
}

func (m chatModel) Init() tea.Cmd {
	if m.historyLoaded {
		return textinput.Blink
	}
	return tea.Batch(textinput.Blink, m.cmdLoadHistory())
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.refresh()
		return m, nil

	case historyLoadedMsg:
		m.historyLoaded = true
		if msg.err != nil || len(m.entries) > 0 {
			return m, nil
		}
		if msg.sessionID != "" {
			m.sessionID = msg.sessionID
		}
		for _, turn := range msg.turns {
			m.entries = append(m.entries, chatEntry{
				question:     turn.UserMessage,
				answer:       turn.BotResponse,
				confidence:   turn.Confidence,
				answerSource: turn.AnswerSource,
			})
		}
		m.refresh()
		return m, nil

	case chatAnsweredMsg:
		m.waiting = false
		m.pending = ""
		entry := chatEntry{question: msg.question}
		if msg.err != nil {
			entry.err = humanizeServerUnavailableError(msg.err)
		} else {
			entry.answer = msg.response.Answer
			entry.confidence = msg.response.Confidence
			entry.answerSource = msg.response.AnswerSource
			entry.sources = msg.response.Sources
			entry.related = msg.response.RelatedQuestions
			m.sessionID = msg.turn.SessionID
		}
		m.entries = append(m.entries, entry)
		m.refresh()
		return m, nil

	case copiedMsg:
		return m, nil

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refresh()
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.enter):
			question := strings.TrimSpace(m.input.Value())
			if m.waiting || question == "" {
				return m, nil
			}
			m.waiting = true
			m.pending = question
			m.input.Reset()
			m.refresh()
			return m, tea.Batch(m.spinner.Tick, m.cmdSend(question))

		case key.Matches(msg, keys.copy):
			return m, m.cmdCopyLastAnswer()

		case key.Matches(msg, keys.newSession):
			if m.waiting {
				return m, nil
			}
			m.chat.NewSession()
			m.entries = nil
			m.sessionID = ""
			m.refresh()
			return m, nil

		case key.Matches(msg, keys.pageUp), key.Matches(msg, keys.pageDown),
			key.Matches(msg, keys.up), key.Matches(msg, keys.down):
			// j/k are letters of the question, only arrows scroll
			if s := msg.String(); s == "j" || s == "k" {
				break
			}
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) View() string {
	session := "new"
	if m.sessionID != "" {
		session = m.sessionID
	}

	var b strings.Builder
	b.WriteString(helpStyle.Render("session: " + session))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n\n")
	b.WriteString(m.input.View())

	return renderPage("CHAT", b.String(), "enter: send  ctrl+y: copy answer  ctrl+n: new session  pgup/pgdn: scroll")
}

func (m *chatModel) resize(width, height int) {
	if width > 12 {
		m.viewport.Width = width - 8
		m.input.Width = width - 12
	}
	if height > 19 {
		m.viewport.Height = height - 14
	}
}

// refresh re-renders the transcript into the viewport and scrolls to the end.
func (m *chatModel) refresh() {
	content := m.renderTranscript()
	if m.viewport.Width > 0 {
		content = lipgloss.NewStyle().Width(m.viewport.Width).Render(content)
	}
	m.viewport.SetContent(content)
	m.viewport.GotoBottom()
}

func (m chatModel) renderTranscript() string {
	if len(m.entries) == 0 && !m.waiting {
		return helpStyle.Render("Ask anything about our products and services.")
	}

	var b strings.Builder
	for _, e := range m.entries {
		b.WriteString(userStyle.Render("You: "))
		b.WriteString(e.question)
		b.WriteString("\n")

		if e.err != "" {
			b.WriteString(errorStyle.Render("Error: "))
			b.WriteString(e.err)
			b.WriteString("\n\n")
			continue
		}

		b.WriteString(botStyle.Render("Bot: "))
		b.WriteString(e.answer)
		b.WriteString("\n")
		b.WriteString(renderAnswerMeta(e))
		b.WriteString("\n")
	}

	if m.waiting {
		b.WriteString(userStyle.Render("You: "))
		b.WriteString(m.pending)
		b.WriteString("\n")
		b.WriteString(botStyle.Render("Bot: "))
		b.WriteString(m.spinner.View())
		b.WriteString(" thinking...\n")
	}

	return b.String()
}

func renderAnswerMeta(e chatEntry) string {
	var lines []string

	meta := "confidence " + percent(e.confidence)
	if e.answerSource != "" {
		meta += "  source " + e.answerSource
	}
	lines = append(lines, meta)

	for i, s := range e.sources {
		switch {
		case s.Question != "":
			lines = append(lines, fmt.Sprintf("[%d] #%d %s (%.2f)", i+1, s.ID, s.Question, s.Similarity))
		case s.URL != "":
			lines = append(lines, fmt.Sprintf("[%d] %s %s", i+1, s.Title, s.URL))
		}
	}

	if len(e.related) > 0 {
		lines = append(lines, "related: "+strings.Join(e.related, " | "))
	}

	for i := range lines {
		lines[i] = metaStyle.Render(lines[i])
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m chatModel) lastAnswer() (string, bool) {
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].err == "" && m.entries[i].answer != "" {
			return m.entries[i].answer, true
		}
	}
	return "", false
}

func (m chatModel) cmdSend(question string) tea.Cmd {
	ctx := m.ctx
	svc := m.chat

	return func() tea.Msg {
		turn, resp, err := svc.Send(ctx, question)
		return chatAnsweredMsg{question: question, turn: turn, response: resp, err: err}
	}
}

func (m chatModel) cmdLoadHistory() tea.Cmd {
	ctx := m.ctx
	svc := m.chat

	return func() tea.Msg {
		sessionID, err := svc.Resume(ctx)
		if err != nil {
			return historyLoadedMsg{err: err}
		}
		if sessionID == "" {
			return historyLoadedMsg{}
		}

		turns, err := svc.History(ctx, historyLimit)
		return historyLoadedMsg{sessionID: sessionID, turns: turns, err: err}
	}
}

func (m chatModel) cmdCopyLastAnswer() tea.Cmd {
	answer, ok := m.lastAnswer()
	if !ok {
		notify.Warning(m.notifier, app.MsgNothingToCopy)
		return nil
	}

	write := m.copy
	notifier := m.notifier
	return func() tea.Msg {
		if err := write(answer); err != nil {
			notify.Error(notifier, app.MsgClipboardUnavailable)
			return copiedMsg{err: err}
		}
		notify.Success(notifier, app.MsgAnswerCopied)
		return copiedMsg{}
	}
}
