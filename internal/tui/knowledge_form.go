package tui

import (
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/qa-console/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// form fields in focus order
const (
	fieldQuestion = iota
	fieldAnswer
	fieldCategory
	fieldKeywords
	fieldStatus
)

type knowledgeFormModel struct {
	question textinput.Model
	answer   textarea.Model
	category textinput.Model
	keywords textinput.Model
	status   textinput.Model

	focus      int
	editing    bool
	original   models.Knowledge
	submitting bool
}

// newKnowledgeFormModel opens an empty create form, or an edit form
// prefilled from item.
func newKnowledgeFormModel(item *models.Knowledge) knowledgeFormModel {
	newInput := func(placeholder string) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.Width = 60
		return in
	}

	answer := textarea.New()
	answer.Placeholder = "Answer"
	answer.SetWidth(62)
	answer.SetHeight(5)
	answer.ShowLineNumbers = false

	m := knowledgeFormModel{
		question: newInput("Question"),
		answer:   answer,
		category: newInput("Category (optional)"),
		keywords: newInput("Keywords, comma separated"),
		status:   newInput("0 draft, 1 published"),
	}

	if item != nil {
		m.editing = true
		m.original = *item
		m.question.SetValue(item.Question)
		m.answer.SetValue(item.Answer)
		m.category.SetValue(valueOrEmpty(item.Category))
		m.keywords.SetValue(strings.Join(item.Keywords, ", "))
		m.status.SetValue(strconv.Itoa(item.Status))
	}

	m.setFocus(fieldQuestion)
	return m
}

func (m knowledgeFormModel) fieldCount() int {
	if m.editing {
		return fieldStatus + 1
	}
	return fieldKeywords + 1
}

func (m *knowledgeFormModel) setFocus(field int) {
	m.focus = field
	m.question.Blur()
	m.answer.Blur()
	m.category.Blur()
	m.keywords.Blur()
	m.status.Blur()

	switch field {
	case fieldQuestion:
		m.question.Focus()
	case fieldAnswer:
		m.answer.Focus()
	case fieldCategory:
		m.category.Focus()
	case fieldKeywords:
		m.keywords.Focus()
	case fieldStatus:
		m.status.Focus()
	}
}

// Update handles a message for the focused field. submit is true when the
// user asked to save the form.
func (m knowledgeFormModel) Update(msg tea.Msg) (knowledgeFormModel, bool, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.save):
			return m, true, nil
		case key.Matches(keyMsg, keys.tab):
			m.setFocus((m.focus + 1) % m.fieldCount())
			return m, false, nil
		case key.Matches(keyMsg, keys.backtab):
			m.setFocus((m.focus - 1 + m.fieldCount()) % m.fieldCount())
			return m, false, nil
		case key.Matches(keyMsg, keys.enter) && m.focus != fieldAnswer:
			if m.focus == m.fieldCount()-1 {
				return m, true, nil
			}
			m.setFocus(m.focus + 1)
			return m, false, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldQuestion:
		m.question, cmd = m.question.Update(msg)
	case fieldAnswer:
		m.answer, cmd = m.answer.Update(msg)
	case fieldCategory:
		m.category, cmd = m.category.Update(msg)
	case fieldKeywords:
		m.keywords, cmd = m.keywords.Update(msg)
	case fieldStatus:
		m.status, cmd = m.status.Update(msg)
	}
	return m, false, cmd
}

func (m knowledgeFormModel) toCreate() models.KnowledgeCreate {
	item := models.KnowledgeCreate{
		Question: strings.TrimSpace(m.question.Value()),
		Answer:   strings.TrimSpace(m.answer.Value()),
		Keywords: splitKeywords(m.keywords.Value()),
	}
	if category := strings.TrimSpace(m.category.Value()); category != "" {
		item.Category = &category
	}
	return item
}

// toUpdate returns only the fields that differ from the original entry.
func (m knowledgeFormModel) toUpdate() models.KnowledgeUpdate {
	var update models.KnowledgeUpdate

	if question := strings.TrimSpace(m.question.Value()); question != m.original.Question {
		update.Question = &question
	}
	if answer := strings.TrimSpace(m.answer.Value()); answer != m.original.Answer {
		update.Answer = &answer
	}
	if category := strings.TrimSpace(m.category.Value()); category != valueOrEmpty(m.original.Category) {
		update.Category = &category
	}
	if keywords := splitKeywords(m.keywords.Value()); !slices.Equal(keywords, m.original.Keywords) {
		if keywords == nil {
			keywords = []string{}
		}
		update.Keywords = &keywords
	}

	status, err := strconv.Atoi(strings.TrimSpace(m.status.Value()))
	if err != nil {
		// rejected by the validator as an unknown status
		status = -1
	}
	if status != m.original.Status {
		update.Status = &status
	}

	return update
}

func (m knowledgeFormModel) View() string {
	title := "New entry"
	if m.editing {
		title = "Edit entry #" + strconv.FormatInt(m.original.ID, 10)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString("Question:\n" + m.question.View() + "\n\n")
	b.WriteString("Answer:\n" + m.answer.View() + "\n\n")
	b.WriteString("Category:\n" + m.category.View() + "\n\n")
	b.WriteString("Keywords:\n" + m.keywords.View() + "\n")
	if m.editing {
		b.WriteString("\nStatus:\n" + m.status.View() + "\n")
	}
	if m.submitting {
		b.WriteString("\nSaving...\n")
	}

	return b.String()
}

func splitKeywords(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func valueOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
