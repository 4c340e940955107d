package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/qa-console/internal/service"
	"github.com/MKhiriev/qa-console/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const knowledgePageSize = 20

type knowledgeMode int

const (
	knowledgeBrowse knowledgeMode = iota
	knowledgeSearch
	knowledgeForm
	knowledgeConfirm
)

type knowledgeModel struct {
	ctx context.Context
	svc service.ClientKnowledgeService

	mode    knowledgeMode
	items   []models.Knowledge
	total   int
	idx     int
	skip    int
	keyword string
	detail  bool
	loading bool
	loadErr string

	spinner       spinner.Model
	search        textinput.Model
	form          knowledgeFormModel
	confirm       confirmModel
	pendingDelete int64
}

func newKnowledgeModel(ctx context.Context, svc service.ClientKnowledgeService) knowledgeModel {
	search := textinput.New()
	search.Placeholder = "keyword"
	search.Width = 40

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return knowledgeModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		spinner: s,
		search:  search,
	}
}

func (m knowledgeModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m knowledgeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case knowledgeLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.loadErr = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.loadErr = ""
		m.keyword = msg.keyword
		m.items = msg.list.Items
		m.total = msg.list.Total
		if m.idx >= len(m.items) {
			m.idx = len(m.items) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case knowledgeSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			return m, nil
		}
		m.mode = knowledgeBrowse
		return m.reload()

	case knowledgeDeletedMsg:
		if msg.err != nil {
			return m, nil
		}
		return m.reload()

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch m.mode {
		case knowledgeSearch:
			return m.updateSearch(msg)
		case knowledgeForm:
			return m.updateForm(msg)
		case knowledgeConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	// cursor blink and other non-key messages of the active input
	var cmd tea.Cmd
	switch m.mode {
	case knowledgeSearch:
		m.search, cmd = m.search.Update(msg)
	case knowledgeForm:
		m.form, _, cmd = m.form.Update(msg)
	}
	return m, cmd
}

func (m knowledgeModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.pageDown):
		if m.keyword == "" && m.skip+knowledgePageSize < m.total {
			m.skip += knowledgePageSize
			m.idx = 0
			return m.reload()
		}
	case key.Matches(msg, keys.pageUp):
		if m.keyword == "" && m.skip > 0 {
			m.skip -= knowledgePageSize
			if m.skip < 0 {
				m.skip = 0
			}
			m.idx = 0
			return m.reload()
		}
	case key.Matches(msg, keys.enter):
		if _, ok := m.current(); ok {
			m.detail = !m.detail
		}
	case key.Matches(msg, keys.esc):
		if m.detail {
			m.detail = false
			return m, nil
		}
		if m.keyword != "" {
			m.keyword = ""
			m.idx = 0
			return m.reload()
		}
	case key.Matches(msg, keys.search):
		m.mode = knowledgeSearch
		m.detail = false
		m.search.SetValue(m.keyword)
		return m, m.search.Focus()
	case key.Matches(msg, keys.newItem):
		m.mode = knowledgeForm
		m.form = newKnowledgeFormModel(nil)
		return m, textinput.Blink
	case key.Matches(msg, keys.edit):
		if item, ok := m.current(); ok {
			m.mode = knowledgeForm
			m.form = newKnowledgeFormModel(&item)
			return m, textinput.Blink
		}
	case key.Matches(msg, keys.delete):
		if item, ok := m.current(); ok {
			m.mode = knowledgeConfirm
			m.pendingDelete = item.ID
			m.confirm = confirmModel{message: fitText(item.Question, 40)}
		}
	case key.Matches(msg, keys.reload):
		return m.reload()
	}

	return m, nil
}

func (m knowledgeModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = knowledgeBrowse
		m.search.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		m.mode = knowledgeBrowse
		m.search.Blur()
		m.keyword = strings.TrimSpace(m.search.Value())
		m.idx = 0
		m.skip = 0
		return m.reload()
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m knowledgeModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) {
		m.mode = knowledgeBrowse
		return m, nil
	}
	if m.form.submitting {
		return m, nil
	}

	var (
		submit bool
		cmd    tea.Cmd
	)
	m.form, submit, cmd = m.form.Update(msg)
	if !submit {
		return m, cmd
	}

	m.form.submitting = true
	if m.form.editing {
		return m, m.cmdUpdate(m.form.original.ID, m.form.toUpdate())
	}
	return m, m.cmdCreate(m.form.toCreate())
}

func (m knowledgeModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.mode = knowledgeBrowse
		id := m.pendingDelete
		m.pendingDelete = 0
		return m, m.cmdDelete(id)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.mode = knowledgeBrowse
		m.pendingDelete = 0
	}
	return m, nil
}

func (m knowledgeModel) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m knowledgeModel) current() (models.Knowledge, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Knowledge{}, false
	}
	return m.items[m.idx], true
}

func (m knowledgeModel) View() string {
	switch m.mode {
	case knowledgeForm:
		return renderPage("KNOWLEDGE", m.form.View(), "tab: next field  enter/ctrl+s: save  esc: cancel")
	case knowledgeConfirm:
		return renderPage("KNOWLEDGE", m.confirm.View(), "")
	}

	if item, ok := m.current(); ok && m.detail {
		return renderPage("KNOWLEDGE #"+fmt.Sprint(item.ID), renderKnowledgeDetail(item), "e: edit  d: delete  esc: back")
	}

	var b strings.Builder
	if m.mode == knowledgeSearch {
		b.WriteString("Search: " + m.search.View() + "\n\n")
	} else if m.keyword != "" {
		b.WriteString(fmt.Sprintf("Results for %q: %d\n\n", m.keyword, m.total))
	} else {
		b.WriteString(m.pageLabel() + "\n\n")
	}

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " loading...\n")
	case m.loadErr != "":
		b.WriteString(errorStyle.Render("Error: ") + m.loadErr + "\n")
	case len(m.items) == 0:
		b.WriteString("No entries\n")
	default:
		for i, item := range m.items {
			line := fmt.Sprintf("#%-5d %-9s %s", item.ID, statusLabel(item.Status), fitText(item.Question, 60))
			if item.Category != nil && *item.Category != "" {
				line += helpStyle.Render("  [" + *item.Category + "]")
			}
			if i == m.idx {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	hotKeys := "enter: open  /: search  n: new  e: edit  d: delete  r: reload  pgup/pgdn: page"
	if m.mode == knowledgeSearch {
		hotKeys = "enter: search  esc: cancel"
	}
	return renderPage("KNOWLEDGE", b.String(), hotKeys)
}

func (m knowledgeModel) pageLabel() string {
	if m.total == 0 {
		return "0 entries"
	}
	last := m.skip + len(m.items)
	return fmt.Sprintf("%d-%d of %d", m.skip+1, last, m.total)
}

func renderKnowledgeDetail(item models.Knowledge) string {
	var b strings.Builder
	b.WriteString("Question: " + item.Question + "\n\n")
	b.WriteString("Answer:\n" + item.Answer + "\n\n")
	b.WriteString("Category: " + valueOrDash(item.Category) + "\n")
	keywords := strings.Join(item.Keywords, ", ")
	b.WriteString("Keywords: " + valueOrDash(&keywords) + "\n")
	b.WriteString("Source:   " + valueOrDash(item.Source) + "\n")
	b.WriteString("Status:   " + statusLabel(item.Status) + "\n")
	if !item.CreatedAt.IsZero() {
		b.WriteString("Created:  " + item.CreatedAt.Format("2006-01-02 15:04") + "\n")
	}
	if !item.UpdatedAt.IsZero() {
		b.WriteString("Updated:  " + item.UpdatedAt.Format("2006-01-02 15:04") + "\n")
	}
	return b.String()
}

func statusLabel(status int) string {
	switch status {
	case models.KnowledgeStatusPublished:
		return "published"
	case models.KnowledgeStatusDraft:
		return "draft"
	default:
		return "unknown"
	}
}

func (m knowledgeModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	svc := m.svc
	keyword := m.keyword
	params := models.KnowledgeListParams{Skip: m.skip, Limit: knowledgePageSize}

	return func() tea.Msg {
		var (
			list models.KnowledgeList
			err  error
		)
		if keyword != "" {
			list, err = svc.Search(ctx, keyword)
		} else {
			list, err = svc.List(ctx, params)
		}
		return knowledgeLoadedMsg{list: list, keyword: keyword, err: err}
	}
}

func (m knowledgeModel) cmdCreate(item models.KnowledgeCreate) tea.Cmd {
	ctx := m.ctx
	svc := m.svc

	return func() tea.Msg {
		_, err := svc.Create(ctx, item)
		return knowledgeSavedMsg{err: err}
	}
}

func (m knowledgeModel) cmdUpdate(id int64, update models.KnowledgeUpdate) tea.Cmd {
	ctx := m.ctx
	svc := m.svc

	return func() tea.Msg {
		_, err := svc.Update(ctx, id, update)
		return knowledgeSavedMsg{err: err}
	}
}

func (m knowledgeModel) cmdDelete(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.svc

	return func() tea.Msg {
		_, err := svc.Delete(ctx, id)
		return knowledgeDeletedMsg{err: err}
	}
}
