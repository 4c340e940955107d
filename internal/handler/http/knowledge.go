package http

import (
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/qa-console/internal/app"
	"github.com/MKhiriev/qa-console/internal/logger"
	"github.com/MKhiriev/qa-console/internal/notify"
	"github.com/MKhiriev/qa-console/internal/router"
	"github.com/MKhiriev/qa-console/models"
	"github.com/go-chi/chi/v5"
)

// knowledgePageSize is the list limit used when the query carries none.
const knowledgePageSize = 20

type knowledgePage struct {
	Items    []models.Knowledge
	Total    int
	Keyword  string
	Category string
	From     int
	To       int
	PrevURL  string
	NextURL  string
	Err      string
}

type knowledgeItemPage struct {
	Item models.Knowledge
}

// showKnowledge lists entries. With q set it runs a keyword search instead
// and paging does not apply.
func (h *Handler) showKnowledge(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	params := models.KnowledgeListParams{
		Skip:     queryInt(query, "skip", 0),
		Limit:    queryInt(query, "limit", knowledgePageSize),
		Category: strings.TrimSpace(query.Get("category")),
	}
	keyword := strings.TrimSpace(query.Get("q"))

	var (
		list models.KnowledgeList
		err  error
	)
	if keyword != "" {
		list, err = h.knowledge.Search(r.Context(), keyword)
	} else {
		list, err = h.knowledge.List(r.Context(), params)
	}

	page := knowledgePage{Keyword: keyword, Category: params.Category}
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error loading knowledge entries")
		page.Err = errorMessage(err)
		h.render(w, r, pageKnowledge, router.ViewKnowledge, statusFromError(err), page)
		return
	}

	page.Items = list.Items
	page.Total = list.Total
	if keyword == "" {
		page.From = params.Skip + 1
		page.To = params.Skip + len(list.Items)
		page.PrevURL, page.NextURL = pagerURLs(params, list.Total)
	}

	h.render(w, r, pageKnowledge, router.ViewKnowledge, http.StatusOK, page)
}

func (h *Handler) showKnowledgeItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.renderError(w, r, router.ViewKnowledge, err)
		return
	}

	item, err := h.knowledge.Get(r.Context(), id)
	if err != nil {
		logger.FromRequest(r).Err(err).Int64("id", id).Msg("error loading knowledge entry")
		h.renderError(w, r, router.ViewKnowledge, err)
		return
	}

	h.render(w, r, pageKnowledgeItem, router.ViewKnowledge, http.StatusOK, knowledgeItemPage{Item: item})
}

func (h *Handler) createKnowledge(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		notify.Warning(h.notifier, app.MsgInvalidDataProvided)
		seeOther(w, r, router.PathKnowledge)
		return
	}

	ref, err := h.knowledge.Create(r.Context(), createFromForm(r.PostForm))
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error creating knowledge entry")
		seeOther(w, r, router.PathKnowledge)
		return
	}

	seeOther(w, r, itemPath(ref.ID))
}

// updateKnowledge sends only the fields that differ from the stored entry.
func (h *Handler) updateKnowledge(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		notify.Warning(h.notifier, app.MsgInvalidID)
		seeOther(w, r, router.PathKnowledge)
		return
	}
	if err = r.ParseForm(); err != nil {
		notify.Warning(h.notifier, app.MsgInvalidDataProvided)
		seeOther(w, r, itemPath(id))
		return
	}

	original, err := h.knowledge.Get(r.Context(), id)
	if err != nil {
		logger.FromRequest(r).Err(err).Int64("id", id).Msg("error loading knowledge entry")
		seeOther(w, r, router.PathKnowledge)
		return
	}

	if _, err = h.knowledge.Update(r.Context(), id, updateFromForm(r.PostForm, original)); err != nil {
		logger.FromRequest(r).Err(err).Int64("id", id).Msg("error updating knowledge entry")
	}

	seeOther(w, r, itemPath(id))
}

func (h *Handler) deleteKnowledge(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		notify.Warning(h.notifier, app.MsgInvalidID)
		seeOther(w, r, router.PathKnowledge)
		return
	}

	if _, err = h.knowledge.Delete(r.Context(), id); err != nil {
		logger.FromRequest(r).Err(err).Int64("id", id).Msg("error deleting knowledge entry")
		seeOther(w, r, itemPath(id))
		return
	}

	seeOther(w, r, router.PathKnowledge)
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

func itemPath(id int64) string {
	if id <= 0 {
		return router.PathKnowledge
	}
	return router.PathKnowledge + "/" + strconv.FormatInt(id, 10)
}

// queryInt reads a non-negative integer parameter, falling back to def when
// it is missing or malformed.
func queryInt(query url.Values, name string, def int) int {
	raw := strings.TrimSpace(query.Get(name))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}

func pagerURLs(params models.KnowledgeListParams, total int) (prev, next string) {
	link := func(skip int) string {
		q := url.Values{}
		q.Set("skip", strconv.Itoa(skip))
		q.Set("limit", strconv.Itoa(params.Limit))
		if params.Category != "" {
			q.Set("category", params.Category)
		}
		return router.PathKnowledge + "?" + q.Encode()
	}

	if params.Skip > 0 {
		prev = link(max(params.Skip-params.Limit, 0))
	}
	if params.Limit > 0 && params.Skip+params.Limit < total {
		next = link(params.Skip + params.Limit)
	}
	return prev, next
}

func createFromForm(form url.Values) models.KnowledgeCreate {
	item := models.KnowledgeCreate{
		Question: strings.TrimSpace(form.Get("question")),
		Answer:   strings.TrimSpace(form.Get("answer")),
		Keywords: splitKeywords(form.Get("keywords")),
	}
	if category := strings.TrimSpace(form.Get("category")); category != "" {
		item.Category = &category
	}
	if source := strings.TrimSpace(form.Get("source")); source != "" {
		item.Source = &source
	}
	return item
}

// updateFromForm compares the submitted fields with original. Fields absent
// from the form are left untouched.
func updateFromForm(form url.Values, original models.Knowledge) models.KnowledgeUpdate {
	var update models.KnowledgeUpdate

	if form.Has("question") {
		if question := strings.TrimSpace(form.Get("question")); question != original.Question {
			update.Question = &question
		}
	}
	if form.Has("answer") {
		if answer := strings.TrimSpace(form.Get("answer")); answer != original.Answer {
			update.Answer = &answer
		}
	}
	if form.Has("category") {
		if category := strings.TrimSpace(form.Get("category")); category != valueOrEmpty(original.Category) {
			update.Category = &category
		}
	}
	if form.Has("keywords") {
		if keywords := splitKeywords(form.Get("keywords")); !slices.Equal(keywords, original.Keywords) {
			if keywords == nil {
				keywords = []string{}
			}
			update.Keywords = &keywords
		}
	}
	if form.Has("status") {
		status, err := strconv.Atoi(strings.TrimSpace(form.Get("status")))
		if err != nil {
			status = -1
		}
		if status != original.Status {
			update.Status = &status
		}
	}

	return update
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
