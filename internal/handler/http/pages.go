package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/qa-console/internal/app"
	"github.com/MKhiriev/qa-console/internal/logger"
	"github.com/MKhiriev/qa-console/internal/notify"
	"github.com/MKhiriev/qa-console/internal/router"
	"github.com/MKhiriev/qa-console/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// page names, one template file each
const (
	pageChat          = "chat"
	pageKnowledge     = "knowledge"
	pageKnowledgeItem = "knowledge_item"
	pageError         = "error"
)

var templateFuncs = template.FuncMap{
	"percent": func(v float64) string {
		return fmt.Sprintf("%.0f%%", v*100)
	},
	"join":        strings.Join,
	"deref":       valueOrDash,
	"value":       valueOrEmpty,
	"statusLabel": statusLabel,
	"formatTime": func(t time.Time) string {
		return t.Local().Format("2006-01-02 15:04")
	},
}

// pages holds one template set per page, each combining the shared layout
// with the page's "content" block.
type pages map[string]*template.Template

func parsePages() (pages, error) {
	p := make(pages)
	for _, name := range []string{pageChat, pageKnowledge, pageKnowledgeItem, pageError} {
		t, err := template.New(name).
			Funcs(templateFuncs).
			ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("error parsing page %s: %w", name, err)
		}
		p[name] = t
	}
	return p, nil
}

func (p pages) execute(w io.Writer, name string, data pageData) error {
	t, ok := p[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

type tab struct {
	Name   string
	Path   string
	Active bool
}

type pageData struct {
	Title   string
	Tabs    []tab
	Toasts  []notify.Notification
	Build   string
	Content any
}

type errorPage struct {
	Status  int
	Message string
}

// render writes page with status. Pending toasts are drained into the page,
// expired ones are dropped first.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, page string, view router.View, status int, content any) {
	h.toasts.Prune(h.now())

	data := pageData{
		Title:   h.title(view),
		Tabs:    h.tabs(view),
		Toasts:  h.toasts.Drain(),
		Build:   h.buildInfo.String(),
		Content: content,
	}

	var buf bytes.Buffer
	if err := h.pages.execute(&buf, page, data); err != nil {
		logger.FromRequest(r).Err(err).Str("page", page).Msg("error rendering page")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, view router.View, err error) {
	status := statusFromError(err)
	h.render(w, r, pageError, view, status, errorPage{Status: status, Message: errorMessage(err)})
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, pageError, "", http.StatusNotFound, errorPage{
		Status:  http.StatusNotFound,
		Message: app.MsgPageNotFound + ": " + r.URL.Path,
	})
}

func (h *Handler) tabs(active router.View) []tab {
	views := h.routes.Views()
	out := make([]tab, 0, len(views))
	for _, route := range views {
		out = append(out, tab{Name: route.Name, Path: route.Path, Active: route.View == active})
	}
	return out
}

func (h *Handler) title(view router.View) string {
	for _, route := range h.routes.Views() {
		if route.View == view {
			return route.Name
		}
	}
	return "Not found"
}

func valueOrDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

func valueOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
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
