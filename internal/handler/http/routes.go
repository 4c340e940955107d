package http

import (
	"net/http"

	"github.com/MKhiriev/qa-console/internal/metrics"
	"github.com/MKhiriev/qa-console/internal/router"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Init builds the router. Every route of the table is served with GET:
// redirects answer 302 and views render their page.
func (h *Handler) Init() *chi.Mux {
	mux := chi.NewRouter()
	mux.Use(middleware.Recoverer)
	mux.Use(h.withTraceID)
	mux.Use(withLogging)
	if h.metrics != nil {
		mux.Use(h.metrics.Middleware)
	}
	mux.Use(middleware.Compress(5, "text/html", "text/plain"))

	for _, route := range h.routes.Routes() {
		if route.IsRedirect() {
			mux.Get(route.Path, redirectTo(route.Redirect))
			continue
		}

		switch route.View {
		case router.ViewChat:
			mux.Get(route.Path, h.showChat)
		case router.ViewKnowledge:
			mux.Get(route.Path, h.showKnowledge)
		}
	}

	// form actions
	mux.Post(router.PathChat, h.sendMessage)
	mux.Post(router.PathChat+"/reset", h.resetChat)
	mux.Post(router.PathKnowledge, h.createKnowledge)
	mux.Route(router.PathKnowledge+"/{id}", func(r chi.Router) {
		r.Get("/", h.showKnowledgeItem)
		r.Post("/", h.updateKnowledge)
		r.Post("/delete", h.deleteKnowledge)
	})

	mux.Get("/version", h.getVersion)
	if h.gatherer != nil {
		mux.Method(http.MethodGet, metrics.MetricsPath, promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	}

	mux.NotFound(h.notFound)
	mux.MethodNotAllowed(CheckHTTPMethod(mux, h.notFound))

	return mux
}

func redirectTo(target string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target, http.StatusFound)
	}
}

// seeOther finishes a form post by sending the browser back to path.
func seeOther(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusSeeOther)
}
