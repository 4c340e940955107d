package metrics

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsPath is excluded from request counting.
const MetricsPath = "/metrics"

// WebMetrics counts requests served by the web console.
type WebMetrics struct {
	requests *prometheus.CounterVec
}

func NewWebMetrics(reg prometheus.Registerer) (*WebMetrics, error) {
	m := &WebMetrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "qa_web_requests_total",
				Help: "Total number of HTTP requests processed by the web console.",
			},
			[]string{"method", "path", "status"},
		),
	}

	if err := reg.Register(m.requests); err != nil {
		return nil, err
	}

	return m, nil
}

// Middleware counts every request by its chi route pattern, falling back to
// the raw path for unmatched requests.
func (m *WebMetrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == MetricsPath {
			next.ServeHTTP(w, r)
			return
		}

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.requests.WithLabelValues(r.Method, path, strconv.Itoa(status)).Inc()
	})
}
