package http

import (
	"sync"
	"time"

	"github.com/MKhiriev/qa-console/internal/logger"
	"github.com/MKhiriev/qa-console/internal/metrics"
	"github.com/MKhiriev/qa-console/internal/notify"
	"github.com/MKhiriev/qa-console/internal/router"
	"github.com/MKhiriev/qa-console/internal/service"
	"github.com/MKhiriev/qa-console/models"
	"github.com/prometheus/client_golang/prometheus"
)

// maxTranscript bounds the number of exchanges kept for the chat page.
const maxTranscript = 50

type Handler struct {
	chat      service.ClientChatService
	knowledge service.ClientKnowledgeService

	routes   *router.Table
	toasts   *notify.Toasts
	notifier notify.Notifier
	pages    pages

	metrics  *metrics.WebMetrics
	gatherer prometheus.Gatherer

	buildInfo models.AppBuildInfo
	logger    *logger.Logger
	now       func() time.Time

	mu         sync.Mutex
	transcript []chatEntry
}

// NewHandler builds the web console. Toasts are drained into every rendered
// page; notifier receives the console's own messages and usually fans out to
// toasts. webMetrics and gatherer may be nil, which disables /metrics.
func NewHandler(
	services *service.ClientServices,
	toasts *notify.Toasts,
	notifier notify.Notifier,
	routes *router.Table,
	webMetrics *metrics.WebMetrics,
	gatherer prometheus.Gatherer,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*Handler, error) {
	if services == nil || services.ChatService == nil || services.KnowledgeService == nil {
		return nil, ErrNoServices
	}
	if toasts == nil {
		toasts = notify.NewToasts(0, notify.DefaultCapacity)
	}
	if notifier == nil {
		notifier = toasts
	}
	if routes == nil {
		routes = router.Default()
	}

	p, err := parsePages()
	if err != nil {
		return nil, err
	}

	logger.Info().Msg("web console handler created")
	return &Handler{
		chat:      services.ChatService,
		knowledge: services.KnowledgeService,
		routes:    routes,
		toasts:    toasts,
		notifier:  notifier,
		pages:     p,
		metrics:   webMetrics,
		gatherer:  gatherer,
		buildInfo: buildInfo,
		logger:    logger,
		now:       time.Now,
	}, nil
}
