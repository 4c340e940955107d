package workers

import (
	"context"

	"github.com/MKhiriev/qa-console/internal/config"
	"github.com/MKhiriev/qa-console/internal/logger"
	"github.com/MKhiriev/qa-console/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers enabled by cfg. The history
// pruner is added only when a history database is configured and the
// retention window is positive.
func NewWorkers(cfg *config.ClientConfig, storages *store.ClientStorages, logger *logger.Logger) *Workers {
	ws := &Workers{}

	if cfg.PruningEnabled() && storages != nil && storages.ConversationRepository != nil {
		ws.workers = append(ws.workers, NewHistoryPruner(
			storages.ConversationRepository,
			cfg.Workers.HistoryRetention,
			cfg.Workers.PruneInterval,
			logger,
		))
	}

	return ws
}

// Run starts every worker in declaration order.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops every worker in reverse order and waits for each to exit.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// Len returns the number of configured workers.
func (w *Workers) Len() int {
	return len(w.workers)
}
