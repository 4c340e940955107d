package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/qa-console/internal/logger"
	"github.com/MKhiriev/qa-console/internal/store"
)

const defaultPruneInterval = time.Hour

// HistoryPruner deletes chat turns older than the retention window. It prunes
// once on start and then on every tick of the prune interval.
type HistoryPruner struct {
	repo      store.ConversationRepository
	retention time.Duration
	interval  time.Duration
	logger    *logger.Logger
	now       func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewHistoryPruner creates an idle pruner. A non-positive interval defaults
// to one hour.
func NewHistoryPruner(repo store.ConversationRepository, retention, interval time.Duration, logger *logger.Logger) *HistoryPruner {
	if interval <= 0 {
		interval = defaultPruneInterval
	}

	return &HistoryPruner{
		repo:      repo,
		retention: retention,
		interval:  interval,
		logger:    logger,
		now:       time.Now,
	}
}

// Run implements [Worker]. Any previously started run is stopped first.
func (p *HistoryPruner) Run(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		p.Prune(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				p.Prune(jobCtx)
			}
		}
	}()
}

// Stop implements [Worker].
func (p *HistoryPruner) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

// Prune runs a single pass and returns the number of deleted turns.
// Failures are logged; the next tick tries again.
func (p *HistoryPruner) Prune(ctx context.Context) int64 {
	if p.retention <= 0 {
		return 0
	}

	cutoff := p.now().Add(-p.retention)
	deleted, err := p.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Err(err).Str("func", "*HistoryPruner.Prune").Msg("error pruning chat history")
		}
		return 0
	}

	if deleted > 0 {
		p.logger.Info().Int64("deleted", deleted).Time("cutoff", cutoff).Msg("chat history pruned")
	}

	return deleted
}
