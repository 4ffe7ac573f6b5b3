package stats

import (
	"context"
	"time"

	"github.com/voltzpay/pix-dashboard/internal/domain/ports"
)

// Refresher recomputes the dashboard snapshot on a fixed interval. A failed
// cycle is logged and the ticker keeps running; the previous snapshot stays
// visible until a cycle succeeds.
type Refresher struct {
	service  *Service
	interval time.Duration
	logger   ports.Logger
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewRefresher creates a refresher for the given service
func NewRefresher(service *Service, interval time.Duration, logger ports.Logger) *Refresher {
	return &Refresher{
		service:  service,
		interval: interval,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Start runs one immediate refresh and then ticks until Stop is called or
// the parent context is cancelled
func (r *Refresher) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)

	go func() {
		defer close(r.done)

		if err := r.service.Refresh(ctx); err != nil {
			r.logger.Error("initial dashboard refresh failed", ports.Err(err))
		}

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := r.service.Refresh(ctx); err != nil {
					r.logger.Error("dashboard refresh failed", ports.Err(err))
				}
			}
		}
	}()
}

// Stop cancels the refresh loop and waits for it to exit. Stopping a
// refresher that was never started is a no-op.
func (r *Refresher) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
}
