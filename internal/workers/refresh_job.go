// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-storefront/internal/logger"
)

// DefaultRefreshInterval is used when a RefreshJob gets a non-positive interval.
const DefaultRefreshInterval = 5 * time.Minute

// RefreshJob calls Refresh on a ticker. The job is idle until Start is called.
type RefreshJob struct {
	refresher Refresher
	interval  time.Duration
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a job that refreshes every interval.
func NewRefreshJob(refresher Refresher, interval time.Duration, log *logger.Logger) *RefreshJob {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	if log == nil {
		log = logger.Nop()
	}

	return &RefreshJob{
		refresher: refresher,
		interval:  interval,
		logger:    log.WithStr("worker", "refresh"),
	}
}

// Start implements Worker. It stops any previously running loop, then
// launches a goroutine that refreshes on every tick. Refresh errors are
// logged and do not stop the loop.
func (j *RefreshJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.refresher.Refresh(jobCtx); err != nil {
					j.logger.Warn().Err(err).Msg("periodic refresh failed")
				}
			}
		}
	}()
}

// Stop implements Worker. It cancels the loop and waits for it to exit.
func (j *RefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Interval returns the tick period.
func (j *RefreshJob) Interval() time.Duration {
	return j.interval
}
