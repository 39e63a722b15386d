// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-keeper-client/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

type syncJob struct {
	vault VaultService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewSyncJob creates a syncJob that calls vault.Sync once on Start and then
// on a ticker. The job is idle until Start is called.
func NewSyncJob(vault VaultService, logger *logger.Logger) SyncJob {
	return &syncJob{vault: vault, logger: logger}
}

// Start implements SyncJob. The goroutine exits when ctx is cancelled or
// Stop is called.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.sync(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.sync(jobCtx)
			}
		}
	}()
}

// Stop implements SyncJob. Safe to call when the job is not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *syncJob) sync(ctx context.Context) {
	if err := j.vault.Sync(ctx); err != nil && ctx.Err() == nil {
		j.logger.Warn().Err(err).
			Str("func", "syncJob.sync").
			Msg("background sync failed")
	}
}
