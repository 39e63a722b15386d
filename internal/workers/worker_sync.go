// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-keeper-client/internal/config"
	"github.com/MKhiriev/go-pass-keeper-client/internal/logger"
	"github.com/MKhiriev/go-pass-keeper-client/internal/service"
)

// SyncWorker keeps the local vault in sync with the server.
type SyncWorker struct {
	job      service.SyncJob
	interval time.Duration
	logger   *logger.Logger
}

// NewSyncWorker wraps job into a Worker running every cfg.SyncInterval.
func NewSyncWorker(job service.SyncJob, cfg config.ClientWorkers, logger *logger.Logger) *SyncWorker {
	return &SyncWorker{job: job, interval: cfg.SyncInterval, logger: logger}
}

func (s *SyncWorker) Start(ctx context.Context) {
	s.logger.Info().
		Str("func", "SyncWorker.Start").
		Dur("interval", s.interval).
		Msg("starting vault sync worker")
	s.job.Start(ctx, s.interval)
}

func (s *SyncWorker) Stop() {
	s.job.Stop()
	s.logger.Info().
		Str("func", "SyncWorker.Stop").
		Msg("vault sync worker stopped")
}
