package jobs

import (
	"log/slog"

	"canteen/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderExpiryJob *OrderExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) *JobManager {
	return &JobManager{
		orderExpiryJob: NewOrderExpiryJob(uowFactory, logger),
	}
}

// StartAll starts all background jobs.
// If a job fails to start, already running jobs are stopped before returning.
func (jm *JobManager) StartAll() error {
	if err := jm.orderExpiryJob.Start(); err != nil {
		return err
	}

	return nil
}

// StopAll stops all background jobs.
func (jm *JobManager) StopAll() {
	jm.orderExpiryJob.Stop()
}
