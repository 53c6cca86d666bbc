package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	receiptCleanupJob *ReceiptCleanupJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(pruner ReceiptPruner, receiptRetention time.Duration, logger *slog.Logger) *JobManager {
	return &JobManager{
		receiptCleanupJob: NewReceiptCleanupJob(pruner, receiptRetention, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.receiptCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start receipt cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.receiptCleanupJob.Stop()
}
