package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// ReceiptPruner removes cached receipt files older than the given age and
// reports how many were deleted.
type ReceiptPruner interface {
	Prune(olderThan time.Duration) (int, error)
}

// ReceiptCleanupJob deletes stale cached receipt PDFs on a schedule.
// A pruned receipt is simply re-rendered on its next download.
type ReceiptCleanupJob struct {
	pruner    ReceiptPruner
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewReceiptCleanupJob creates a job that prunes receipts older than the
// retention window.
func NewReceiptCleanupJob(pruner ReceiptPruner, retention time.Duration, logger *slog.Logger) *ReceiptCleanupJob {
	return &ReceiptCleanupJob{
		pruner:    pruner,
		retention: retention,
		cron:      cron.New(),
		logger:    logger.With("component", "receipt_cleanup_job"),
	}
}

// Start begins the receipt cleanup job, running at the top of every hour.
func (j *ReceiptCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		removed, pruneErr := j.pruner.Prune(j.retention)
		if pruneErr != nil {
			j.logger.ErrorContext(ctx, "Receipt cleanup job failed", "error", pruneErr)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Pruned cached receipts", "removed", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Receipt cleanup job started (running hourly)")
	return nil
}

// Stop stops the receipt cleanup job.
func (j *ReceiptCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Receipt cleanup job stopped")
}
