package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	stockSyncJob *StockSyncJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	stockFeed ports.StockFeed,
	reconcileStockHandler commands.ReconcileStockCommandHandler,
	stockSyncSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		stockSyncJob: NewStockSyncJob(stockFeed, reconcileStockHandler, stockSyncSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.stockSyncJob.Start(); err != nil {
		return fmt.Errorf("failed to start stock sync job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stockSyncJob.Stop()
}
