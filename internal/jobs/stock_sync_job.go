package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// StockSyncJob periodically pulls the ERP's stock snapshot and reconciles the
// local ledger against it. The ERP is the system of record; local quantities
// drift as reservations and releases accumulate between syncs.
type StockSyncJob struct {
	feed     ports.StockFeed
	handler  commands.ReconcileStockCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStockSyncJob creates a job that reconciles stock on the given cron
// schedule, e.g. "0 */15 * * * *" for every fifteen minutes.
func NewStockSyncJob(
	feed ports.StockFeed,
	handler commands.ReconcileStockCommandHandler,
	schedule string,
	logger *slog.Logger,
) *StockSyncJob {
	return &StockSyncJob{
		feed:     feed,
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stock_sync_job"),
	}
}

// Start schedules the reconciliation runs.
func (j *StockSyncJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.runOnce(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stock sync job started", "schedule", j.schedule)
	return nil
}

// Stop stops the stock sync job.
func (j *StockSyncJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stock sync job stopped")
}

// runOnce fetches one snapshot and overwrites the local ledger SKU by SKU.
// A failed SKU does not block the rest of the snapshot.
func (j *StockSyncJob) runOnce(ctx context.Context) {
	levels, err := j.feed.Snapshot(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stock snapshot fetch failed", "error", err)
		return
	}

	synced := 0
	for _, level := range levels {
		cmd, cmdErr := commands.NewReconcileStockCommand(level.SKU, level.Qty)
		if cmdErr != nil {
			j.logger.WarnContext(ctx, "Skipping malformed stock level",
				"sku", level.SKU, "qty", level.Qty, "error", cmdErr)
			continue
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Stock reconciliation failed",
				"sku", level.SKU, "error", handleErr)
			continue
		}
		synced++
	}

	j.logger.InfoContext(ctx, "Stock sync finished", "skus_total", len(levels), "skus_synced", synced)
}
