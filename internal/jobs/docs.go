// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the fulfillment service.
//
// # Available Jobs
//
// 1. StockSyncJob - Pulls the ERP stock snapshot on a configurable schedule
// and reconciles the local ledger against it, SKU by SKU.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(stockFeed, reconcileStockHandler, "0 */15 * * * *", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
//   - A failed snapshot fetch skips the whole run; the next scheduled run retries.
//   - A failed SKU reconciliation is logged and does not block the rest of
//     the snapshot.
package jobs
