// Package jobs provides scheduled background tasks for the hub network.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. ManifestReconciliationJob - Periodically counts shipments stuck in
// MANIFESTED whose manifest has been closed but that no hub has scanned in.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(strandedHandler, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The reconciliation job only observes. It logs what it finds and exports a
// gauge; it never mutates shipment state. Query failures are logged and the
// next tick retries.
package jobs
