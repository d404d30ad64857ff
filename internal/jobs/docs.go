// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the back office.
//
// # Available Jobs
//
// 1. ReviewBacklogJob - Runs every minute to measure the PENDING_REVIEW
// backlog and log its size and the age of its oldest order.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(reviewBacklogHandler, logger)
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
// The backlog probe is read-only, so every failure is logged as a system
// issue; there are no expected business errors to filter out.
package jobs
