// Package jobs provides scheduled background tasks for the ordering
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the ordering workflow requires.
//
// # Available Jobs
//
// 1. OrderExpiryJob - Runs every ten minutes to purge orders past the
// retention window, keeping the 4-character token space free for reuse.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(uowFactory, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
