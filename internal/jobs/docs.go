// Package jobs provides scheduled background tasks.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3, and are strictly
// observational: they read through the query side and log, never mutating
// restaurant state. Order status only moves when staff act.
//
// # Available Jobs
//
// 1. DashboardSnapshotJob - periodically logs the dashboard numbers so the
// service journal carries a trail of load over the day.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(getDashboardStatsHandler, schedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
