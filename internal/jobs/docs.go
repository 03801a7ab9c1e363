// Package jobs provides scheduled background tasks for the checkout service.
//
// Jobs are built on github.com/robfig/cron/v3 with a seconds field in the
// schedule.
//
// # Available Jobs
//
// SessionExpiryJob discards checkout sessions that have not been touched for
// SESSION_TTL. It runs on SESSION_SWEEP_SCHEDULE, once a minute by default.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(expireHandler, "0 * * * * *", 30*time.Minute, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed sweep is logged and retried on the next tick. A failed start
// leaves no job running.
package jobs
