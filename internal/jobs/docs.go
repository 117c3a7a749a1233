// Package jobs provides scheduled background tasks for the order service.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// 1. HeartbeatJob - sends an SSE comment frame to every connected dashboard
//
// # Usage
//
//	jobManager := jobs.NewJobManager(broadcaster, cfg.HeartbeatSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The heartbeat defaults to "*/15 * * * * *" and is configured with HEARTBEAT_SCHEDULE.
// A heartbeat that cannot be queued for a subscriber disconnects it, the same as any event.
package jobs
