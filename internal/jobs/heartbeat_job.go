package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// DefaultHeartbeatSchedule fires every 15 seconds.
const DefaultHeartbeatSchedule = "*/15 * * * * *"

// Heartbeater sends a keep-alive frame to every live stream and reports how
// many subscribers accepted it.
type Heartbeater interface {
	Heartbeat() int
}

// HeartbeatJob pings every event stream on a schedule. Proxies keep idle
// connections open, and a client that vanished without closing its socket is
// detected by the failed write and unregistered.
type HeartbeatJob struct {
	heartbeater Heartbeater
	schedule    string
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewHeartbeatJob creates a heartbeat job running on a cron schedule with seconds.
// An empty schedule means DefaultHeartbeatSchedule.
func NewHeartbeatJob(heartbeater Heartbeater, schedule string, logger *slog.Logger) *HeartbeatJob {
	if schedule == "" {
		schedule = DefaultHeartbeatSchedule
	}
	return &HeartbeatJob{
		heartbeater: heartbeater,
		schedule:    schedule,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "heartbeat_job"),
	}
}

// Start schedules the job. An invalid schedule is returned as an error.
func (j *HeartbeatJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.Run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Heartbeat job started", "schedule", j.schedule)
	return nil
}

// Run sends one heartbeat.
func (j *HeartbeatJob) Run() {
	delivered := j.heartbeater.Heartbeat()
	j.logger.DebugContext(context.Background(), "Heartbeat sent", "subscribers", delivered)
}

// Stop waits for a running heartbeat to finish.
func (j *HeartbeatJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Heartbeat job stopped")
}
