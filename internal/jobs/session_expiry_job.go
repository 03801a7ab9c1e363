package jobs

import (
	"context"
	"log/slog"
	"time"

	"checkout/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SessionExpiryJob discards checkout sessions left idle for longer than ttl.
type SessionExpiryJob struct {
	handler  commands.ExpireIdleSessionsCommandHandler
	schedule string
	ttl      time.Duration
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionExpiryJob creates the job. schedule is a cron spec with a
// seconds field, e.g. "0 * * * * *" for once a minute.
func NewSessionExpiryJob(
	handler commands.ExpireIdleSessionsCommandHandler,
	schedule string,
	ttl time.Duration,
	logger *slog.Logger,
) *SessionExpiryJob {
	return NewSessionExpiryJobWithClock(handler, schedule, ttl, logger, time.Now)
}

// NewSessionExpiryJobWithClock is NewSessionExpiryJob with a custom clock.
func NewSessionExpiryJobWithClock(
	handler commands.ExpireIdleSessionsCommandHandler,
	schedule string,
	ttl time.Duration,
	logger *slog.Logger,
	now func() time.Time,
) *SessionExpiryJob {
	return &SessionExpiryJob{
		handler:  handler,
		schedule: schedule,
		ttl:      ttl,
		now:      now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_expiry_job"),
	}
}

// Start schedules the sweep. It fails on an invalid schedule.
func (j *SessionExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session expiry job started",
		"schedule", j.schedule, "ttl", j.ttl.String())
	return nil
}

// Run performs one sweep.
func (j *SessionExpiryJob) Run(ctx context.Context) {
	cmd, err := commands.NewExpireIdleSessionsCommand(j.now().Add(-j.ttl))
	if err != nil {
		j.logger.ErrorContext(ctx, "Session expiry job failed", "error", err)
		return
	}

	removed, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Session expiry job failed", "error", err)
		return
	}
	if removed > 0 {
		j.logger.InfoContext(ctx, "Expired idle sessions", "count", removed)
	}
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *SessionExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session expiry job stopped")
}
