package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/kenmoh/servipal-backend/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleAssignmentReleaseJob returns orders stuck in Assigned past the
// configured timeout to the unassigned pool. Runs every minute; each run
// processes all stale assignments in one transaction.
type StaleAssignmentReleaseJob struct {
	handler    commands.ReleaseStaleAssignmentsCommandHandler
	staleAfter time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewStaleAssignmentReleaseJob creates the release job. staleAfter is how
// long an assignment may sit unaccepted before it is released.
func NewStaleAssignmentReleaseJob(
	handler commands.ReleaseStaleAssignmentsCommandHandler,
	staleAfter time.Duration,
	logger *slog.Logger,
) *StaleAssignmentReleaseJob {
	return &StaleAssignmentReleaseJob{
		handler:    handler,
		staleAfter: staleAfter,
		cron:       cron.New(),
		logger:     logger.With("component", "stale_assignment_release_job"),
	}
}

// Start begins the release job to run every minute.
func (j *StaleAssignmentReleaseJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewReleaseStaleAssignmentsCommand(j.staleAfter)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Stale assignment release job misconfigured", "error", cmdErr)
			return
		}

		released, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale assignment release job failed", "error", handleErr)
			return
		}

		if released > 0 {
			j.logger.InfoContext(ctx, "Released stale assignments", "count", released)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale assignment release job started (running every minute)",
		"stale_after", j.staleAfter)
	return nil
}

// Stop stops the release job.
func (j *StaleAssignmentReleaseJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale assignment release job stopped")
}
