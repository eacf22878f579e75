package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/kenmoh/servipal-backend/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleAssignmentReleaseJob *StaleAssignmentReleaseJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	releaseHandler commands.ReleaseStaleAssignmentsCommandHandler,
	assignmentTimeout time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleAssignmentReleaseJob: NewStaleAssignmentReleaseJob(releaseHandler, assignmentTimeout, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleAssignmentReleaseJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale assignment release job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleAssignmentReleaseJob.Stop()
}
