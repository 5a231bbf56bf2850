package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"backoffice/internal/core/domain/model/printing"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	printTimeoutJob *PrintTimeoutJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	printCoordinator *printing.Coordinator,
	printPendingTimeout time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		printTimeoutJob: NewPrintTimeoutJob(printCoordinator, printPendingTimeout, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.printTimeoutJob.Start(); err != nil {
		return fmt.Errorf("failed to start print timeout job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.printTimeoutJob.Stop()
}
