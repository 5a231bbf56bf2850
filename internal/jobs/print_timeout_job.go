package jobs

import (
	"context"
	"log/slog"
	"time"

	"backoffice/internal/core/domain/model/printing"

	"github.com/robfig/cron/v3"
)

// PrintTimeoutJob sweeps the print coordinator for stale requests.
// Runs every second so a wedged print engine cannot keep the coordinator
// in the requested state past the configured pending timeout.
type PrintTimeoutJob struct {
	coordinator *printing.Coordinator
	maxPending  time.Duration
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewPrintTimeoutJob creates a new sweep job over the print coordinator.
func NewPrintTimeoutJob(coordinator *printing.Coordinator, maxPending time.Duration, logger *slog.Logger) *PrintTimeoutJob {
	return &PrintTimeoutJob{
		coordinator: coordinator,
		maxPending:  maxPending,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "print_timeout_job"),
	}
}

// Start begins the sweep job to run every second.
func (j *PrintTimeoutJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.coordinator.ExpireStale(j.maxPending)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Print timeout job started (running every second)",
		"maxPending", j.maxPending)
	return nil
}

// Stop stops the sweep job.
func (j *PrintTimeoutJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Print timeout job stopped")
}
