// Package jobs provides scheduled background tasks for the back office.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic maintenance the service needs.
//
// # Available Jobs
//
// 1. PrintTimeoutJob - Runs every second to fail print requests that have been
// pending longer than the configured timeout, so the coordinator always returns
// to an idle, retryable state.
//
// Jobs use structured logging via log/slog and are coordinated through the
// JobManager, which is started and stopped by the composition root.
package jobs
