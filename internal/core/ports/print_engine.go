package ports

import (
	"context"

	"backoffice/internal/core/domain/model/invoice"
)

// PrintConfig is the configuration handed to the print engine with every job.
type PrintConfig struct {
	DocumentTitle string
	PageSize      string
	Margins       string
}

// PrintEngine is the external printing facility. Print blocks until the job
// completes or fails; the coordinator invokes it off its event path and feeds
// the outcome back as a completion or failure event. Failures are surfaced to
// the user, never retried automatically.
type PrintEngine interface {
	Print(ctx context.Context, doc invoice.Document, cfg PrintConfig) error
}
