package commands

import (
	"context"
	"log/slog"
	"time"

	"backoffice/internal/core/domain/model/invoice"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/ports"
)

// SubmitOrderCommandHandler is the order submission pipeline. It validates and
// freezes the draft, assigns identity, appends the result to the order history,
// resets the draft for the next composition, and hands the rendered invoice to
// the print coordinator.
//
// Printing is downstream of submission, never a precondition: once the order is
// in history the submission has succeeded, and a print notification failure is
// logged instead of propagated.
//
// Example:
//
//	handler := NewSubmitOrderCommandHandler(drafts, history, ids, company, notifier, logger)
//	submitted, err := handler.Handle(ctx, NewSubmitOrderCommand())
//	if err != nil {
//	    // a validation error naming the first failed precondition;
//	    // the draft and the history are unchanged
//	}
type SubmitOrderCommandHandler struct {
	drafts   ports.DraftStore
	history  ports.OrderHistory
	ids      *kernel.OrderIDGenerator
	company  invoice.Company
	notifier PrintNotifier
	logger   *slog.Logger
	now      func() time.Time
}

// NewSubmitOrderCommandHandler creates the submission pipeline handler.
func NewSubmitOrderCommandHandler(
	drafts ports.DraftStore,
	history ports.OrderHistory,
	ids *kernel.OrderIDGenerator,
	company invoice.Company,
	notifier PrintNotifier,
	logger *slog.Logger,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		drafts:   drafts,
		history:  history,
		ids:      ids,
		company:  company,
		notifier: notifier,
		logger:   logger.With("component", "submit_order"),
		now:      time.Now,
	}
}

// Handle runs the submission pipeline and returns the frozen order.
//
// On any validation failure the draft is untouched and nothing is appended to
// history. On success the draft is reset to an empty draft — resetting is this
// caller's responsibility, the freeze itself never mutates the draft.
func (h SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (*order.Submitted, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	draft := h.drafts.Draft()
	submittedAt := h.now()

	submitted, err := order.NewSubmitted(h.ids.Next(), draft, submittedAt)
	if err != nil {
		return nil, err
	}

	if err = h.history.Append(ctx, submitted); err != nil {
		return nil, err
	}

	draft.Reset()

	h.logger.InfoContext(ctx, "order submitted",
		"order_id", submitted.ID().String(),
		"total", submitted.Total().String(),
		"items", len(submitted.Items()))

	doc, err := invoice.Render(submitted, h.company, submittedAt)
	if err != nil {
		// the order is safely in history; a broken projection must not undo that
		h.logger.ErrorContext(ctx, "invoice render failed after submission",
			"order_id", submitted.ID().String(), "error", err)
		return submitted, nil
	}

	if err = h.notifier.OrderSubmitted(doc); err != nil {
		h.logger.WarnContext(ctx, "print coordinator rejected submitted order",
			"order_id", submitted.ID().String(), "error", err)
	}

	return submitted, nil
}
