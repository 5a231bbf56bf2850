package queries

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/invoice"
	"backoffice/internal/core/ports"
)

// RenderInvoiceQueryHandler loads a submitted order from history and projects
// it into an invoice document. Rendering is recomputed on demand; the document
// is never stored.
type RenderInvoiceQueryHandler struct {
	history ports.OrderHistory
	company invoice.Company
	now     func() time.Time
}

// NewRenderInvoiceQueryHandler creates a handler bound to the order history and
// the configured issuing company block.
func NewRenderInvoiceQueryHandler(history ports.OrderHistory, company invoice.Company) RenderInvoiceQueryHandler {
	return RenderInvoiceQueryHandler{
		history: history,
		company: company,
		now:     time.Now,
	}
}

// Handle renders the invoice for the requested order.
// Returns errs.ObjectNotFoundError when the order is not in history.
func (h RenderInvoiceQueryHandler) Handle(ctx context.Context, query RenderInvoiceQuery) (invoice.Document, error) {
	if err := query.Validate(); err != nil {
		return invoice.Document{}, err
	}

	submitted, err := h.history.ByID(ctx, query.OrderID())
	if err != nil {
		return invoice.Document{}, err
	}

	return invoice.Render(submitted, h.company, h.now())
}
