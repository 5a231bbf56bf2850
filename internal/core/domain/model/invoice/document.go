package invoice

import (
	"fmt"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"
)

// NotRenderableNote is the placeholder text carried by a Document produced from
// an absent or incomplete order. The presentation layer shows it instead of an
// invoice so the soft failure stays user-friendly.
const NotRenderableNote = "select a valid order to preview its invoice"

// footerNote closes every rendered invoice.
const footerNote = "Thank you for your order!"

// Company is the issuing company block printed at the top of every invoice.
// It comes from configuration, not from order data.
type Company struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// Line is one itemized row of the invoice table.
type Line struct {
	Name      string
	Supplier  string
	UnitPrice kernel.Money
	Quantity  int
	Subtotal  kernel.Money
}

// Document is the printable projection of one submitted order. It has no
// identity and no storage of its own; it is recomputed on demand from the frozen
// order and discarded after use.
//
// A Document with Renderable == false is the deliberate placeholder state: only
// Note is meaningful and the print coordinator must never hand it to the engine.
type Document struct {
	Renderable bool
	Note       string

	Company         Company
	OrderID         kernel.OrderID
	CustomerName    string
	CustomerContact string
	Lines           []Line
	GrandTotal      kernel.Money
	GeneratedAt     time.Time
	Footer          string
}

// Render projects a submitted order into an invoice document.
//
// Guard clause: a nil order or one without a customer name produces the
// not-renderable placeholder, not an error — the caller decides how to present
// it. A grand total recomputed from the lines that disagrees with the frozen
// order total is a data-integrity bug and is returned as an error instead of
// being silently trusted.
func Render(submitted *order.Submitted, company Company, generatedAt time.Time) (Document, error) {
	if submitted.Validate() != nil || submitted.CustomerName() == "" {
		return Document{Renderable: false, Note: NotRenderableNote}, nil
	}

	items := submitted.Items()
	lines := make([]Line, len(items))
	grandTotal := kernel.Zero()
	for i, item := range items {
		subtotal := item.Subtotal()
		lines[i] = Line{
			Name:      item.Name(),
			Supplier:  item.Supplier(),
			UnitPrice: item.Price(),
			Quantity:  item.Quantity(),
			Subtotal:  subtotal,
		}
		grandTotal = grandTotal.Add(subtotal)
	}

	if !grandTotal.IsEqual(submitted.Total()) {
		return Document{}, errs.NewValueIsInvalidErrorWithCause("order total",
			fmt.Errorf("recomputed total %s does not match frozen total %s for order %s",
				grandTotal, submitted.Total(), submitted.ID()))
	}

	return Document{
		Renderable:      true,
		Company:         company,
		OrderID:         submitted.ID(),
		CustomerName:    submitted.CustomerName(),
		CustomerContact: submitted.CustomerContact(),
		Lines:           lines,
		GrandTotal:      grandTotal,
		GeneratedAt:     generatedAt,
		Footer:          footerNote,
	}, nil
}
