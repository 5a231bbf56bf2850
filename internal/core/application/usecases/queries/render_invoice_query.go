package queries

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrRenderInvoiceQueryIsNotConstructed = errors.New(
	"RenderInvoiceQuery must be created via NewRenderInvoiceQuery constructor",
)

// RenderInvoiceQuery projects one submitted order from history into its
// printable invoice document.
type RenderInvoiceQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewRenderInvoiceQuery creates the query for the given order identity.
func NewRenderInvoiceQuery(orderID kernel.OrderID) (RenderInvoiceQuery, error) {
	if err := orderID.Validate(); err != nil {
		return RenderInvoiceQuery{}, err
	}

	return RenderInvoiceQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q RenderInvoiceQuery) Validate() error {
	return q.guard.Validate(ErrRenderInvoiceQueryIsNotConstructed)
}

// OrderID returns the identity of the order to render.
func (q RenderInvoiceQuery) OrderID() kernel.OrderID {
	return q.orderID
}
