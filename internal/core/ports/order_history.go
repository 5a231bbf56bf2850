package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

// OrderHistory is the append-only sequence of submitted orders for the current
// session. No update or delete is defined; readers see orders in submission
// order.
type OrderHistory interface {
	// Append adds a submitted order to the end of the history.
	Append(ctx context.Context, submitted *order.Submitted) error

	// All returns every submitted order in submission order.
	All(ctx context.Context) ([]*order.Submitted, error)

	// ByID resolves a submitted order by its identity.
	// Returns errs.ObjectNotFoundError when the id is unknown.
	ByID(ctx context.Context, id kernel.OrderID) (*order.Submitted, error)
}
