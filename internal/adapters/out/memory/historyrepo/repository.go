// Package historyrepo implements the append-only order history in memory.
// History is session-scoped by design: orders do not survive a process restart.
package historyrepo

import (
	"context"
	"sync"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"
)

// Repository is the in-memory append-only sequence of submitted orders.
// Appends and reads may come from different goroutines (the HTTP adapter and
// the print path), so access is mutex-guarded.
type Repository struct {
	mu     sync.RWMutex
	orders []*order.Submitted
}

// NewRepository creates an empty history.
func NewRepository() *Repository {
	return &Repository{orders: make([]*order.Submitted, 0)}
}

// Append adds a submitted order to the end of the history.
// Only properly constructed orders are accepted.
func (r *Repository) Append(_ context.Context, submitted *order.Submitted) error {
	if err := submitted.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, submitted)
	return nil
}

// All returns every submitted order in submission order.
func (r *Repository) All(_ context.Context) ([]*order.Submitted, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*order.Submitted, len(r.orders))
	copy(orders, r.orders)
	return orders, nil
}

// ByID resolves a submitted order by identity.
func (r *Repository) ByID(_ context.Context, id kernel.OrderID) (*order.Submitted, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, submitted := range r.orders {
		if submitted.ID().IsEqual(id) {
			return submitted, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("orderId", id.String())
}
