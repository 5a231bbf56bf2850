package queries

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery lists every submitted order of the session in
// submission order.
type GetOrderHistoryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates the parameterless query.
func NewGetOrderHistoryQuery() GetOrderHistoryQuery {
	return GetOrderHistoryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// GetOrderHistoryQueryResponse is one row of the history listing: the columns
// the history table shows, not the full frozen order.
type GetOrderHistoryQueryResponse struct {
	ID           kernel.OrderID
	CustomerName string
	Total        kernel.Money
	ItemCount    int
	SubmittedAt  time.Time
}
