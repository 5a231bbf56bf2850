package queries

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/guard"
)

var ErrGetDraftQueryIsNotConstructed = errors.New(
	"GetDraftQuery must be created via NewGetDraftQuery constructor",
)

// GetDraftQuery retrieves the current session draft for display: customer
// block, line items, staged candidate, and the recomputed total.
type GetDraftQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDraftQuery creates the parameterless query.
func NewGetDraftQuery() GetDraftQuery {
	return GetDraftQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDraftQuery) Validate() error {
	return q.guard.Validate(ErrGetDraftQueryIsNotConstructed)
}

// GetDraftQueryResponse is the display view of the in-progress draft.
// Total is recomputed at query time, never cached.
type GetDraftQueryResponse struct {
	CustomerName    string
	CustomerContact string
	Items           []order.LineItem
	Candidate       order.Candidate
	Total           kernel.Money
}
