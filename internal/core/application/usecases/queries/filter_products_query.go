// Package queries contains the read operations of the workflow: product search,
// the draft view with its recomputed total, the order history listing, and
// invoice rendering. Queries never modify state.
package queries

import (
	"errors"

	"backoffice/internal/core/domain/model/catalog"
	"backoffice/internal/pkg/guard"
)

var ErrFilterProductsQueryIsNotConstructed = errors.New(
	"FilterProductsQuery must be created via NewFilterProductsQuery constructor",
)

// FilterProductsQuery searches the catalog by name and supplier. Blank fields
// are ignored; non-blank fields all have to match. The presentation layer runs
// this on every keystroke, so the query deliberately accepts anything.
type FilterProductsQuery struct {
	name     string
	supplier string

	guard guard.ConstructorGuard
}

// NewFilterProductsQuery creates the query; both fields may be blank.
func NewFilterProductsQuery(name, supplier string) FilterProductsQuery {
	return FilterProductsQuery{
		name:     name,
		supplier: supplier,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q FilterProductsQuery) Validate() error {
	return q.guard.Validate(ErrFilterProductsQueryIsNotConstructed)
}

// Criteria returns the query as a domain catalog query.
func (q FilterProductsQuery) Criteria() catalog.Query {
	return catalog.Query{Name: q.name, Supplier: q.supplier}
}
