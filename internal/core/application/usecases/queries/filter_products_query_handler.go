package queries

import (
	"context"

	"backoffice/internal/core/domain/model/catalog"
	"backoffice/internal/core/ports"
)

// FilterProductsQueryHandler executes the catalog search against the read-only
// catalog source.
type FilterProductsQueryHandler struct {
	catalog ports.CatalogReader
}

// NewFilterProductsQueryHandler creates a handler bound to the catalog source.
func NewFilterProductsQueryHandler(catalog ports.CatalogReader) FilterProductsQueryHandler {
	return FilterProductsQueryHandler{catalog: catalog}
}

// Handle returns the products matching the query in catalog order. A blank
// query returns the full catalog.
func (h FilterProductsQueryHandler) Handle(ctx context.Context, query FilterProductsQuery) ([]catalog.Product, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products, err := h.catalog.All(ctx)
	if err != nil {
		return nil, err
	}

	return catalog.Filter(products, query.Criteria()), nil
}
