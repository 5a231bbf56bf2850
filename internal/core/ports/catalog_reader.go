// Package ports defines the boundary interfaces between the core and its
// adapters: the read-only catalog source, the session draft store, the
// append-only order history, and the external print engine.
package ports

import (
	"context"

	"backoffice/internal/core/domain/model/catalog"
)

// CatalogReader supplies the immutable product catalog. The catalog is loaded by
// an external source at session start and is read-only to the core.
type CatalogReader interface {
	// All returns every product in catalog order.
	All(ctx context.Context) ([]catalog.Product, error)

	// ByID resolves a product by its catalog identifier.
	// Returns errs.ObjectNotFoundError when the id is unknown.
	ByID(ctx context.Context, id string) (catalog.Product, error)
}
