package catalogyaml

import (
	"context"
	"fmt"
	"os"

	"backoffice/internal/core/domain/model/catalog"
	"backoffice/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

// Repository serves the catalog loaded from a YAML file. The file is parsed
// once by NewRepository; the core treats the result as immutable for the whole
// session.
type Repository struct {
	products []catalog.Product
	byID     map[string]catalog.Product
}

// NewRepository loads and validates the catalog file at path.
// Duplicate product ids in the file are rejected: line item merge semantics
// depend on ids being unique.
func NewRepository(path string) (*Repository, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var dto CatalogDTO
	if err = yaml.Unmarshal(raw, &dto); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	products := make([]catalog.Product, 0, len(dto.Products))
	byID := make(map[string]catalog.Product, len(dto.Products))
	for i, entry := range dto.Products {
		product, convErr := toDomain(entry)
		if convErr != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, convErr)
		}

		if _, exists := byID[product.ID()]; exists {
			return nil, errs.NewValueIsInvalidErrorWithCause("catalog",
				fmt.Errorf("duplicate product id %q", product.ID()))
		}

		products = append(products, product)
		byID[product.ID()] = product
	}

	return &Repository{products: products, byID: byID}, nil
}

// All returns every product in file order.
func (r *Repository) All(_ context.Context) ([]catalog.Product, error) {
	products := make([]catalog.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

// ByID resolves a product by its catalog identifier.
func (r *Repository) ByID(_ context.Context, id string) (catalog.Product, error) {
	product, ok := r.byID[id]
	if !ok {
		return catalog.Product{}, errs.NewObjectNotFoundError("productId", id)
	}
	return product, nil
}
