// Package catalogyaml loads the read-only product catalog from a YAML file.
// The catalog source is external to the core: it is read once at session start
// and served from memory afterwards.
package catalogyaml

import (
	"backoffice/internal/core/domain/model/catalog"
	"backoffice/internal/core/domain/model/kernel"
)

// CatalogDTO is the top-level structure of the catalog file.
type CatalogDTO struct {
	Products []ProductDTO `yaml:"products"`
}

// ProductDTO is one catalog entry as stored in the file. Price is kept as a
// decimal string so amounts like "0.5" survive parsing exactly.
type ProductDTO struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Price    string `yaml:"price"`
	Supplier string `yaml:"supplier"`
}

// toDomain converts a file entry to a validated catalog product.
func toDomain(dto ProductDTO) (catalog.Product, error) {
	price, err := kernel.MoneyFromString(dto.Price)
	if err != nil {
		return catalog.Product{}, err
	}

	return catalog.NewProduct(dto.ID, dto.Name, price, dto.Supplier)
}
