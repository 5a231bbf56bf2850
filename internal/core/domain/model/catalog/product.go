package catalog

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

// ErrProductIsNotConstructed indicates that a Product was not created through the
// NewProduct constructor.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is an immutable catalog entry supplied by the external catalog source.
// The core never mutates products; order line items copy a snapshot of the fields
// they need at add-time, so later catalog changes do not leak into existing orders.
//
// Invariants:
//   - id, name, and supplier are non-blank
//   - price is a valid non-negative Money value
//   - instances are created only through NewProduct
type Product struct {
	id       string
	name     string
	price    kernel.Money
	supplier string

	guard guard.ConstructorGuard
}

// NewProduct creates a Product with validation. All fields are required and the
// price must be a constructed Money value.
func NewProduct(id, name string, price kernel.Money, supplier string) (Product, error) {
	product := Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setPrice(price),
		product.setSupplier(supplier),
	); err != nil {
		return Product{}, err
	}

	return product, nil
}

// Validate ensures the Product was created through NewProduct.
func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the catalog identifier of the product.
func (p Product) ID() string {
	return p.id
}

// Name returns the display name of the product.
func (p Product) Name() string {
	return p.name
}

// Price returns the current unit price of the product.
func (p Product) Price() kernel.Money {
	return p.price
}

// Supplier returns the supplier name of the product.
func (p Product) Supplier() string {
	return p.supplier
}

func (p *Product) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("product id")
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setSupplier(supplier string) error {
	if supplier == "" {
		return errs.NewValueIsRequiredError("product supplier")
	}
	p.supplier = supplier
	return nil
}
