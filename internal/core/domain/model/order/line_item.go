package order

import (
	"errors"
	"fmt"

	"backoffice/internal/core/domain/model/catalog"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed indicates that a LineItem was not created through
// the NewLineItem constructor.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one product-quantity entry within an order. Name, price, and
// supplier are denormalized snapshots taken from the catalog product at add-time:
// catalog changes after the item was added never retroactively affect it. This is
// deliberate — invoices must reflect what the customer agreed to.
//
// LineItem is an immutable value object; quantity changes produce a new value via
// withQuantity.
type LineItem struct {
	productID string
	name      string
	price     kernel.Money
	supplier  string
	quantity  int

	guard guard.ConstructorGuard
}

// NewLineItem creates a LineItem by snapshotting the product's current name,
// price, and supplier. Quantity must be positive.
func NewLineItem(product catalog.Product, quantity int) (LineItem, error) {
	if err := product.Validate(); err != nil {
		return LineItem{}, err
	}

	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return LineItem{
		productID: product.ID(),
		name:      product.Name(),
		price:     product.Price(),
		supplier:  product.Supplier(),
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the LineItem was created through NewLineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the catalog identifier the item was created from.
func (li LineItem) ProductID() string {
	return li.productID
}

// Name returns the product name frozen at add-time.
func (li LineItem) Name() string {
	return li.name
}

// Price returns the unit price frozen at add-time.
func (li LineItem) Price() kernel.Money {
	return li.price
}

// Supplier returns the supplier name frozen at add-time.
func (li LineItem) Supplier() string {
	return li.supplier
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// Subtotal returns price multiplied by quantity.
func (li LineItem) Subtotal() kernel.Money {
	return li.price.Mul(li.quantity)
}

// withQuantity returns a copy of the item carrying the given quantity while
// keeping the frozen snapshot fields. Used for merge-on-add.
func (li LineItem) withQuantity(quantity int) LineItem {
	li.quantity = quantity
	return li
}
