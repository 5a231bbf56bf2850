package order

import (
	"fmt"
	"strings"

	"backoffice/internal/pkg/errs"
)

// ErrNoProductSelected indicates the staged candidate has no product selected.
var ErrNoProductSelected = errs.NewValueIsRequiredError("product selection")

// Candidate is the staged product-quantity pair that has not been committed to
// the draft yet. Values are accepted as entered; validation happens only when the
// candidate is added to the order, so a form can hold a partially filled pair.
//
// The empty candidate is {productID: "", quantity: 1}, matching the state the
// staging form returns to after every successful add.
type Candidate struct {
	productID string
	quantity  int
}

// NewCandidate stages a product-quantity pair without validating it.
func NewCandidate(productID string, quantity int) Candidate {
	return Candidate{productID: productID, quantity: quantity}
}

// EmptyCandidate returns the reset candidate state {"", 1}.
func EmptyCandidate() Candidate {
	return Candidate{productID: "", quantity: 1}
}

// ProductID returns the staged product identifier.
func (c Candidate) ProductID() string {
	return c.productID
}

// Quantity returns the staged quantity.
func (c Candidate) Quantity() int {
	return c.quantity
}

// Validate checks the candidate is addable: a product must be selected and the
// quantity must be positive. The selection check runs first so the caller does
// not attempt a catalog lookup with a blank identifier.
func (c Candidate) Validate() error {
	if strings.TrimSpace(c.productID) == "" {
		return ErrNoProductSelected
	}

	if c.quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", c.quantity))
	}

	return nil
}
