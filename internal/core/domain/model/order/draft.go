package order

import (
	"fmt"

	"backoffice/internal/core/domain/model/catalog"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

// Draft is the mutable in-progress order being composed. It is the aggregate root
// of the order builder: customer info, the ordered line item sequence, and the
// staged candidate all live here, and every mutation goes through a method that
// keeps the invariants.
//
// Invariants:
//   - productID values are unique within items; adding an existing product merges
//     quantities instead of appending a duplicate entry
//   - line items carry frozen snapshots of product name/price/supplier
//   - the draft is unchanged whenever an operation fails
//   - the total is recomputed on every read, never cached
//
// Draft is not safe for concurrent use; the workflow owns a single draft per
// session and mutates it from one logical thread.
type Draft struct {
	customerName    string
	customerContact string
	items           []LineItem
	candidate       Candidate
}

// NewDraft creates an empty draft with a reset candidate.
func NewDraft() *Draft {
	return &Draft{
		items:     make([]LineItem, 0),
		candidate: EmptyCandidate(),
	}
}

// SetCustomerInfo overwrites the customer block. No validation happens at this
// stage; blank fields are rejected later by the submission pipeline.
func (d *Draft) SetCustomerInfo(name, contact string) {
	d.customerName = name
	d.customerContact = contact
}

// CustomerName returns the customer name as entered.
func (d *Draft) CustomerName() string {
	return d.customerName
}

// CustomerContact returns the customer contact as entered.
func (d *Draft) CustomerContact() string {
	return d.customerContact
}

// StageCandidate stages a product-quantity pair for the next add. The values are
// accepted as entered and validated only by AddCandidate.
func (d *Draft) StageCandidate(productID string, quantity int) {
	d.candidate = NewCandidate(productID, quantity)
}

// Candidate returns the currently staged pair.
func (d *Draft) Candidate() Candidate {
	return d.candidate
}

// AddCandidate commits the staged candidate to the order using the resolved
// catalog product. If a line item with the same productID already exists its
// quantity is incremented by the candidate quantity; otherwise a new item is
// appended with a frozen snapshot of the product. On success the candidate is
// reset to the empty state.
//
// Fails without modifying the draft when the candidate is invalid or the product
// does not match the staged selection.
func (d *Draft) AddCandidate(product catalog.Product) error {
	if err := d.candidate.Validate(); err != nil {
		return err
	}

	if err := product.Validate(); err != nil {
		return err
	}

	if product.ID() != d.candidate.ProductID() {
		return errs.NewValueIsInvalidErrorWithCause("product selection",
			fmt.Errorf("resolved product %q does not match staged selection %q",
				product.ID(), d.candidate.ProductID()))
	}

	for i, item := range d.items {
		if item.ProductID() == product.ID() {
			d.items[i] = item.withQuantity(item.Quantity() + d.candidate.Quantity())
			d.candidate = EmptyCandidate()
			return nil
		}
	}

	item, err := NewLineItem(product, d.candidate.Quantity())
	if err != nil {
		return err
	}

	d.items = append(d.items, item)
	d.candidate = EmptyCandidate()
	return nil
}

// RemoveItem removes the line item with the given productID. Removing an absent
// product is a no-op, not an error.
func (d *Draft) RemoveItem(productID string) {
	for i, item := range d.items {
		if item.ProductID() == productID {
			d.items = append(d.items[:i], d.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the line item sequence in insertion order.
func (d *Draft) Items() []LineItem {
	items := make([]LineItem, len(d.items))
	copy(items, d.items)
	return items
}

// Total recomputes the draft total as the sum of price times quantity over all
// line items.
func (d *Draft) Total() kernel.Money {
	total := kernel.Zero()
	for _, item := range d.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Reset clears the draft back to its initial empty state. Submission and reset
// are separate responsibilities: the submission pipeline never resets the draft
// itself, the owning workflow does after a successful submit.
func (d *Draft) Reset() {
	d.customerName = ""
	d.customerContact = ""
	d.items = d.items[:0]
	d.candidate = EmptyCandidate()
}
