package order

import (
	"errors"
	"strings"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

var (
	// ErrSubmittedIsNotConstructed indicates that a Submitted order was not created
	// through the NewSubmitted constructor.
	ErrSubmittedIsNotConstructed = errors.New("Submitted must be created via NewSubmitted constructor")

	// ErrCustomerNameIsRequired indicates the draft had a blank customer name.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customerName")

	// ErrCustomerContactIsRequired indicates the draft had a blank customer contact.
	ErrCustomerContactIsRequired = errs.NewValueIsRequiredError("customerContact")

	// ErrOrderHasNoItems indicates the draft had no line items.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("order items")
)

// Submitted is the immutable historical record a draft freezes into on successful
// submission. It carries the assigned identity, the frozen line items, the total
// computed at submission time, and the submission timestamp. Once created it is
// never mutated; the order history appends it and readers project from it.
type Submitted struct {
	id              kernel.OrderID
	customerName    string
	customerContact string
	items           []LineItem
	total           kernel.Money
	submittedAt     time.Time

	isConstructed bool
}

// NewSubmitted validates and freezes a draft into a Submitted order.
//
// Validation runs in order and short-circuits on the first failure, so the caller
// always learns the first precondition the user has to correct:
//  1. customer name non-blank after trimming
//  2. customer contact non-blank after trimming
//  3. at least one line item
//
// On success the customer fields are stored trimmed, the items are copied, and
// the total is computed and frozen. The draft itself is never modified.
func NewSubmitted(id kernel.OrderID, draft *Draft, submittedAt time.Time) (*Submitted, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(draft.CustomerName())
	if name == "" {
		return nil, ErrCustomerNameIsRequired
	}

	contact := strings.TrimSpace(draft.CustomerContact())
	if contact == "" {
		return nil, ErrCustomerContactIsRequired
	}

	items := draft.Items()
	if len(items) == 0 {
		return nil, ErrOrderHasNoItems
	}

	return &Submitted{
		id:              id,
		customerName:    name,
		customerContact: contact,
		items:           items,
		total:           draft.Total(),
		submittedAt:     submittedAt,
		isConstructed:   true,
	}, nil
}

// Validate ensures the order was created through NewSubmitted.
func (s *Submitted) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSubmittedIsNotConstructed
	}
	return nil
}

// ID returns the assigned order identity.
func (s *Submitted) ID() kernel.OrderID {
	return s.id
}

// CustomerName returns the trimmed customer name.
func (s *Submitted) CustomerName() string {
	return s.customerName
}

// CustomerContact returns the trimmed customer contact.
func (s *Submitted) CustomerContact() string {
	return s.customerContact
}

// Items returns a copy of the frozen line items in submission order.
func (s *Submitted) Items() []LineItem {
	items := make([]LineItem, len(s.items))
	copy(items, s.items)
	return items
}

// Total returns the total frozen at submission time.
func (s *Submitted) Total() kernel.Money {
	return s.total
}

// SubmittedAt returns the submission timestamp.
func (s *Submitted) SubmittedAt() time.Time {
	return s.submittedAt
}

// IsEqual compares two submitted orders by identity.
func (s *Submitted) IsEqual(other *Submitted) bool {
	return other != nil && s.id.IsEqual(other.id)
}
