package commands

import (
	"errors"

	"backoffice/internal/pkg/guard"
)

var ErrStageCandidateCommandIsNotConstructed = errors.New(
	"StageCandidateCommand must be created via NewStageCandidateCommand constructor",
)

// StageCandidateCommand stages a product-quantity pair on the draft without
// committing it. The pair is accepted as entered; it is validated only when the
// add-to-order operation runs.
type StageCandidateCommand struct {
	productID string
	quantity  int

	guard guard.ConstructorGuard
}

// NewStageCandidateCommand creates the command. Values are taken as entered,
// including a blank product id or a non-positive quantity.
func NewStageCandidateCommand(productID string, quantity int) StageCandidateCommand {
	return StageCandidateCommand{
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c StageCandidateCommand) Validate() error {
	return c.guard.Validate(ErrStageCandidateCommandIsNotConstructed)
}

// ProductID returns the staged product identifier.
func (c StageCandidateCommand) ProductID() string {
	return c.productID
}

// Quantity returns the staged quantity.
func (c StageCandidateCommand) Quantity() int {
	return c.quantity
}
