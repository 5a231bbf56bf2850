package commands

import (
	"errors"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrRemoveItemCommandIsNotConstructed = errors.New(
	"RemoveItemCommand must be created via NewRemoveItemCommand constructor",
)

// RemoveItemCommand removes one line item from the draft by product id.
// Removing a product that is not in the draft is a no-op, not an error; only a
// blank product id is rejected, because it can never address an item.
type RemoveItemCommand struct {
	productID string

	guard guard.ConstructorGuard
}

// NewRemoveItemCommand creates the command. The product id must be non-blank.
func NewRemoveItemCommand(productID string) (RemoveItemCommand, error) {
	if productID == "" {
		return RemoveItemCommand{}, errs.NewValueIsRequiredError("productId")
	}

	return RemoveItemCommand{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemCommandIsNotConstructed)
}

// ProductID returns the product id to remove.
func (c RemoveItemCommand) ProductID() string {
	return c.productID
}
