package commands

import (
	"errors"

	"backoffice/internal/pkg/guard"
)

var ErrSetCustomerInfoCommandIsNotConstructed = errors.New(
	"SetCustomerInfoCommand must be created via NewSetCustomerInfoCommand constructor",
)

// SetCustomerInfoCommand overwrites the draft's customer block. Blank values are
// accepted here by design: validation of the customer fields is deferred to the
// submission pipeline, matching how the entry form behaves.
type SetCustomerInfoCommand struct {
	name    string
	contact string

	guard guard.ConstructorGuard
}

// NewSetCustomerInfoCommand creates the command. Values are taken as entered.
func NewSetCustomerInfoCommand(name, contact string) SetCustomerInfoCommand {
	return SetCustomerInfoCommand{
		name:    name,
		contact: contact,
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c SetCustomerInfoCommand) Validate() error {
	return c.guard.Validate(ErrSetCustomerInfoCommandIsNotConstructed)
}

// Name returns the customer name as entered.
func (c SetCustomerInfoCommand) Name() string {
	return c.name
}

// Contact returns the customer contact as entered.
func (c SetCustomerInfoCommand) Contact() string {
	return c.contact
}
