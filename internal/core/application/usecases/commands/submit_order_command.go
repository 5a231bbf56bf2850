package commands

import (
	"errors"

	"backoffice/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand freezes the session draft into an immutable submitted
// order. It is parameterless: everything to submit lives on the draft.
type SubmitOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates the command.
func NewSubmitOrderCommand() SubmitOrderCommand {
	return SubmitOrderCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}
