package commands

import (
	"errors"

	"backoffice/internal/pkg/guard"
)

var ErrAddCandidateCommandIsNotConstructed = errors.New(
	"AddCandidateCommand must be created via NewAddCandidateCommand constructor",
)

// AddCandidateCommand commits the currently staged candidate to the draft. It is
// parameterless: the candidate pair lives on the draft, where the staging
// operation put it.
type AddCandidateCommand struct {
	guard guard.ConstructorGuard
}

// NewAddCandidateCommand creates the command.
func NewAddCandidateCommand() AddCandidateCommand {
	return AddCandidateCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c AddCandidateCommand) Validate() error {
	return c.guard.Validate(ErrAddCandidateCommandIsNotConstructed)
}
