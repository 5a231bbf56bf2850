package commands

import (
	"context"

	"backoffice/internal/core/ports"
)

// SetCustomerInfoCommandHandler applies customer info changes to the session
// draft.
type SetCustomerInfoCommandHandler struct {
	drafts ports.DraftStore
}

// NewSetCustomerInfoCommandHandler creates a handler bound to the draft store.
func NewSetCustomerInfoCommandHandler(drafts ports.DraftStore) SetCustomerInfoCommandHandler {
	return SetCustomerInfoCommandHandler{drafts: drafts}
}

// Handle overwrites the draft's customer block with the command values.
func (h SetCustomerInfoCommandHandler) Handle(_ context.Context, cmd SetCustomerInfoCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.drafts.Draft().SetCustomerInfo(cmd.Name(), cmd.Contact())
	return nil
}
