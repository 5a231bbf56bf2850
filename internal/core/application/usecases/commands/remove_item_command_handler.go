package commands

import (
	"context"

	"backoffice/internal/core/ports"
)

// RemoveItemCommandHandler removes a line item from the session draft.
type RemoveItemCommandHandler struct {
	drafts ports.DraftStore
}

// NewRemoveItemCommandHandler creates a handler bound to the draft store.
func NewRemoveItemCommandHandler(drafts ports.DraftStore) RemoveItemCommandHandler {
	return RemoveItemCommandHandler{drafts: drafts}
}

// Handle removes the matching line item; absent products are a silent no-op.
func (h RemoveItemCommandHandler) Handle(_ context.Context, cmd RemoveItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.drafts.Draft().RemoveItem(cmd.ProductID())
	return nil
}
