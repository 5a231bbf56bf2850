package commands

import (
	"context"

	"backoffice/internal/core/ports"
)

// StageCandidateCommandHandler stages the candidate pair on the session draft.
type StageCandidateCommandHandler struct {
	drafts ports.DraftStore
}

// NewStageCandidateCommandHandler creates a handler bound to the draft store.
func NewStageCandidateCommandHandler(drafts ports.DraftStore) StageCandidateCommandHandler {
	return StageCandidateCommandHandler{drafts: drafts}
}

// Handle stages the pair; nothing is validated until the add operation.
func (h StageCandidateCommandHandler) Handle(_ context.Context, cmd StageCandidateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.drafts.Draft().StageCandidate(cmd.ProductID(), cmd.Quantity())
	return nil
}
