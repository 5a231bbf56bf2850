package commands

import (
	"context"

	"backoffice/internal/core/ports"
)

// AddCandidateCommandHandler resolves the staged candidate against the catalog
// and commits it to the draft.
//
// Example:
//
//	handler := NewAddCandidateCommandHandler(drafts, catalogReader)
//	if err := handler.Handle(ctx, NewAddCandidateCommand()); err != nil {
//	    // invalid selection, non-positive quantity, or unknown product;
//	    // the draft is unchanged and the user can correct the input
//	}
type AddCandidateCommandHandler struct {
	drafts  ports.DraftStore
	catalog ports.CatalogReader
}

// NewAddCandidateCommandHandler creates a handler bound to the draft store and
// the catalog source.
func NewAddCandidateCommandHandler(drafts ports.DraftStore, catalog ports.CatalogReader) AddCandidateCommandHandler {
	return AddCandidateCommandHandler{drafts: drafts, catalog: catalog}
}

// Handle validates the staged candidate, resolves its product from the catalog,
// and adds it to the draft with merge-on-duplicate semantics. Every failure is
// reported synchronously and leaves the draft unchanged.
func (h AddCandidateCommandHandler) Handle(ctx context.Context, cmd AddCandidateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	draft := h.drafts.Draft()

	candidate := draft.Candidate()
	if err := candidate.Validate(); err != nil {
		return err
	}

	product, err := h.catalog.ByID(ctx, candidate.ProductID())
	if err != nil {
		return err
	}

	return draft.AddCandidate(product)
}
