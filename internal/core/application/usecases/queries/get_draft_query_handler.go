package queries

import (
	"context"

	"backoffice/internal/core/ports"
)

// GetDraftQueryHandler projects the session draft into its display view.
type GetDraftQueryHandler struct {
	drafts ports.DraftStore
}

// NewGetDraftQueryHandler creates a handler bound to the draft store.
func NewGetDraftQueryHandler(drafts ports.DraftStore) GetDraftQueryHandler {
	return GetDraftQueryHandler{drafts: drafts}
}

// Handle returns the current draft view with its recomputed total.
func (h GetDraftQueryHandler) Handle(_ context.Context, query GetDraftQuery) (GetDraftQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDraftQueryResponse{}, err
	}

	draft := h.drafts.Draft()
	return GetDraftQueryResponse{
		CustomerName:    draft.CustomerName(),
		CustomerContact: draft.CustomerContact(),
		Items:           draft.Items(),
		Candidate:       draft.Candidate(),
		Total:           draft.Total(),
	}, nil
}
