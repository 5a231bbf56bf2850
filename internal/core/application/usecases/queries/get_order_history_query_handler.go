package queries

import (
	"context"

	"backoffice/internal/core/ports"
)

// GetOrderHistoryQueryHandler lists the session's submitted orders.
type GetOrderHistoryQueryHandler struct {
	history ports.OrderHistory
}

// NewGetOrderHistoryQueryHandler creates a handler bound to the order history.
func NewGetOrderHistoryQueryHandler(history ports.OrderHistory) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{history: history}
}

// Handle returns one row per submitted order, oldest first.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.history.All(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]GetOrderHistoryQueryResponse, len(orders))
	for i, submitted := range orders {
		rows[i] = GetOrderHistoryQueryResponse{
			ID:           submitted.ID(),
			CustomerName: submitted.CustomerName(),
			Total:        submitted.Total(),
			ItemCount:    len(submitted.Items()),
			SubmittedAt:  submitted.SubmittedAt(),
		}
	}

	return rows, nil
}
