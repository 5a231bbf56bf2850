package commands_test

import (
	"context"
	"testing"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRemoveItemCommand_BlankProductID(t *testing.T) {
	// Act
	_, err := commands.NewRemoveItemCommand("   ")

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRemoveItemCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	product := testProduct(t, "p-001", "Wrench", "12.50", "Acme Tools")

	draft := order.NewDraft()
	draft.StageCandidate("p-001", 2)
	require.NoError(t, draft.AddCandidate(product))

	mockStore := new(MockDraftStore)
	mockStore.On("Draft").Return(draft).Once()

	cmd, err := commands.NewRemoveItemCommand("p-001")
	require.NoError(t, err)

	handler := commands.NewRemoveItemCommandHandler(mockStore)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, draft.Items())
	mockStore.AssertExpectations(t)
}

func TestRemoveItemCommandHandler_Handle_AbsentProductIsNoOp(t *testing.T) {
	// Arrange
	ctx := context.Background()
	product := testProduct(t, "p-001", "Wrench", "12.50", "Acme Tools")

	draft := order.NewDraft()
	draft.StageCandidate("p-001", 2)
	require.NoError(t, draft.AddCandidate(product))

	mockStore := new(MockDraftStore)
	mockStore.On("Draft").Return(draft).Once()

	cmd, err := commands.NewRemoveItemCommand("p-999")
	require.NoError(t, err)

	handler := commands.NewRemoveItemCommandHandler(mockStore)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.Len(t, draft.Items(), 1)
	mockStore.AssertExpectations(t)
}

func TestRemoveItemCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := context.Background()
	var invalidCmd commands.RemoveItemCommand // zero value command

	mockStore := new(MockDraftStore)
	handler := commands.NewRemoveItemCommandHandler(mockStore)

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRemoveItemCommandIsNotConstructed)
	mockStore.AssertExpectations(t)
}
