package historyrepo_test

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/adapters/out/memory/historyrepo"
	"backoffice/internal/core/domain/model/catalog"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submittedOrder(t *testing.T, name string) *order.Submitted {
	t.Helper()

	price, err := kernel.MoneyFromString("0.50")
	require.NoError(t, err)
	product, err := catalog.NewProduct("p-001", "Wrench", price, "Acme Tools")
	require.NoError(t, err)

	draft := order.NewDraft()
	draft.SetCustomerInfo(name, name+"@example.com")
	draft.StageCandidate("p-001", 2)
	require.NoError(t, draft.AddCandidate(product))

	submitted, err := order.NewSubmitted(kernel.NewOrderIDGenerator().Next(), draft, time.Now())
	require.NoError(t, err)
	return submitted
}

func TestRepository_Append_RejectsUnconstructedOrder(t *testing.T) {
	// Arrange
	repo := historyrepo.NewRepository()

	// Act
	err := repo.Append(context.Background(), &order.Submitted{})

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrSubmittedIsNotConstructed)

	orders, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestRepository_All_PreservesSubmissionOrder(t *testing.T) {
	// Arrange
	repo := historyrepo.NewRepository()
	first := submittedOrder(t, "Alice")
	second := submittedOrder(t, "Bob")

	require.NoError(t, repo.Append(context.Background(), first))
	require.NoError(t, repo.Append(context.Background(), second))

	// Act
	orders, err := repo.All(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "Alice", orders[0].CustomerName())
	assert.Equal(t, "Bob", orders[1].CustomerName())
}

func TestRepository_ByID(t *testing.T) {
	// Arrange
	repo := historyrepo.NewRepository()
	submitted := submittedOrder(t, "Alice")
	require.NoError(t, repo.Append(context.Background(), submitted))

	t.Run("should resolve a stored order", func(t *testing.T) {
		found, err := repo.ByID(context.Background(), submitted.ID())
		require.NoError(t, err)
		assert.Same(t, submitted, found)
	})

	t.Run("should report unknown id as not found", func(t *testing.T) {
		unknown, err := kernel.OrderIDFromString("ORD-1-0")
		require.NoError(t, err)

		_, err = repo.ByID(context.Background(), unknown)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
