package commands_test

import (
	"context"
	"testing"

	"backoffice/internal/core/domain/model/catalog"
	"backoffice/internal/core/domain/model/invoice"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations for testing.
type MockDraftStore struct {
	mock.Mock
}

func (m *MockDraftStore) Draft() *order.Draft {
	args := m.Called()
	return args.Get(0).(*order.Draft)
}

type MockCatalogReader struct {
	mock.Mock
}

func (m *MockCatalogReader) All(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockCatalogReader) ByID(ctx context.Context, id string) (catalog.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Product), args.Error(1)
}

type MockOrderHistory struct {
	mock.Mock
}

func (m *MockOrderHistory) Append(ctx context.Context, submitted *order.Submitted) error {
	args := m.Called(ctx, submitted)
	return args.Error(0)
}

func (m *MockOrderHistory) All(ctx context.Context) ([]*order.Submitted, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*order.Submitted), args.Error(1)
}

func (m *MockOrderHistory) ByID(ctx context.Context, id kernel.OrderID) (*order.Submitted, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*order.Submitted), args.Error(1)
}

type MockPrintNotifier struct {
	mock.Mock
}

func (m *MockPrintNotifier) OrderSubmitted(doc invoice.Document) error {
	args := m.Called(doc)
	return args.Error(0)
}

func testProduct(t *testing.T, id, name, price, supplier string) catalog.Product {
	t.Helper()

	money, err := kernel.MoneyFromString(price)
	require.NoError(t, err)

	product, err := catalog.NewProduct(id, name, money, supplier)
	require.NoError(t, err)

	return product
}
