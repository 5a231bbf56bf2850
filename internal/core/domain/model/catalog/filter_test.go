package catalog_test

import (
	"testing"

	"backoffice/internal/core/domain/model/catalog"
	"backoffice/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustProduct(t *testing.T, id, name, price, supplier string) catalog.Product {
	t.Helper()

	money, err := kernel.MoneyFromString(price)
	require.NoError(t, err)

	product, err := catalog.NewProduct(id, name, money, supplier)
	require.NoError(t, err)
	return product
}

func testProducts(t *testing.T) []catalog.Product {
	t.Helper()

	return []catalog.Product{
		mustProduct(t, "p001", "Stainless Screw", "0.5", "Acme Supply"),
		mustProduct(t, "p002", "Brass Bolt", "1.2", "Harbor Metals"),
		mustProduct(t, "p003", "Copper Washer", "0.15", "Acme Supply"),
		mustProduct(t, "p004", "Steel screwdriver", "7.9", "Toolhouse"),
	}
}

func TestFilter(t *testing.T) {
	products := testProducts(t)

	t.Run("should return full input for blank query", func(t *testing.T) {
		result := catalog.Filter(products, catalog.Query{})

		assert.Equal(t, products, result)
	})

	t.Run("should treat whitespace-only fields as blank", func(t *testing.T) {
		result := catalog.Filter(products, catalog.Query{Name: "   ", Supplier: "\t"})

		assert.Equal(t, products, result)
	})

	t.Run("should match name as case-insensitive substring", func(t *testing.T) {
		result := catalog.Filter(products, catalog.Query{Name: "screw"})

		require.Len(t, result, 2)
		assert.Equal(t, "p001", result[0].ID())
		assert.Equal(t, "p004", result[1].ID())
	})

	t.Run("should not miss exact matches", func(t *testing.T) {
		result := catalog.Filter(products, catalog.Query{Name: "Brass Bolt"})

		require.Len(t, result, 1)
		assert.Equal(t, "p002", result[0].ID())
	})

	t.Run("should match supplier field independently", func(t *testing.T) {
		result := catalog.Filter(products, catalog.Query{Supplier: "acme"})

		require.Len(t, result, 2)
		assert.Equal(t, "p001", result[0].ID())
		assert.Equal(t, "p003", result[1].ID())
	})

	t.Run("should combine fields with logical AND", func(t *testing.T) {
		result := catalog.Filter(products, catalog.Query{Name: "screw", Supplier: "acme"})

		require.Len(t, result, 1)
		assert.Equal(t, "p001", result[0].ID())
	})

	t.Run("should trim query fields before matching", func(t *testing.T) {
		result := catalog.Filter(products, catalog.Query{Name: "  screw  "})

		assert.Len(t, result, 2)
	})

	t.Run("should return empty result when nothing matches", func(t *testing.T) {
		result := catalog.Filter(products, catalog.Query{Name: "anchor"})

		assert.Empty(t, result)
	})

	t.Run("should preserve input order of matches", func(t *testing.T) {
		result := catalog.Filter(products, catalog.Query{Supplier: "a"})

		for i := 1; i < len(result); i++ {
			assert.Less(t, indexOf(t, products, result[i-1].ID()), indexOf(t, products, result[i].ID()))
		}
	})

	t.Run("should not mutate the input slice", func(t *testing.T) {
		before := make([]catalog.Product, len(products))
		copy(before, products)

		_ = catalog.Filter(products, catalog.Query{Name: "screw"})

		assert.Equal(t, before, products)
	})
}

func indexOf(t *testing.T, products []catalog.Product, id string) int {
	t.Helper()

	for i, p := range products {
		if p.ID() == id {
			return i
		}
	}
	t.Fatalf("product %s not found", id)
	return -1
}

func TestNewProduct(t *testing.T) {
	price, _ := kernel.MoneyFromString("1.5")

	t.Run("should create valid product", func(t *testing.T) {
		p, err := catalog.NewProduct("p001", "Stainless Screw", price, "Acme Supply")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "p001", p.ID())
		assert.Equal(t, "Stainless Screw", p.Name())
		assert.True(t, p.Price().IsEqual(price))
		assert.Equal(t, "Acme Supply", p.Supplier())
	})

	t.Run("should fail with blank id", func(t *testing.T) {
		_, err := catalog.NewProduct("", "Stainless Screw", price, "Acme Supply")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "product id")
	})

	t.Run("should fail with unconstructed price", func(t *testing.T) {
		var zero kernel.Money

		_, err := catalog.NewProduct("p001", "Stainless Screw", zero, "Acme Supply")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Money must be created")
	})

	t.Run("should collect multiple validation errors", func(t *testing.T) {
		var zero kernel.Money

		_, err := catalog.NewProduct("", "", zero, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "product id")
		assert.Contains(t, err.Error(), "product name")
		assert.Contains(t, err.Error(), "product supplier")
	})

	t.Run("zero value product fails validation", func(t *testing.T) {
		var p catalog.Product

		require.ErrorIs(t, p.Validate(), catalog.ErrProductIsNotConstructed)
	})
}
