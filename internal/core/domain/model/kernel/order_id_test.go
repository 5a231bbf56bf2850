package kernel_test

import (
	"testing"
	"time"

	"backoffice/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderIDGenerator_Next(t *testing.T) {
	t.Run("should encode the submission instant", func(t *testing.T) {
		at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		gen := kernel.NewOrderIDGeneratorWithClock(func() time.Time { return at })

		id := gen.Next()

		require.NoError(t, id.Validate())
		assert.Equal(t, at.UnixMilli(), id.Time().UnixMilli())
	})

	t.Run("should issue distinct ids within the same millisecond", func(t *testing.T) {
		at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		gen := kernel.NewOrderIDGeneratorWithClock(func() time.Time { return at })

		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			id := gen.Next()
			assert.False(t, seen[id.String()], "duplicate id %s", id)
			seen[id.String()] = true
		}
	})

	t.Run("should not go backwards when the clock does", func(t *testing.T) {
		times := []time.Time{
			time.UnixMilli(2000),
			time.UnixMilli(1000),
		}
		i := 0
		gen := kernel.NewOrderIDGeneratorWithClock(func() time.Time {
			at := times[i]
			i++
			return at
		})

		first := gen.Next()
		second := gen.Next()

		assert.False(t, first.IsEqual(second))
		assert.Equal(t, first.Time(), second.Time())
	})

	t.Run("should be safe for concurrent use", func(t *testing.T) {
		gen := kernel.NewOrderIDGenerator()

		const n = 50
		ids := make(chan kernel.OrderID, n)
		for i := 0; i < n; i++ {
			go func() { ids <- gen.Next() }()
		}

		seen := make(map[string]bool)
		for i := 0; i < n; i++ {
			id := <-ids
			assert.False(t, seen[id.String()])
			seen[id.String()] = true
		}
	})
}

func TestOrderIDFromString(t *testing.T) {
	t.Run("should round-trip the canonical form", func(t *testing.T) {
		gen := kernel.NewOrderIDGenerator()
		id := gen.Next()

		parsed, err := kernel.OrderIDFromString(id.String())

		require.NoError(t, err)
		assert.True(t, id.IsEqual(parsed))
	})

	t.Run("should reject malformed ids", func(t *testing.T) {
		for _, s := range []string{"", "ORD-123", "X-123-0", "ORD-abc-0", "ORD-123-x", "ORD-0-0"} {
			_, err := kernel.OrderIDFromString(s)
			require.Error(t, err, "expected %q to be rejected", s)
		}
	})
}

func TestOrderID_Validate(t *testing.T) {
	t.Run("zero value id fails validation", func(t *testing.T) {
		var id kernel.OrderID

		require.ErrorIs(t, id.Validate(), kernel.ErrOrderIDIsNotConstructed)
	})
}
