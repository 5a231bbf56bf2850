package printing_test

import (
	"testing"

	"backoffice/internal/core/domain/model/printing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Idle", printing.Idle.String())
	assert.Equal(t, "DocumentReady", printing.DocumentReady.String())
	assert.Equal(t, "PrintRequested", printing.PrintRequested.String())
	assert.Equal(t, "Unknown", printing.Unknown.String())
	assert.Equal(t, "Unknown", printing.Status(42).String())
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		for _, s := range []printing.Status{printing.Idle, printing.DocumentReady, printing.PrintRequested} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("unknown and out-of-range fail", func(t *testing.T) {
		require.Error(t, printing.Unknown.Validate())
		require.Error(t, printing.Status(42).Validate())
	})
}

func TestStatus_MarkReady(t *testing.T) {
	t.Run("idle becomes document ready", func(t *testing.T) {
		s, err := printing.Idle.MarkReady()

		require.NoError(t, err)
		assert.Equal(t, printing.DocumentReady, s)
	})

	t.Run("repeated paint notification is idempotent", func(t *testing.T) {
		s, err := printing.DocumentReady.MarkReady()

		require.NoError(t, err)
		assert.Equal(t, printing.DocumentReady, s)
	})

	t.Run("cannot mark ready while print is in flight", func(t *testing.T) {
		_, err := printing.PrintRequested.MarkReady()

		require.Error(t, err)
	})
}

func TestStatus_Request(t *testing.T) {
	t.Run("document ready allows print request", func(t *testing.T) {
		s, err := printing.DocumentReady.Request()

		require.NoError(t, err)
		assert.Equal(t, printing.PrintRequested, s)
	})

	t.Run("idle does not allow print request", func(t *testing.T) {
		_, err := printing.Idle.Request()

		require.Error(t, err)
	})

	t.Run("in-flight request cannot be requested again", func(t *testing.T) {
		_, err := printing.PrintRequested.Request()

		require.Error(t, err)
	})
}

func TestStatus_Finish(t *testing.T) {
	t.Run("print requested finishes back to idle", func(t *testing.T) {
		s, err := printing.PrintRequested.Finish()

		require.NoError(t, err)
		assert.Equal(t, printing.Idle, s)
	})

	t.Run("finish requires an in-flight request", func(t *testing.T) {
		_, err := printing.Idle.Finish()
		require.Error(t, err)

		_, err = printing.DocumentReady.Finish()
		require.Error(t, err)
	})
}
