package order_test

import (
	"testing"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	t.Run("should parse all canonical names", func(t *testing.T) {
		cases := map[string]order.Status{
			"PENDING":     order.Pending,
			"CREATED":     order.Created,
			"IN_PROGRESS": order.InProgress,
			"SHIPPED":     order.Shipped,
			"COMPLETED":   order.Completed,
			"CANCELLED":   order.Cancelled,
		}

		for value, expected := range cases {
			status, err := order.StatusFromString(value)
			require.NoError(t, err)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("should be case insensitive", func(t *testing.T) {
		for _, value := range []string{"pending", "Pending", "pEnDiNg", " pending "} {
			status, err := order.StatusFromString(value)
			require.NoError(t, err)
			assert.Equal(t, order.Pending, status)
		}
	})

	t.Run("should reject unknown values", func(t *testing.T) {
		for _, value := range []string{"SHIPPING", "DONE", "", "IN PROGRESS"} {
			_, err := order.StatusFromString(value)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "PENDING", order.Pending.String())
	assert.Equal(t, "IN_PROGRESS", order.InProgress.String())
	assert.Equal(t, "CANCELLED", order.Cancelled.String())
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Created.IsTerminal())
	assert.False(t, order.InProgress.IsTerminal())
	assert.False(t, order.Shipped.IsTerminal())
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}

func TestStatusNext(t *testing.T) {
	t.Run("should follow the linear sequence", func(t *testing.T) {
		sequence := []order.Status{
			order.Pending,
			order.Created,
			order.InProgress,
			order.Shipped,
			order.Completed,
		}

		for i := 0; i < len(sequence)-1; i++ {
			next, err := sequence[i].Next()
			require.NoError(t, err)
			assert.Equal(t, sequence[i+1], next)
		}
	})

	t.Run("should fail for terminal statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Completed, order.Cancelled} {
			_, err := status.Next()
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
		}
	})

	t.Run("should fail for an unknown status", func(t *testing.T) {
		_, err := order.Unknown.Next()
		require.Error(t, err)
	})
}

func TestStatusCancel(t *testing.T) {
	t.Run("should cancel from every known status", func(t *testing.T) {
		statuses := []order.Status{
			order.Pending,
			order.Created,
			order.InProgress,
			order.Shipped,
			order.Completed,
			order.Cancelled,
		}

		for _, status := range statuses {
			cancelled, err := status.Cancel()
			require.NoError(t, err)
			assert.Equal(t, order.Cancelled, cancelled)
		}
	})

	t.Run("should fail for an unknown status", func(t *testing.T) {
		_, err := order.Unknown.Cancel()
		require.Error(t, err)
	})
}
