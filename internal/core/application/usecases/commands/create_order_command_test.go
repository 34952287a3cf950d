package commands_test

import (
	"testing"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should create command with minimal fields", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand("Alice", "", "", nil)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "Alice", cmd.CustomerName())
		assert.Equal(t, order.Pending, cmd.Status())
		assert.True(t, cmd.CreatedAt().IsZero())
		assert.Empty(t, cmd.Items())
	})

	t.Run("should accept a case-insensitive status", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand("Alice", "shipped", "", nil)

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, cmd.Status())
	})

	t.Run("should parse an explicit creation timestamp", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand("Alice", "", "2024-03-01T12:30:00Z", nil)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC), cmd.CreatedAt())
	})

	t.Run("should parse a timestamp without zone offset", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand("Alice", "", "2024-03-01T12:30:00", nil)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC), cmd.CreatedAt())
	})

	t.Run("should return error for missing customer name", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("", "", "", nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should return error for unknown status", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("Alice", "SHIPPING", "", nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should return error for malformed timestamp", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("Alice", "", "yesterday", nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should collect all field errors at once", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("", "SHIPPING", "yesterday", nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an unconstructed item spec", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("Alice", "", "", []commands.ItemSpec{{}})

		require.Error(t, err)
	})
}

func TestCreateOrderCommand_Validate(t *testing.T) {
	var cmd commands.CreateOrderCommand

	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
