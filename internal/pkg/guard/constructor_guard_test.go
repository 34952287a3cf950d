package guard_test

import (
	"errors"
	"testing"

	"orders/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := g.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type LineEntry struct {
		name     string
		quantity int
		guard    guard.ConstructorGuard
	}

	var errLineEntryNotConstructed = errors.New("LineEntry must be created via newLineEntry")

	newLineEntry := func(name string, quantity int) (LineEntry, error) {
		if name == "" {
			return LineEntry{}, errors.New("name is required")
		}
		if quantity < 0 {
			return LineEntry{}, errors.New("quantity cannot be negative")
		}
		return LineEntry{
			name:     name,
			quantity: quantity,
			guard:    guard.NewConstructorGuard(),
		}, nil
	}

	validateLineEntry := func(e LineEntry) error {
		return e.guard.Validate(errLineEntryNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		entry, err := newLineEntry("wrench", 3)

		// Then
		require.NoError(t, err)
		require.NoError(t, validateLineEntry(entry))
		assert.Equal(t, "wrench", entry.name)
		assert.Equal(t, 3, entry.quantity)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		// Given
		var entry LineEntry // zero value

		// When
		err := validateLineEntry(entry)

		// Then
		require.Error(t, err)
		assert.Equal(t, errLineEntryNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newLineEntry("", 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")

		_, err = newLineEntry("wrench", -1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity cannot be negative")
	})
}
