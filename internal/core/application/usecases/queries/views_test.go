package queries_test

import (
	"encoding/json"
	"testing"

	"orders/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagedOrdersResponse_WireFormat(t *testing.T) {
	t.Run("should serialize page under documented keys", func(t *testing.T) {
		response := queries.PagedOrdersResponse{
			Items:      []queries.OrderResponse{},
			TotalItems: 42,
			Page:       2,
			PageSize:   10,
			TotalPages: 5,
		}

		raw, err := json.Marshal(response)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))

		assert.Contains(t, decoded, "items")
		assert.Equal(t, float64(42), decoded["total_items"])
		assert.Equal(t, float64(2), decoded["page"])
		assert.Equal(t, float64(10), decoded["page_size"])
		assert.Equal(t, float64(5), decoded["total_pages"])
	})

	t.Run("should not expose legacy keys", func(t *testing.T) {
		raw, err := json.Marshal(queries.PagedOrdersResponse{})
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))

		assert.NotContains(t, decoded, "orders")
		assert.NotContains(t, decoded, "total")
	})
}
