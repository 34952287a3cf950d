package ports

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The order owns its items: item rows are written and removed through the
// aggregate, and deleting an order removes its items in the same transaction.
type OrderRepository interface {
	// Add persists a new order aggregate together with its items.
	// Returns the aggregate as persisted, with identifiers assigned by storage.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Update persists changes to an existing order aggregate: the order row
	// itself, updates to owned items, and inserts for items without an id yet.
	// Returns the aggregate as persisted. The order must exist.
	Update(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Get retrieves an order aggregate by id, items included.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// Delete removes an order and all of its items atomically.
	// Deleting an absent order is not an error.
	Delete(ctx context.Context, id int64) error

	// DeleteItem removes a single item owned by the given order.
	// Removing an absent item, or one owned by a different order, is not an error.
	DeleteItem(ctx context.Context, orderID, itemID int64) error
}
