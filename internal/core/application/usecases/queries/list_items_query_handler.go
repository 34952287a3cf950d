package queries

import (
	"context"

	"gorm.io/gorm"

	"orders/internal/pkg/errs"
)

// ListItemsQueryHandler retrieves all items of an order from the database.
type ListItemsQueryHandler struct {
	db *gorm.DB
}

// NewListItemsQueryHandler creates a handler for order item listings.
func NewListItemsQueryHandler(db *gorm.DB) ListItemsQueryHandler {
	return ListItemsQueryHandler{db: db}
}

// Handle executes the query and returns the order's items in ascending id
// order. Returns ObjectNotFound when the order does not exist; an existing
// order without items yields an empty slice.
func (h ListItemsQueryHandler) Handle(ctx context.Context, query ListItemsQuery) ([]ItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := orderExists(ctx, h.db, query.OrderID()); err != nil {
		return nil, err
	}

	items, err := loadItems(ctx, h.db, query.OrderID())
	if err != nil {
		return nil, err
	}

	responses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, itemRowToResponse(item))
	}

	return responses, nil
}

// orderExists fails with ObjectNotFound when no order with the given id is
// stored.
func orderExists(ctx context.Context, db *gorm.DB, orderID int64) error {
	var count int64
	err := db.WithContext(ctx).
		Table("orders").
		Where("id = ?", orderID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", orderID)
	}
	return nil
}
