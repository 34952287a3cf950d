package queries

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"orders/internal/pkg/errs"
)

// GetItemQueryHandler retrieves a single item of an order from the database.
type GetItemQueryHandler struct {
	db *gorm.DB
}

// NewGetItemQueryHandler creates a handler for single item retrieval.
func NewGetItemQueryHandler(db *gorm.DB) GetItemQueryHandler {
	return GetItemQueryHandler{db: db}
}

// Handle executes the query and returns the item read model.
// Returns ObjectNotFound when the order does not exist, or when the item
// does not exist or belongs to a different order.
func (h GetItemQueryHandler) Handle(ctx context.Context, query GetItemQuery) (ItemResponse, error) {
	if err := query.Validate(); err != nil {
		return ItemResponse{}, err
	}

	if err := orderExists(ctx, h.db, query.OrderID()); err != nil {
		return ItemResponse{}, err
	}

	var row itemRow
	err := h.db.WithContext(ctx).
		Table("items").
		Where("id = ? AND order_id = ?", query.ItemID(), query.OrderID()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ItemResponse{}, errs.NewObjectNotFoundErrorWithCause("item", query.ItemID(), err)
		}
		return ItemResponse{}, err
	}

	return itemRowToResponse(row), nil
}
