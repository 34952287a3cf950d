package queries

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"orders/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves a single order and its items from the
// database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order retrieval.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the order read model.
// Returns ObjectNotFound when no order with the requested id exists.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var row orderRow
	err := h.db.WithContext(ctx).
		Table("orders").
		Where("id = ?", query.OrderID()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderResponse{}, errs.NewObjectNotFoundErrorWithCause("order", query.OrderID(), err)
		}
		return OrderResponse{}, err
	}

	items, err := loadItems(ctx, h.db, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	return orderRowToResponse(row, items), nil
}

// loadItems reads all items of an order ordered by their identifier.
func loadItems(ctx context.Context, db *gorm.DB, orderID int64) ([]itemRow, error) {
	items := make([]itemRow, 0)
	err := db.WithContext(ctx).
		Table("items").
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
