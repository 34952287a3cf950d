package queries

import (
	"context"

	"gorm.io/gorm"

	"orders/internal/core/domain/model/order"
)

// ListOrdersQueryHandler retrieves pages of orders from the database,
// applying the query's filter criteria.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for paginated order listings.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the matching page of orders.
// A status filter that names no known status matches nothing and yields an
// empty page rather than an error. Orders are returned in ascending id
// order, each with its items attached.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (PagedOrdersResponse, error) {
	if err := query.Validate(); err != nil {
		return PagedOrdersResponse{}, err
	}

	response := PagedOrdersResponse{
		Items:    make([]OrderResponse, 0),
		Page:     query.Page(),
		PageSize: query.PageSize(),
	}

	filtered, err := h.applyFilter(h.db.WithContext(ctx).Table("orders"), query.Filter())
	if err != nil {
		// Unknown status values match no orders.
		return response, nil
	}

	if err = filtered.Count(&response.TotalItems).Error; err != nil {
		return PagedOrdersResponse{}, err
	}

	rows := make([]orderRow, 0)
	err = filtered.
		Order("id ASC").
		Limit(query.PageSize()).
		Offset((query.Page() - 1) * query.PageSize()).
		Find(&rows).Error
	if err != nil {
		return PagedOrdersResponse{}, err
	}

	itemsByOrder, err := h.loadItemsFor(ctx, rows)
	if err != nil {
		return PagedOrdersResponse{}, err
	}

	for _, row := range rows {
		response.Items = append(response.Items, orderRowToResponse(row, itemsByOrder[row.ID]))
	}

	response.TotalPages = totalPages(response.TotalItems, query.PageSize())

	return response, nil
}

func (h ListOrdersQueryHandler) applyFilter(tx *gorm.DB, filter ListOrdersFilter) (*gorm.DB, error) {
	if filter.CustomerName != "" {
		tx = tx.Where("customer_name = ?", filter.CustomerName)
	}
	if filter.Status != "" {
		status, err := order.StatusFromString(filter.Status)
		if err != nil {
			return nil, err
		}
		tx = tx.Where("status = ?", status.String())
	}
	if filter.OrderID > 0 {
		tx = tx.Where("id = ?", filter.OrderID)
	}
	if filter.ProductName != "" {
		tx = tx.Where("id IN (SELECT order_id FROM items WHERE name = ?)", filter.ProductName)
	}
	return tx, nil
}

// loadItemsFor reads the items of all listed orders in a single query and
// groups them by order id.
func (h ListOrdersQueryHandler) loadItemsFor(ctx context.Context, rows []orderRow) (map[int64][]itemRow, error) {
	itemsByOrder := make(map[int64][]itemRow, len(rows))
	if len(rows) == 0 {
		return itemsByOrder, nil
	}

	orderIDs := make([]int64, 0, len(rows))
	for _, row := range rows {
		orderIDs = append(orderIDs, row.ID)
	}

	items := make([]itemRow, 0)
	err := h.db.WithContext(ctx).
		Table("items").
		Where("order_id IN ?", orderIDs).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}

	return itemsByOrder, nil
}

func totalPages(total int64, pageSize int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
