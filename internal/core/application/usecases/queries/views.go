// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries bypass the domain model and read optimized views straight from
// storage.
package queries

import "time"

// ItemResponse is the read model of a single order item.
type ItemResponse struct {
	ID       int64   `json:"id"`
	OrderID  int64   `json:"order_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// OrderResponse is the read model of an order with its items.
// Timestamps are serialized in RFC 3339 form.
type OrderResponse struct {
	ID           int64          `json:"id"`
	CustomerName string         `json:"customer_name"`
	Status       string         `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	Items        []ItemResponse `json:"items"`
}

// PagedOrdersResponse is a page of orders together with pagination metadata.
type PagedOrdersResponse struct {
	Items      []OrderResponse `json:"items"`
	TotalItems int64           `json:"total_items"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

// orderRow mirrors the columns of the orders table.
type orderRow struct {
	ID           int64
	CustomerName string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// itemRow mirrors the columns of the items table.
type itemRow struct {
	ID       int64
	OrderID  int64
	Name     string
	Price    float64
	Quantity int
}

func orderRowToResponse(row orderRow, items []itemRow) OrderResponse {
	response := OrderResponse{
		ID:           row.ID,
		CustomerName: row.CustomerName,
		Status:       row.Status,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
		Items:        make([]ItemResponse, 0, len(items)),
	}
	for _, item := range items {
		response.Items = append(response.Items, itemRowToResponse(item))
	}
	return response
}

func itemRowToResponse(row itemRow) ItemResponse {
	return ItemResponse{
		ID:       row.ID,
		OrderID:  row.OrderID,
		Name:     row.Name,
		Price:    row.Price,
		Quantity: row.Quantity,
	}
}
