package http

import (
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"
)

// ItemRequest is the JSON body for creating or updating an item.
// price and quantity are pointers to tell an omitted field from a zero.
type ItemRequest struct {
	Name     string   `json:"name"`
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
}

// OrderRequest is the JSON body for creating or updating an order.
type OrderRequest struct {
	CustomerName string        `json:"customer_name"`
	Status       string        `json:"status"`
	CreatedAt    string        `json:"created_at"`
	Items        []ItemRequest `json:"items"`
}

// AdvanceOrderResponse reports the status reached by an advance action.
type AdvanceOrderResponse struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

func itemSpecs(requests []ItemRequest) ([]commands.ItemSpec, error) {
	specs := make([]commands.ItemSpec, 0, len(requests))
	for _, request := range requests {
		spec, err := commands.NewItemSpec(request.Name, request.Price, request.Quantity)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// orderResponse converts an order aggregate into the read model shape so
// that command and query endpoints return identical representations.
func orderResponse(aggregate *order.Order) queries.OrderResponse {
	response := queries.OrderResponse{
		ID:           aggregate.ID(),
		CustomerName: aggregate.CustomerName(),
		Status:       aggregate.Status().String(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
		Items:        make([]queries.ItemResponse, 0, len(aggregate.Items())),
	}
	for _, item := range aggregate.Items() {
		response.Items = append(response.Items, itemResponse(item))
	}
	return response
}

func itemResponse(item *order.Item) queries.ItemResponse {
	return queries.ItemResponse{
		ID:       item.ID(),
		OrderID:  item.OrderID(),
		Name:     item.Name(),
		Price:    item.Price(),
		Quantity: item.Quantity(),
	}
}
