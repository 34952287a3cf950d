// Package http exposes the order management use cases as a REST API.
// It translates requests into commands and queries, and use case results
// into JSON responses.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	updateOrderHandler  commands.UpdateOrderCommandHandler
	deleteOrderHandler  commands.DeleteOrderCommandHandler
	advanceOrderHandler commands.AdvanceOrderCommandHandler
	cancelOrderHandler  commands.CancelOrderCommandHandler
	addItemHandler      commands.AddItemCommandHandler
	updateItemHandler   commands.UpdateItemCommandHandler
	deleteItemHandler   commands.DeleteItemCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
	getItemHandler    queries.GetItemQueryHandler
	listItemsHandler  queries.ListItemsQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	addItemHandler commands.AddItemCommandHandler,
	updateItemHandler commands.UpdateItemCommandHandler,
	deleteItemHandler commands.DeleteItemCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getItemHandler queries.GetItemQueryHandler,
	listItemsHandler queries.ListItemsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:  createOrderHandler,
		updateOrderHandler:  updateOrderHandler,
		deleteOrderHandler:  deleteOrderHandler,
		advanceOrderHandler: advanceOrderHandler,
		cancelOrderHandler:  cancelOrderHandler,
		addItemHandler:      addItemHandler,
		updateItemHandler:   updateItemHandler,
		deleteItemHandler:   deleteItemHandler,
		getOrderHandler:     getOrderHandler,
		listOrdersHandler:   listOrdersHandler,
		getItemHandler:      getItemHandler,
		listItemsHandler:    listItemsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:order_id", s.GetOrder)
	api.PUT("/orders/:order_id", s.UpdateOrder)
	api.DELETE("/orders/:order_id", s.DeleteOrder)
	api.PUT("/orders/:order_id/update", s.AdvanceOrder)
	api.PUT("/orders/:order_id/cancel", s.CancelOrder)

	api.POST("/orders/:order_id/items", s.CreateItem)
	api.GET("/orders/:order_id/items", s.ListItems)
	api.GET("/orders/:order_id/items/:item_id", s.GetItem)
	api.PUT("/orders/:order_id/items/:item_id", s.UpdateItem)
	api.DELETE("/orders/:order_id/items/:item_id", s.DeleteItem)
}

// Health handles GET /health - liveness probe.
//
//	@Summary		Health check
//	@Description	Reports whether the service is up.
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health [get]
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"message": "Healthy"})
}
