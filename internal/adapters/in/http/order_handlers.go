package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/pkg/errs"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// CreateOrder handles POST /api/orders - registers a new order.
//
//	@Summary		Create an order
//	@Description	Creates an order with optional initial items. Status defaults to PENDING.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		OrderRequest	true	"Order to create"
//	@Success		201		{object}	queries.OrderResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/api/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request OrderRequest
	if err := ctx.Bind(&request); err != nil {
		return respondError(ctx, bindError(err))
	}

	specs, err := itemSpecs(request.Items)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		request.CustomerName,
		request.Status,
		request.CreatedAt,
		specs,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderLocation,
		fmt.Sprintf("/api/orders/%d", created.ID()))

	return ctx.JSON(http.StatusCreated, orderResponse(created))
}

// ListOrders handles GET /api/orders - lists orders with filters and
// pagination.
//
//	@Summary		List orders
//	@Description	Returns a page of orders. Filters combine with AND; an unknown status matches nothing.
//	@Tags			orders
//	@Produce		json
//	@Param			customer_name	query		string	false	"Exact customer name"
//	@Param			status			query		string	false	"Order status, case-insensitive"
//	@Param			order_id		query		int		false	"Order identifier"
//	@Param			product_name	query		string	false	"Exact item name"
//	@Param			page			query		int		false	"Page number, starting at 1"
//	@Param			page_size		query		int		false	"Orders per page"
//	@Success		200				{object}	queries.PagedOrdersResponse
//	@Failure		400				{object}	ErrorResponse
//	@Router			/api/orders [get]
func (s *Server) ListOrders(ctx echo.Context) error {
	page, err := queryInt(ctx, "page", defaultPage)
	if err != nil {
		return respondError(ctx, err)
	}

	pageSize, err := queryInt(ctx, "page_size", defaultPageSize)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := queryInt(ctx, "order_id", 0)
	if err != nil {
		return respondError(ctx, err)
	}

	filter := queries.ListOrdersFilter{
		CustomerName: ctx.QueryParam("customer_name"),
		Status:       ctx.QueryParam("status"),
		OrderID:      int64(orderID),
		ProductName:  ctx.QueryParam("product_name"),
	}

	query, err := queries.NewListOrdersQuery(filter, page, pageSize)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/orders/:order_id - returns one order.
//
//	@Summary		Get an order
//	@Tags			orders
//	@Produce		json
//	@Param			order_id	path		int	true	"Order identifier"
//	@Success		200			{object}	queries.OrderResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/api/orders/{order_id} [get]
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "order_id", "order")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrder handles PUT /api/orders/:order_id - edits order fields and
// appends any items carried in the payload.
//
//	@Summary		Update an order
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order_id	path		int				true	"Order identifier"
//	@Param			order		body		OrderRequest	true	"Replacement fields"
//	@Success		200			{object}	queries.OrderResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/api/orders/{order_id} [put]
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "order_id", "order")
	if err != nil {
		return respondError(ctx, err)
	}

	var request OrderRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, bindError(err))
	}

	specs, err := itemSpecs(request.Items)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, request.CustomerName, request.Status, specs)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(updated))
}

// DeleteOrder handles DELETE /api/orders/:order_id - removes an order and
// its items. Deleting an absent order still succeeds.
//
//	@Summary		Delete an order
//	@Tags			orders
//	@Param			order_id	path	int	true	"Order identifier"
//	@Success		204
//	@Router			/api/orders/{order_id} [delete]
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "order_id", "order")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceOrder handles PUT /api/orders/:order_id/update - moves the order
// to the next lifecycle status.
//
//	@Summary		Advance an order's status
//	@Description	Fails when the order has no items or is already COMPLETED or CANCELLED.
//	@Tags			orders
//	@Produce		json
//	@Param			order_id	path		int	true	"Order identifier"
//	@Success		200			{object}	AdvanceOrderResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/api/orders/{order_id}/update [put]
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "order_id", "order")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	advanced, err := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AdvanceOrderResponse{
		OrderID: advanced.ID(),
		Status:  advanced.Status().String(),
	})
}

// CancelOrder handles PUT /api/orders/:order_id/cancel - cancels the order.
//
//	@Summary		Cancel an order
//	@Description	Sets the order's status to CANCELLED regardless of its current status.
//	@Tags			orders
//	@Produce		json
//	@Param			order_id	path		int	true	"Order identifier"
//	@Success		200			{object}	queries.OrderResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/api/orders/{order_id}/cancel [put]
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "order_id", "order")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(cancelled))
}

// queryInt parses an optional integer query parameter, falling back to a
// default when the parameter is absent.
func queryInt(ctx echo.Context, name string, fallback int) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}
