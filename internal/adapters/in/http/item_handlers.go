package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
)

// CreateItem handles POST /api/orders/:order_id/items - adds an item to an
// order.
//
//	@Summary		Add an item to an order
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			order_id	path		int			true	"Order identifier"
//	@Param			item		body		ItemRequest	true	"Item to add"
//	@Success		201			{object}	queries.ItemResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/api/orders/{order_id}/items [post]
func (s *Server) CreateItem(ctx echo.Context) error {
	orderID, err := pathID(ctx, "order_id", "order")
	if err != nil {
		return respondError(ctx, err)
	}

	var request ItemRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, bindError(err))
	}

	spec, err := commands.NewItemSpec(request.Name, request.Price, request.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAddItemCommand(orderID, spec)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.addItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderLocation,
		fmt.Sprintf("/api/orders/%d/items/%d", orderID, created.ID()))

	return ctx.JSON(http.StatusCreated, itemResponse(created))
}

// ListItems handles GET /api/orders/:order_id/items - lists an order's
// items.
//
//	@Summary		List the items of an order
//	@Tags			items
//	@Produce		json
//	@Param			order_id	path		int	true	"Order identifier"
//	@Success		200			{array}		queries.ItemResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/api/orders/{order_id}/items [get]
func (s *Server) ListItems(ctx echo.Context) error {
	orderID, err := pathID(ctx, "order_id", "order")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListItemsQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	items, err := s.listItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, items)
}

// GetItem handles GET /api/orders/:order_id/items/:item_id - returns one
// item of an order.
//
//	@Summary		Get an item of an order
//	@Tags			items
//	@Produce		json
//	@Param			order_id	path		int	true	"Order identifier"
//	@Param			item_id		path		int	true	"Item identifier"
//	@Success		200			{object}	queries.ItemResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/api/orders/{order_id}/items/{item_id} [get]
func (s *Server) GetItem(ctx echo.Context) error {
	orderID, err := pathID(ctx, "order_id", "order")
	if err != nil {
		return respondError(ctx, err)
	}

	itemID, err := pathID(ctx, "item_id", "item")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetItemQuery(orderID, itemID)
	if err != nil {
		return respondError(ctx, err)
	}

	item, err := s.getItemHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, item)
}

// UpdateItem handles PUT /api/orders/:order_id/items/:item_id - replaces an
// item's fields.
//
//	@Summary		Update an item of an order
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			order_id	path		int			true	"Order identifier"
//	@Param			item_id		path		int			true	"Item identifier"
//	@Param			item		body		ItemRequest	true	"Replacement fields"
//	@Success		200			{object}	queries.ItemResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/api/orders/{order_id}/items/{item_id} [put]
func (s *Server) UpdateItem(ctx echo.Context) error {
	orderID, err := pathID(ctx, "order_id", "order")
	if err != nil {
		return respondError(ctx, err)
	}

	itemID, err := pathID(ctx, "item_id", "item")
	if err != nil {
		return respondError(ctx, err)
	}

	var request ItemRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, bindError(err))
	}

	spec, err := commands.NewItemSpec(request.Name, request.Price, request.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateItemCommand(orderID, itemID, spec)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, itemResponse(updated))
}

// DeleteItem handles DELETE /api/orders/:order_id/items/:item_id - removes
// an item. The owning order must exist; the item itself may already be
// gone.
//
//	@Summary		Delete an item of an order
//	@Tags			items
//	@Param			order_id	path	int	true	"Order identifier"
//	@Param			item_id		path	int	true	"Item identifier"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/orders/{order_id}/items/{item_id} [delete]
func (s *Server) DeleteItem(ctx echo.Context) error {
	orderID, err := pathID(ctx, "order_id", "order")
	if err != nil {
		return respondError(ctx, err)
	}

	itemID, err := pathID(ctx, "item_id", "item")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteItemCommand(orderID, itemID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
