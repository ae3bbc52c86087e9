// Package http exposes the ordering workflow over REST. Authentication
// lives upstream: the gateway verifies the session and forwards the
// caller's identity and role in the X-User-ID and X-User-Role headers,
// which this layer trusts.
package http

import (
	"errors"
	"net/http"

	"canteen/internal/adapters/in/ws"
	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler             commands.PlaceOrderCommandHandler
	updateOrderStatusHandler      commands.UpdateOrderStatusCommandHandler
	addMenuItemHandler            commands.AddMenuItemCommandHandler
	updateMenuItemHandler         commands.UpdateMenuItemCommandHandler
	removeMenuItemHandler         commands.RemoveMenuItemCommandHandler
	toggleItemAvailabilityHandler commands.ToggleItemAvailabilityCommandHandler

	// Query handlers
	getAllOrdersHandler     queries.GetAllOrdersQueryHandler
	getStudentOrdersHandler queries.GetStudentOrdersQueryHandler
	getMenuHandler          queries.GetMenuQueryHandler

	hub *ws.Hub
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	addMenuItemHandler commands.AddMenuItemCommandHandler,
	updateMenuItemHandler commands.UpdateMenuItemCommandHandler,
	removeMenuItemHandler commands.RemoveMenuItemCommandHandler,
	toggleItemAvailabilityHandler commands.ToggleItemAvailabilityCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getStudentOrdersHandler queries.GetStudentOrdersQueryHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	hub *ws.Hub,
) *Server {
	return &Server{
		placeOrderHandler:             placeOrderHandler,
		updateOrderStatusHandler:      updateOrderStatusHandler,
		addMenuItemHandler:            addMenuItemHandler,
		updateMenuItemHandler:         updateMenuItemHandler,
		removeMenuItemHandler:         removeMenuItemHandler,
		toggleItemAvailabilityHandler: toggleItemAvailabilityHandler,
		getAllOrdersHandler:           getAllOrdersHandler,
		getStudentOrdersHandler:       getStudentOrdersHandler,
		getMenuHandler:                getMenuHandler,
		hub:                           hub,
	}
}

// RegisterRoutes mounts every endpoint on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/my", s.GetMyOrders)
	api.PATCH("/orders/:ref/status", s.UpdateOrderStatus)

	api.GET("/menu", s.GetMenu)
	api.POST("/menu", s.AddMenuItem)
	api.PUT("/menu/:id", s.UpdateMenuItem)
	api.DELETE("/menu/:id", s.RemoveMenuItem)
	api.PATCH("/menu/:id/availability", s.ToggleItemAvailability)

	e.GET("/ws", s.ServeWS)
}

// PlaceOrder handles POST /api/v1/orders - places a new food order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	studentID, err := kernel.UUIDFromString(ctx.Request().Header.Get(headerUserID))
	if err != nil {
		return badRequest(ctx, "Invalid or missing user identity")
	}

	items := make([]order.LineItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		menuItemID, idErr := kernel.UUIDFromString(itemReq.MenuItemID)
		if idErr != nil {
			return badRequest(ctx, "Invalid menu item id: "+itemReq.MenuItemID)
		}

		item, itemErr := order.NewLineItem(menuItemID, itemReq.Quantity)
		if itemErr != nil {
			return badRequest(ctx, "Invalid order line: "+itemErr.Error())
		}
		items = append(items, item)
	}

	cmd, err := commands.NewPlaceOrderCommand(
		actorRole(ctx), studentID, items, req.IsFirstYear, req.HostelChoice)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(placed))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:ref/status - moves an
// order along its workflow. The ref may be the internal id or the
// 4-character order token.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	var req UpdateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(actorRole(ctx), ctx.Param("ref"), req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status update: "+err.Error())
	}

	if err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders - retrieves the full order board for staff.
func (s *Server) GetOrders(ctx echo.Context) error {
	query, err := queries.NewGetAllOrdersQuery(actorRole(ctx))
	if err != nil {
		return badRequest(ctx, "Invalid role")
	}

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetMyOrders handles GET /api/v1/orders/my - retrieves the caller's own orders.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	studentID, err := kernel.UUIDFromString(ctx.Request().Header.Get(headerUserID))
	if err != nil {
		return badRequest(ctx, "Invalid or missing user identity")
	}

	query, err := queries.NewGetStudentOrdersQuery(actorRole(ctx), studentID)
	if err != nil {
		return badRequest(ctx, "Invalid role")
	}

	orders, err := s.getStudentOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetMenu handles GET /api/v1/menu - retrieves the full menu.
func (s *Server) GetMenu(ctx echo.Context) error {
	items, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]MenuItemResponse, len(items))
	for i, item := range items {
		response[i] = MenuItemResponse{
			ID:        item.ID.String(),
			Name:      item.Name,
			Price:     item.Price,
			Category:  item.Category,
			Available: item.Available,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddMenuItem handles POST /api/v1/menu - adds a dish to the menu.
func (s *Server) AddMenuItem(ctx echo.Context) error {
	var req AddMenuItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddMenuItemCommand(actorRole(ctx), req.Name, req.Price, req.Category)
	if err != nil {
		return badRequest(ctx, "Invalid menu item data: "+err.Error())
	}

	item, err := s.addMenuItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, MenuItemResponse{
		ID:        item.ID().String(),
		Name:      item.Name(),
		Price:     item.Price(),
		Category:  item.Category(),
		Available: item.Available(),
	})
}

// UpdateMenuItem handles PUT /api/v1/menu/:id - edits a dish.
func (s *Server) UpdateMenuItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid menu item id")
	}

	var req UpdateMenuItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateMenuItemCommand(actorRole(ctx), itemID, req.Name, req.Price, req.Category)
	if err != nil {
		return badRequest(ctx, "Invalid menu item data: "+err.Error())
	}

	item, err := s.updateMenuItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MenuItemResponse{
		ID:        item.ID().String(),
		Name:      item.Name(),
		Price:     item.Price(),
		Category:  item.Category(),
		Available: item.Available(),
	})
}

// RemoveMenuItem handles DELETE /api/v1/menu/:id - takes a dish off the menu.
func (s *Server) RemoveMenuItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid menu item id")
	}

	cmd, err := commands.NewRemoveMenuItemCommand(actorRole(ctx), itemID)
	if err != nil {
		return badRequest(ctx, "Invalid removal request: "+err.Error())
	}

	if err := s.removeMenuItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ToggleItemAvailability handles PATCH /api/v1/menu/:id/availability -
// flips a dish in or out of the orderable menu.
func (s *Server) ToggleItemAvailability(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid menu item id")
	}

	cmd, err := commands.NewToggleItemAvailabilityCommand(actorRole(ctx), itemID)
	if err != nil {
		return badRequest(ctx, "Invalid toggle request: "+err.Error())
	}

	if err := s.toggleItemAvailabilityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ServeWS handles GET /ws - upgrades the connection and hands it to the hub.
func (s *Server) ServeWS(ctx echo.Context) error {
	s.hub.ServeWS(ctx.Response(), ctx.Request())
	return nil
}

func actorRole(ctx echo.Context) kernel.Role {
	return kernel.Role(ctx.Request().Header.Get(headerUserRole))
}

// writeError maps domain errors onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, kernel.ErrForbidden):
		return jsonError(ctx, http.StatusForbidden, "Operation not permitted for this role")
	case errors.Is(err, errs.ErrObjectNotFound):
		return jsonError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, order.ErrInvalidTransition):
		return jsonError(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	default:
		return jsonError(ctx, http.StatusInternalServerError, "Internal error")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return jsonError(ctx, http.StatusBadRequest, message)
}

func jsonError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}

func toOrderResponse(placed *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(placed.Items()))
	for _, item := range placed.Items() {
		items = append(items, OrderItemResponse{
			MenuItemID: item.MenuItemID().String(),
			Quantity:   item.Quantity(),
		})
	}

	return OrderResponse{
		ID:        placed.ID().String(),
		OrderID:   placed.PublicID(),
		StudentID: placed.StudentID().String(),
		Status:    placed.Status().String(),
		HostelTag: placed.HostelTag(),
		CreatedAt: placed.CreatedAt(),
		Items:     items,
	}
}

func toOrderResponses(orders []queries.OrderResponse) []OrderResponse {
	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		items := make([]OrderItemResponse, len(o.Items))
		for j, item := range o.Items {
			items[j] = OrderItemResponse{
				MenuItemID: item.MenuItemID.String(),
				Quantity:   item.Quantity,
			}
		}

		response[i] = OrderResponse{
			ID:        o.ID.String(),
			OrderID:   o.PublicID,
			StudentID: o.StudentID.String(),
			Status:    o.Status,
			HostelTag: o.HostelTag,
			CreatedAt: o.CreatedAt,
			Items:     items,
		}
	}

	return response
}
