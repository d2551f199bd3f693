package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/burningbushdesign/storefront-api/internal/core/domain"
	"github.com/burningbushdesign/storefront-api/internal/core/ports"
)

// OrderHandler handles the admin order workflow.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING PROCESSING SHIPPED DELIVERED CANCELLED"`
	Notes  string `json:"notes"`
}

// List handles GET /admin/orders.
func (h *OrderHandler) List(c echo.Context) error {
	filter := ports.OrderFilter{
		Status: domain.OrderStatus(c.QueryParam("status")),
		Search: c.QueryParam("search"),
	}
	orders, pagination, err := h.service.ListOrders(c.Request().Context(), filter, pageFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse{Data: orders, Pagination: pagination})
}

// Get handles GET /admin/orders/:id.
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.service.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "order not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// UpdateStatus handles PATCH /admin/orders/:id/status. Transitions outside
// the order state machine are rejected 422.
//
// @Summary      Update order status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "Order id"
// @Param        body  body      updateOrderStatusRequest  true  "New status"
// @Success      200   {object}  domain.Order
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /admin/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	order, err := h.service.UpdateOrderStatus(c.Request().Context(), c.Param("id"), domain.OrderStatus(req.Status), req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "order not found"})
		case errors.Is(err, domain.ErrInvalidOrderTransition):
			return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, order)
}
