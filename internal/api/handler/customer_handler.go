package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/burningbushdesign/storefront-api/internal/core/domain"
	"github.com/burningbushdesign/storefront-api/internal/core/ports"
)

// CustomerHandler handles admin customer listings.
type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// List handles GET /admin/customers.
func (h *CustomerHandler) List(c echo.Context) error {
	filter := ports.CustomerFilter{
		Search:    c.QueryParam("search"),
		SortBy:    c.QueryParam("sort_by"),
		SortOrder: c.QueryParam("sort_order"),
	}
	customers, pagination, err := h.service.ListCustomers(c.Request().Context(), filter, pageFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse{Data: customers, Pagination: pagination})
}

// Get handles GET /admin/customers/:id.
func (h *CustomerHandler) Get(c echo.Context) error {
	customer, err := h.service.GetCustomer(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "customer not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, customer)
}
