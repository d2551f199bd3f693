package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/burningbushdesign/storefront-api/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// listResponse is the envelope for every paginated collection.
type listResponse struct {
	Data       any              `json:"data"`
	Pagination ports.Pagination `json:"pagination"`
}

// pageFromQuery reads ?page= and ?limit= with the usual defaults.
func pageFromQuery(c echo.Context) ports.Page {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return ports.Page{Page: page, Limit: limit}
}
