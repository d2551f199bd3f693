package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/burningbushdesign/storefront-api/internal/core/domain"
	"github.com/burningbushdesign/storefront-api/internal/core/ports"
)

// CatalogHandler handles product and category requests for both the public
// storefront and the admin panel.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

type productImageRequest struct {
	URL       string `json:"url" validate:"required"`
	AltText   string `json:"alt_text"`
	SortOrder int    `json:"sort_order"`
}

type productVariantRequest struct {
	Name      string  `json:"name" validate:"required"`
	Color     string  `json:"color"`
	Size      string  `json:"size"`
	PriceDiff float64 `json:"price_diff"`
	SortOrder int     `json:"sort_order"`
}

type createProductRequest struct {
	Name          string                  `json:"name" validate:"required"`
	Description   string                  `json:"description" validate:"required"`
	Price         float64                 `json:"price" validate:"required,gt=0"`
	OriginalPrice float64                 `json:"original_price"`
	SKU           string                  `json:"sku"`
	CategoryID    string                  `json:"category_id" validate:"required"`
	Images        []productImageRequest   `json:"images"`
	Variants      []productVariantRequest `json:"variants"`
	Features      []string                `json:"features"`
	Materials     []string                `json:"materials"`
	IsActive      bool                    `json:"is_active"`
	IsFeatured    bool                    `json:"is_featured"`
	InStock       bool                    `json:"in_stock"`
	StockQuantity int                     `json:"stock_quantity"`
	MinOrderQty   int                     `json:"min_order_qty"`
}

type updateProductRequest struct {
	Name          *string                 `json:"name"`
	Description   *string                 `json:"description"`
	Price         *float64                `json:"price"`
	OriginalPrice *float64                `json:"original_price"`
	SKU           *string                 `json:"sku"`
	CategoryID    *string                 `json:"category_id"`
	Images        []productImageRequest   `json:"images"`
	Variants      []productVariantRequest `json:"variants"`
	Features      []string                `json:"features"`
	Materials     []string                `json:"materials"`
	IsActive      *bool                   `json:"is_active"`
	IsFeatured    *bool                   `json:"is_featured"`
	InStock       *bool                   `json:"in_stock"`
	StockQuantity *int                    `json:"stock_quantity"`
	MinOrderQty   *int                    `json:"min_order_qty"`
}

type createCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	SortOrder   int    `json:"sort_order"`
}

func mapImages(in []productImageRequest) []domain.ProductImage {
	if in == nil {
		return nil
	}
	out := make([]domain.ProductImage, len(in))
	for i, img := range in {
		out[i] = domain.ProductImage{URL: img.URL, AltText: img.AltText, SortOrder: img.SortOrder}
	}
	return out
}

func mapVariants(in []productVariantRequest) []domain.ProductVariant {
	if in == nil {
		return nil
	}
	out := make([]domain.ProductVariant, len(in))
	for i, v := range in {
		out[i] = domain.ProductVariant{Name: v.Name, Color: v.Color, Size: v.Size, PriceDiff: v.PriceDiff, SortOrder: v.SortOrder}
	}
	return out
}

// ListProducts handles GET /products for the storefront. Only active
// products are ever visible here.
//
// @Summary      List storefront products
// @Tags         catalog
// @Produce      json
// @Param        category  query  string  false  "Filter by category id"
// @Param        search    query  string  false  "Free-text search over name and description"
// @Param        featured  query  bool    false  "Featured products only"
// @Success      200  {object}  listResponse
// @Router       /products [get]
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	filter := ports.ProductFilter{
		CategoryID:   c.QueryParam("category"),
		Search:       c.QueryParam("search"),
		FeaturedOnly: c.QueryParam("featured") == "true",
		ActiveOnly:   true,
	}
	products, pagination, err := h.service.ListProducts(c.Request().Context(), filter, pageFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse{Data: products, Pagination: pagination})
}

// GetProductBySlug handles GET /products/:slug for the storefront.
func (h *CatalogHandler) GetProductBySlug(c echo.Context) error {
	product, err := h.service.GetProductBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "product not found"})
		}
		return err
	}
	if !product.IsActive {
		// Unpublished products do not exist as far as the storefront knows.
		return c.JSON(http.StatusNotFound, errorResponse{Error: "product not found"})
	}
	return c.JSON(http.StatusOK, product)
}

// ListCategories handles GET /categories.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.service.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"data": categories})
}

// AdminListProducts handles GET /admin/products, including unpublished items.
func (h *CatalogHandler) AdminListProducts(c echo.Context) error {
	filter := ports.ProductFilter{
		CategoryID:   c.QueryParam("category"),
		Search:       c.QueryParam("search"),
		FeaturedOnly: c.QueryParam("featured") == "true",
	}
	products, pagination, err := h.service.ListProducts(c.Request().Context(), filter, pageFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse{Data: products, Pagination: pagination})
}

// GetProduct handles GET /admin/products/:id.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.service.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "product not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /admin/products.
//
// @Summary      Create a product
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /admin/products [post]
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	product, err := h.service.CreateProduct(c.Request().Context(), ports.CreateProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		SKU:           req.SKU,
		CategoryID:    req.CategoryID,
		Images:        mapImages(req.Images),
		Variants:      mapVariants(req.Variants),
		Features:      req.Features,
		Materials:     req.Materials,
		IsActive:      req.IsActive,
		IsFeatured:    req.IsFeatured,
		InStock:       req.InStock,
		StockQuantity: req.StockQuantity,
		MinOrderQty:   req.MinOrderQty,
		CreatedByID:   actorID(c),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateSlug):
			return c.JSON(http.StatusConflict, errorResponse{Error: "a product with this name already exists"})
		case errors.Is(err, domain.ErrCategoryNotFound):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "category not found"})
		}
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /admin/products/:id. Absent fields are left
// untouched.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	product, err := h.service.UpdateProduct(c.Request().Context(), c.Param("id"), ports.UpdateProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		SKU:           req.SKU,
		CategoryID:    req.CategoryID,
		Images:        mapImages(req.Images),
		Variants:      mapVariants(req.Variants),
		Features:      req.Features,
		Materials:     req.Materials,
		IsActive:      req.IsActive,
		IsFeatured:    req.IsFeatured,
		InStock:       req.InStock,
		StockQuantity: req.StockQuantity,
		MinOrderQty:   req.MinOrderQty,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "product not found"})
		case errors.Is(err, domain.ErrDuplicateSlug):
			return c.JSON(http.StatusConflict, errorResponse{Error: "a product with this name already exists"})
		}
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /admin/products/:id.
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	if err := h.service.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "product not found"})
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateCategory handles POST /admin/categories.
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	category, err := h.service.CreateCategory(c.Request().Context(), ports.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) {
			return c.JSON(http.StatusConflict, errorResponse{Error: "a category with this name already exists"})
		}
		return err
	}
	return c.JSON(http.StatusCreated, category)
}
