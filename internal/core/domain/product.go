package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")
var ErrDuplicateSlug = errors.New("slug already exists")
var ErrCategoryNotFound = errors.New("category not found")

// Category groups products on the storefront (hats, shirts, gifts, ...).
type Category struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Slug        string    `json:"slug" bson:"slug"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Icon        string    `json:"icon,omitempty" bson:"icon,omitempty"`
	SortOrder   int       `json:"sort_order" bson:"sort_order"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`

	ProductCount int64 `json:"product_count" bson:"-"`
}

// ProductImage is a single catalogue image, ordered by SortOrder.
type ProductImage struct {
	URL       string `json:"url" bson:"url"`
	AltText   string `json:"alt_text,omitempty" bson:"alt_text,omitempty"`
	SortOrder int    `json:"sort_order" bson:"sort_order"`
}

// ProductVariant is a purchasable variation (colour, size) of a product.
type ProductVariant struct {
	Name      string  `json:"name" bson:"name"`
	Color     string  `json:"color,omitempty" bson:"color,omitempty"`
	Size      string  `json:"size,omitempty" bson:"size,omitempty"`
	PriceDiff float64 `json:"price_diff" bson:"price_diff"`
	SortOrder int     `json:"sort_order" bson:"sort_order"`
}

// Product is the catalogue aggregate root.
type Product struct {
	ID            string           `json:"id" bson:"_id,omitempty"`
	Name          string           `json:"name" bson:"name"`
	Slug          string           `json:"slug" bson:"slug"`
	Description   string           `json:"description" bson:"description"`
	Price         float64          `json:"price" bson:"price"`
	OriginalPrice float64          `json:"original_price,omitempty" bson:"original_price,omitempty"`
	SKU           string           `json:"sku,omitempty" bson:"sku,omitempty"`
	CategoryID    string           `json:"category_id" bson:"category_id"`
	Category      *Category        `json:"category,omitempty" bson:"-"`
	Images        []ProductImage   `json:"images" bson:"images,omitempty"`
	Variants      []ProductVariant `json:"variants" bson:"variants,omitempty"`
	Features      []string         `json:"features" bson:"features,omitempty"`
	Materials     []string         `json:"materials" bson:"materials,omitempty"`
	IsActive      bool             `json:"is_active" bson:"is_active"`
	IsFeatured    bool             `json:"is_featured" bson:"is_featured"`
	InStock       bool             `json:"in_stock" bson:"in_stock"`
	StockQuantity int              `json:"stock_quantity" bson:"stock_quantity"`
	MinOrderQty   int              `json:"min_order_qty" bson:"min_order_qty"`
	CreatedByID   string           `json:"created_by_id" bson:"created_by_id"`
	CreatedAt     time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at" bson:"updated_at"`
}
