package ports

import (
	"context"

	"github.com/burningbushdesign/storefront-api/internal/core/domain"
)

// ProductFilter narrows product listings.
type ProductFilter struct {
	CategoryID   string
	Search       string
	FeaturedOnly bool
	// ActiveOnly hides unpublished products; set on all storefront reads.
	ActiveOnly bool
}

// ProductRepository defines catalogue persistence.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Product, error)
	List(ctx context.Context, filter ProductFilter, page Page) ([]*domain.Product, int64, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
}

// CategoryRepository defines category persistence.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
}

// CreateProductInput carries the fields an admin may set when creating a
// product. Slug is derived from Name by the service.
type CreateProductInput struct {
	Name          string
	Description   string
	Price         float64
	OriginalPrice float64
	SKU           string
	CategoryID    string
	Images        []domain.ProductImage
	Variants      []domain.ProductVariant
	Features      []string
	Materials     []string
	IsActive      bool
	IsFeatured    bool
	InStock       bool
	StockQuantity int
	MinOrderQty   int
	CreatedByID   string
}

// UpdateProductInput carries a partial product update; nil fields are left
// untouched.
type UpdateProductInput struct {
	Name          *string
	Description   *string
	Price         *float64
	OriginalPrice *float64
	SKU           *string
	CategoryID    *string
	Images        []domain.ProductImage
	Variants      []domain.ProductVariant
	Features      []string
	Materials     []string
	IsActive      *bool
	IsFeatured    *bool
	InStock       *bool
	StockQuantity *int
	MinOrderQty   *int
}

// CreateCategoryInput carries the fields for a new category.
type CreateCategoryInput struct {
	Name        string
	Description string
	Icon        string
	SortOrder   int
}

// CatalogService exposes product and category operations for both the public
// storefront and the admin panel.
type CatalogService interface {
	ListProducts(ctx context.Context, filter ProductFilter, page Page) ([]*domain.Product, Pagination, error)
	GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]*domain.Category, error)
	CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error)
}
