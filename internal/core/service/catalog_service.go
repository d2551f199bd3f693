package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/burningbushdesign/storefront-api/internal/core/domain"
	"github.com/burningbushdesign/storefront-api/internal/core/ports"
)

// CatalogService implements product and category operations for the public
// storefront and the admin panel.
type CatalogService struct {
	products   ports.ProductRepository
	categories ports.CategoryRepository
	logger     zerolog.Logger
}

func NewCatalogService(products ports.ProductRepository, categories ports.CategoryRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{products: products, categories: categories, logger: logger}
}

func (s *CatalogService) ListProducts(ctx context.Context, filter ports.ProductFilter, page ports.Page) ([]*domain.Product, ports.Pagination, error) {
	page = page.Normalize()
	products, total, err := s.products.List(ctx, filter, page)
	if err != nil {
		return nil, ports.Pagination{}, err
	}
	return products, ports.NewPagination(page, total), nil
}

func (s *CatalogService) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return s.products.FindBySlug(ctx, slug)
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

// CreateProduct validates the category, derives the slug from the name, and
// stamps the creating admin.
func (s *CatalogService) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if _, err := s.categories.FindByID(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Name:          input.Name,
		Slug:          slugify(input.Name),
		Description:   input.Description,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		SKU:           input.SKU,
		CategoryID:    input.CategoryID,
		Images:        input.Images,
		Variants:      input.Variants,
		Features:      input.Features,
		Materials:     input.Materials,
		IsActive:      input.IsActive,
		IsFeatured:    input.IsFeatured,
		InStock:       input.InStock,
		StockQuantity: input.StockQuantity,
		MinOrderQty:   input.MinOrderQty,
		CreatedByID:   input.CreatedByID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.products.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("slug", product.Slug).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("slug", created.Slug).Msg("product created")
	return created, nil
}

// UpdateProduct applies a partial update. A renamed product gets a fresh
// slug derived from the new name.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
		product.Slug = slugify(*input.Name)
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.OriginalPrice != nil {
		product.OriginalPrice = *input.OriginalPrice
	}
	if input.SKU != nil {
		product.SKU = *input.SKU
	}
	if input.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *input.CategoryID
	}
	if input.Images != nil {
		product.Images = input.Images
	}
	if input.Variants != nil {
		product.Variants = input.Variants
	}
	if input.Features != nil {
		product.Features = input.Features
	}
	if input.Materials != nil {
		product.Materials = input.Materials
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.IsFeatured != nil {
		product.IsFeatured = *input.IsFeatured
	}
	if input.InStock != nil {
		product.InStock = *input.InStock
	}
	if input.StockQuantity != nil {
		product.StockQuantity = *input.StockQuantity
	}
	if input.MinOrderQty != nil {
		product.MinOrderQty = *input.MinOrderQty
	}
	product.UpdatedAt = time.Now().UTC()

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrProductNotFound) {
			s.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		}
		return err
	}
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *CatalogService) CreateCategory(ctx context.Context, input ports.CreateCategoryInput) (*domain.Category, error) {
	category := &domain.Category{
		Name:        input.Name,
		Slug:        slugify(input.Name),
		Description: input.Description,
		Icon:        input.Icon,
		SortOrder:   input.SortOrder,
		CreatedAt:   time.Now().UTC(),
	}
	return s.categories.Create(ctx, category)
}
