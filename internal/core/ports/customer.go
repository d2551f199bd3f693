package ports

import (
	"context"

	"github.com/burningbushdesign/storefront-api/internal/core/domain"
)

// CustomerFilter narrows customer listings.
type CustomerFilter struct {
	Search    string
	SortBy    string // created_at, email, first_name, last_name
	SortOrder string // asc, desc
}

// CustomerRepository defines customer persistence. FindOrCreateByEmail backs
// the public contact form, which upserts the customer before recording the
// inquiry.
type CustomerRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	FindOrCreateByEmail(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	List(ctx context.Context, filter CustomerFilter, page Page) ([]*domain.Customer, int64, error)
}

// CustomerService exposes admin customer listings.
type CustomerService interface {
	ListCustomers(ctx context.Context, filter CustomerFilter, page Page) ([]*domain.Customer, Pagination, error)
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
}
