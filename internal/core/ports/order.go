package ports

import (
	"context"

	"github.com/burningbushdesign/storefront-api/internal/core/domain"
)

// OrderFilter narrows order listings.
type OrderFilter struct {
	Status domain.OrderStatus
	Search string
}

// OrderRepository defines order persistence.
type OrderRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, filter OrderFilter, page Page) ([]*domain.Order, int64, error)
	Update(ctx context.Context, o *domain.Order) error
}

// OrderService exposes the admin order workflow.
type OrderService interface {
	ListOrders(ctx context.Context, filter OrderFilter, page Page) ([]*domain.Order, Pagination, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)

	// UpdateOrderStatus validates the transition against the order state
	// machine and appends a status-history entry.
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus, notes string) (*domain.Order, error)
}
