package ports

import (
	"context"

	"github.com/burningbushdesign/storefront-api/internal/core/domain"
)

// TeamStoreFilter narrows team-store listings.
type TeamStoreFilter struct {
	Status domain.TeamStoreStatus
	Search string
}

// TeamStoreRepository defines team-store persistence.
type TeamStoreRepository interface {
	Create(ctx context.Context, s *domain.TeamStore) (*domain.TeamStore, error)
	FindByID(ctx context.Context, id string) (*domain.TeamStore, error)
	FindBySlug(ctx context.Context, slug string) (*domain.TeamStore, error)
	List(ctx context.Context, filter TeamStoreFilter, page Page) ([]*domain.TeamStore, int64, error)
	Update(ctx context.Context, s *domain.TeamStore) error
}

// CreateTeamStoreInput carries the fields for a new team store.
type CreateTeamStoreInput struct {
	Name        string
	Slug        string
	Description string
	Logo        string
	Banner      string
	Website     string
	Email       string
	Phone       string
	Address     string
	Status      domain.TeamStoreStatus
	IsActive    bool
	CreatedByID string
}

// UpdateTeamStoreInput carries a partial admin update of a team store.
type UpdateTeamStoreInput struct {
	Name        *string
	Description *string
	Logo        *string
	Banner      *string
	Website     *string
	Email       *string
	Phone       *string
	Address     *string
	Status      *domain.TeamStoreStatus
	IsActive    *bool
}

// TeamStoreService exposes team-store microsite management.
type TeamStoreService interface {
	ListTeamStores(ctx context.Context, filter TeamStoreFilter, page Page) ([]*domain.TeamStore, Pagination, error)
	GetTeamStore(ctx context.Context, id string) (*domain.TeamStore, error)
	GetTeamStoreBySlug(ctx context.Context, slug string) (*domain.TeamStore, error)
	CreateTeamStore(ctx context.Context, input CreateTeamStoreInput) (*domain.TeamStore, error)
	UpdateTeamStore(ctx context.Context, id string, input UpdateTeamStoreInput) (*domain.TeamStore, error)
}
