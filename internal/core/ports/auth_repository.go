package ports

import (
	"context"

	"github.com/burningbushdesign/storefront-api/internal/core/domain"
)

// AdminRepository defines the persistence interface for admin accounts.
// Reads are all the auth core ever needs; Create exists for seeding.
type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
	FindByID(ctx context.Context, id string) (*domain.AdminUser, error)
	Create(ctx context.Context, user *domain.AdminUser) (*domain.AdminUser, error)
}
