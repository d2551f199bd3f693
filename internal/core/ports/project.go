package ports

import (
	"context"
	"time"

	"github.com/burningbushdesign/storefront-api/internal/core/domain"
)

// ProjectFilter narrows project listings.
type ProjectFilter struct {
	Status   domain.ProjectStatus
	Priority domain.Priority
	Search   string
}

// ProjectRepository defines project persistence.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, filter ProjectFilter, page Page) ([]*domain.Project, int64, error)
	Update(ctx context.Context, p *domain.Project) error
}

// UpdateProjectInput carries a partial admin update of a project.
type UpdateProjectInput struct {
	Title       *string
	Description *string
	Status      *domain.ProjectStatus
	Priority    *domain.Priority
	Budget      *float64
	DueDate     *time.Time
}

// ProjectService exposes the admin project workflow.
type ProjectService interface {
	ListProjects(ctx context.Context, filter ProjectFilter, page Page) ([]*domain.Project, Pagination, error)
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	UpdateProject(ctx context.Context, id string, input UpdateProjectInput) (*domain.Project, error)
}
