package service

import (
	"context"
	"time"

	"github.com/burningbushdesign/storefront-api/internal/core/domain"
	"github.com/burningbushdesign/storefront-api/internal/core/ports"
)

// ProjectService implements the admin project workflow.
type ProjectService struct {
	projects ports.ProjectRepository
}

func NewProjectService(projects ports.ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

func (s *ProjectService) ListProjects(ctx context.Context, filter ports.ProjectFilter, page ports.Page) ([]*domain.Project, ports.Pagination, error) {
	page = page.Normalize()
	projects, total, err := s.projects.List(ctx, filter, page)
	if err != nil {
		return nil, ports.Pagination{}, err
	}
	return projects, ports.NewPagination(page, total), nil
}

func (s *ProjectService) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.FindByID(ctx, id)
}

func (s *ProjectService) UpdateProject(ctx context.Context, id string, input ports.UpdateProjectInput) (*domain.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Status != nil {
		project.Status = *input.Status
	}
	if input.Priority != nil {
		project.Priority = *input.Priority
	}
	if input.Budget != nil {
		project.Budget = *input.Budget
	}
	if input.DueDate != nil {
		project.DueDate = input.DueDate
	}
	project.UpdatedAt = time.Now().UTC()

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}
