package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/burningbushdesign/storefront-api/internal/core/domain"
	"github.com/burningbushdesign/storefront-api/internal/core/ports"
)

// TeamStoreService implements team-store microsite management.
type TeamStoreService struct {
	stores ports.TeamStoreRepository
	logger zerolog.Logger
}

func NewTeamStoreService(stores ports.TeamStoreRepository, logger zerolog.Logger) *TeamStoreService {
	return &TeamStoreService{stores: stores, logger: logger}
}

func (s *TeamStoreService) ListTeamStores(ctx context.Context, filter ports.TeamStoreFilter, page ports.Page) ([]*domain.TeamStore, ports.Pagination, error) {
	page = page.Normalize()
	stores, total, err := s.stores.List(ctx, filter, page)
	if err != nil {
		return nil, ports.Pagination{}, err
	}
	return stores, ports.NewPagination(page, total), nil
}

func (s *TeamStoreService) GetTeamStore(ctx context.Context, id string) (*domain.TeamStore, error) {
	return s.stores.FindByID(ctx, id)
}

func (s *TeamStoreService) GetTeamStoreBySlug(ctx context.Context, slug string) (*domain.TeamStore, error) {
	return s.stores.FindBySlug(ctx, slug)
}

// CreateTeamStore enforces slug uniqueness before inserting.
func (s *TeamStoreService) CreateTeamStore(ctx context.Context, input ports.CreateTeamStoreInput) (*domain.TeamStore, error) {
	slug := input.Slug
	if slug == "" {
		slug = slugify(input.Name)
	}

	if _, err := s.stores.FindBySlug(ctx, slug); err == nil {
		return nil, domain.ErrDuplicateSlug
	} else if !errors.Is(err, domain.ErrTeamStoreNotFound) {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.TeamStorePending
	}

	now := time.Now().UTC()
	store := &domain.TeamStore{
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
		Logo:        input.Logo,
		Banner:      input.Banner,
		Website:     input.Website,
		Email:       input.Email,
		Phone:       input.Phone,
		Address:     input.Address,
		Status:      status,
		IsActive:    input.IsActive,
		CreatedByID: input.CreatedByID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.stores.Create(ctx, store)
	if err != nil {
		s.logger.Error().Err(err).Str("slug", slug).Msg("failed to create team store")
		return nil, err
	}

	s.logger.Info().Str("team_store_id", created.ID).Str("slug", created.Slug).Msg("team store created")
	return created, nil
}

func (s *TeamStoreService) UpdateTeamStore(ctx context.Context, id string, input ports.UpdateTeamStoreInput) (*domain.TeamStore, error) {
	store, err := s.stores.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		store.Name = *input.Name
	}
	if input.Description != nil {
		store.Description = *input.Description
	}
	if input.Logo != nil {
		store.Logo = *input.Logo
	}
	if input.Banner != nil {
		store.Banner = *input.Banner
	}
	if input.Website != nil {
		store.Website = *input.Website
	}
	if input.Email != nil {
		store.Email = *input.Email
	}
	if input.Phone != nil {
		store.Phone = *input.Phone
	}
	if input.Address != nil {
		store.Address = *input.Address
	}
	if input.Status != nil {
		store.Status = *input.Status
	}
	if input.IsActive != nil {
		store.IsActive = *input.IsActive
	}
	store.UpdatedAt = time.Now().UTC()

	if err := s.stores.Update(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}
