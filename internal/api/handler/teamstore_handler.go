package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/burningbushdesign/storefront-api/internal/core/domain"
	"github.com/burningbushdesign/storefront-api/internal/core/ports"
)

// TeamStoreHandler handles admin team-store management. Public microsite
// reads live on ContactHandler.
type TeamStoreHandler struct {
	service ports.TeamStoreService
}

func NewTeamStoreHandler(service ports.TeamStoreService) *TeamStoreHandler {
	return &TeamStoreHandler{service: service}
}

type createTeamStoreRequest struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Banner      string `json:"banner"`
	Website     string `json:"website"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Status      string `json:"status" validate:"omitempty,oneof=PENDING ACTIVE INACTIVE"`
	IsActive    bool   `json:"is_active"`
}

type updateTeamStoreRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Logo        *string `json:"logo"`
	Banner      *string `json:"banner"`
	Website     *string `json:"website"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Status      *string `json:"status" validate:"omitempty,oneof=PENDING ACTIVE INACTIVE"`
	IsActive    *bool   `json:"is_active"`
}

// List handles GET /admin/team-stores.
func (h *TeamStoreHandler) List(c echo.Context) error {
	filter := ports.TeamStoreFilter{
		Status: domain.TeamStoreStatus(c.QueryParam("status")),
		Search: c.QueryParam("search"),
	}
	stores, pagination, err := h.service.ListTeamStores(c.Request().Context(), filter, pageFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse{Data: stores, Pagination: pagination})
}

// Get handles GET /admin/team-stores/:id.
func (h *TeamStoreHandler) Get(c echo.Context) error {
	store, err := h.service.GetTeamStore(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrTeamStoreNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "team store not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, store)
}

// Create handles POST /admin/team-stores.
func (h *TeamStoreHandler) Create(c echo.Context) error {
	var req createTeamStoreRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	store, err := h.service.CreateTeamStore(c.Request().Context(), ports.CreateTeamStoreInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Logo:        req.Logo,
		Banner:      req.Banner,
		Website:     req.Website,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Status:      domain.TeamStoreStatus(req.Status),
		IsActive:    req.IsActive,
		CreatedByID: actorID(c),
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) {
			return c.JSON(http.StatusConflict, errorResponse{Error: "a team store with this slug already exists"})
		}
		return err
	}
	return c.JSON(http.StatusCreated, store)
}

// Update handles PATCH /admin/team-stores/:id.
func (h *TeamStoreHandler) Update(c echo.Context) error {
	var req updateTeamStoreRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	input := ports.UpdateTeamStoreInput{
		Name:        req.Name,
		Description: req.Description,
		Logo:        req.Logo,
		Banner:      req.Banner,
		Website:     req.Website,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		IsActive:    req.IsActive,
	}
	if req.Status != nil {
		s := domain.TeamStoreStatus(*req.Status)
		input.Status = &s
	}

	store, err := h.service.UpdateTeamStore(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		if errors.Is(err, domain.ErrTeamStoreNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "team store not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, store)
}
