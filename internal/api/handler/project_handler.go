package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/burningbushdesign/storefront-api/internal/core/domain"
	"github.com/burningbushdesign/storefront-api/internal/core/ports"
)

// ProjectHandler handles the admin project workflow.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

type updateProjectRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS REVIEW COMPLETED CANCELLED"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=LOW NORMAL HIGH URGENT"`
	Budget      *float64   `json:"budget"`
	DueDate     *time.Time `json:"due_date"`
}

// List handles GET /admin/projects.
func (h *ProjectHandler) List(c echo.Context) error {
	filter := ports.ProjectFilter{
		Status:   domain.ProjectStatus(c.QueryParam("status")),
		Priority: domain.Priority(c.QueryParam("priority")),
		Search:   c.QueryParam("search"),
	}
	projects, pagination, err := h.service.ListProjects(c.Request().Context(), filter, pageFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse{Data: projects, Pagination: pagination})
}

// Get handles GET /admin/projects/:id.
func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.service.GetProject(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "project not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Update handles PATCH /admin/projects/:id.
func (h *ProjectHandler) Update(c echo.Context) error {
	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	input := ports.UpdateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		DueDate:     req.DueDate,
	}
	if req.Status != nil {
		s := domain.ProjectStatus(*req.Status)
		input.Status = &s
	}
	if req.Priority != nil {
		p := domain.Priority(*req.Priority)
		input.Priority = &p
	}

	project, err := h.service.UpdateProject(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "project not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, project)
}
