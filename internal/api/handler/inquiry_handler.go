package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/burningbushdesign/storefront-api/internal/core/domain"
	"github.com/burningbushdesign/storefront-api/internal/core/ports"
)

// InquiryHandler handles the admin inquiry workflow, including conversion
// into projects.
type InquiryHandler struct {
	service ports.InquiryService
}

func NewInquiryHandler(service ports.InquiryService) *InquiryHandler {
	return &InquiryHandler{service: service}
}

type updateInquiryRequest struct {
	Status          *string    `json:"status" validate:"omitempty,oneof=NEW CONTACTED QUOTED CONVERTED CLOSED"`
	Priority        *string    `json:"priority" validate:"omitempty,oneof=LOW NORMAL HIGH URGENT"`
	AssignedAdminID *string    `json:"assigned_admin_id"`
	FollowUpDate    *time.Time `json:"follow_up_date"`
}

type convertInquiryRequest struct {
	ProjectName string     `json:"project_name" validate:"required"`
	Description string     `json:"description"`
	ProjectType string     `json:"project_type"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=LOW NORMAL HIGH URGENT"`
	Budget      float64    `json:"budget"`
	DueDate     *time.Time `json:"due_date"`
}

// List handles GET /admin/inquiries.
func (h *InquiryHandler) List(c echo.Context) error {
	filter := ports.InquiryFilter{
		Status:      domain.InquiryStatus(c.QueryParam("status")),
		Priority:    domain.Priority(c.QueryParam("priority")),
		TeamStoreID: c.QueryParam("team_store"),
	}
	inquiries, pagination, err := h.service.ListInquiries(c.Request().Context(), filter, pageFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse{Data: inquiries, Pagination: pagination})
}

// Get handles GET /admin/inquiries/:id.
func (h *InquiryHandler) Get(c echo.Context) error {
	inquiry, err := h.service.GetInquiry(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrInquiryNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "inquiry not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, inquiry)
}

// Update handles PATCH /admin/inquiries/:id.
func (h *InquiryHandler) Update(c echo.Context) error {
	var req updateInquiryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	input := ports.UpdateInquiryInput{
		AssignedAdminID: req.AssignedAdminID,
		FollowUpDate:    req.FollowUpDate,
	}
	if req.Status != nil {
		s := domain.InquiryStatus(*req.Status)
		input.Status = &s
	}
	if req.Priority != nil {
		p := domain.Priority(*req.Priority)
		input.Priority = &p
	}

	inquiry, err := h.service.UpdateInquiry(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		if errors.Is(err, domain.ErrInquiryNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "inquiry not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, inquiry)
}

// Convert handles POST /admin/inquiries/:id/convert, turning an inquiry into
// a project. Converting twice is rejected 409.
//
// @Summary      Convert an inquiry into a project
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Inquiry id"
// @Param        body  body      convertInquiryRequest  true  "Project details"
// @Success      201   {object}  domain.Project
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /admin/inquiries/{id}/convert [post]
func (h *InquiryHandler) Convert(c echo.Context) error {
	var req convertInquiryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	project, err := h.service.ConvertToProject(c.Request().Context(), c.Param("id"), ports.ConvertInquiryInput{
		ProjectName: req.ProjectName,
		Description: req.Description,
		ProjectType: req.ProjectType,
		Priority:    domain.Priority(req.Priority),
		Budget:      req.Budget,
		DueDate:     req.DueDate,
		CreatedByID: actorID(c),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInquiryNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "inquiry not found"})
		case errors.Is(err, domain.ErrInquiryAlreadyConverted):
			return c.JSON(http.StatusConflict, errorResponse{Error: "inquiry already converted"})
		}
		return err
	}
	return c.JSON(http.StatusCreated, project)
}
