package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/burningbushdesign/storefront-api/internal/core/domain"
	"github.com/burningbushdesign/storefront-api/internal/core/ports"
)

// ContactHandler handles public contact-form and team-store inquiry
// submissions. These routes are unauthenticated.
type ContactHandler struct {
	inquiries  ports.InquiryService
	teamStores ports.TeamStoreService
}

func NewContactHandler(inquiries ports.InquiryService, teamStores ports.TeamStoreService) *ContactHandler {
	return &ContactHandler{inquiries: inquiries, teamStores: teamStores}
}

type contactRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone"`
	ProjectType string `json:"project_type"`
	Message     string `json:"message" validate:"required"`
	Timeline    string `json:"timeline"`
	Budget      string `json:"budget"`
}

// Submit handles POST /contact.
//
// @Summary      Submit a contact inquiry
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Inquiry details"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	_, err := h.inquiries.SubmitContactForm(c.Request().Context(), ports.ContactSubmissionInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ProjectType: req.ProjectType,
		Message:     req.Message,
		Timeline:    req.Timeline,
		Budget:      req.Budget,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateInquiry) {
			return c.JSON(http.StatusTooManyRequests, errorResponse{Error: "this message was already received"})
		}
		return err
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "thanks, we will be in touch"})
}

// SubmitForTeamStore handles POST /team-stores/:slug/inquiries. The inquiry
// is tagged with the store so the back office can route it.
func (h *ContactHandler) SubmitForTeamStore(c echo.Context) error {
	store, err := h.teamStores.GetTeamStoreBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrTeamStoreNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "team store not found"})
		}
		return err
	}
	if !store.IsActive {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "team store not found"})
	}

	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	_, err = h.inquiries.SubmitContactForm(c.Request().Context(), ports.ContactSubmissionInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ProjectType: req.ProjectType,
		Message:     req.Message,
		Timeline:    req.Timeline,
		Budget:      req.Budget,
		TeamStoreID: store.ID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateInquiry) {
			return c.JSON(http.StatusTooManyRequests, errorResponse{Error: "this message was already received"})
		}
		return err
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "thanks, we will be in touch"})
}

// GetTeamStore handles GET /team-stores/:slug, the public microsite lookup.
func (h *ContactHandler) GetTeamStore(c echo.Context) error {
	store, err := h.teamStores.GetTeamStoreBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrTeamStoreNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "team store not found"})
		}
		return err
	}
	if !store.IsActive {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "team store not found"})
	}
	return c.JSON(http.StatusOK, store)
}
