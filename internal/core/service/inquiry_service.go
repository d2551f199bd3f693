package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/burningbushdesign/storefront-api/internal/api/metrics"
	"github.com/burningbushdesign/storefront-api/internal/core/domain"
	"github.com/burningbushdesign/storefront-api/internal/core/ports"
)

// InquiryService implements public contact intake and the admin inquiry
// workflow, including conversion into projects.
type InquiryService struct {
	inquiries ports.InquiryRepository
	customers ports.CustomerRepository
	dedup     ports.InquiryDeduper
	logger    zerolog.Logger
}

func NewInquiryService(inquiries ports.InquiryRepository, customers ports.CustomerRepository, dedup ports.InquiryDeduper, logger zerolog.Logger) *InquiryService {
	return &InquiryService{inquiries: inquiries, customers: customers, dedup: dedup, logger: logger}
}

// SubmitContactForm upserts the customer by email and records a NEW inquiry.
// A repeat of the same email+message within the dedup window is dropped with
// domain.ErrDuplicateInquiry. Dedup store failures are logged and ignored:
// losing a dedup check must never lose an inquiry.
func (s *InquiryService) SubmitContactForm(ctx context.Context, input ports.ContactSubmissionInput) (*domain.ContactInquiry, error) {
	email := strings.ToLower(input.Email)

	if s.dedup != nil {
		dup, err := s.dedup.IsDuplicate(ctx, email, input.Message)
		if err != nil {
			s.logger.Warn().Err(err).Msg("inquiry dedup check failed, accepting submission")
		} else if dup {
			metrics.InquiryDedupTotal.WithLabelValues("hit").Inc()
			return nil, domain.ErrDuplicateInquiry
		} else {
			metrics.InquiryDedupTotal.WithLabelValues("miss").Inc()
		}
	}

	first, last := splitName(input.Name)
	customer, err := s.customers.FindOrCreateByEmail(ctx, &domain.Customer{
		Email:     email,
		FirstName: first,
		LastName:  last,
		Phone:     input.Phone,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	inquiry := &domain.ContactInquiry{
		CustomerID:  customer.ID,
		Name:        input.Name,
		Email:       email,
		Phone:       input.Phone,
		ProjectType: input.ProjectType,
		Message:     input.Message,
		Timeline:    input.Timeline,
		Budget:      input.Budget,
		Status:      domain.InquiryNew,
		Priority:    domain.PriorityNormal,
		TeamStoreID: input.TeamStoreID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.inquiries.Create(ctx, inquiry)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to create inquiry")
		return nil, err
	}

	if s.dedup != nil {
		if err := s.dedup.Mark(ctx, email, input.Message); err != nil {
			s.logger.Warn().Err(err).Msg("failed to mark inquiry for dedup")
		}
	}

	metrics.InquiriesReceivedTotal.WithLabelValues(sourceLabel(input.TeamStoreID)).Inc()
	s.logger.Info().Str("inquiry_id", created.ID).Str("customer_id", customer.ID).Msg("inquiry received")
	return created, nil
}

func (s *InquiryService) ListInquiries(ctx context.Context, filter ports.InquiryFilter, page ports.Page) ([]*domain.ContactInquiry, ports.Pagination, error) {
	page = page.Normalize()
	inquiries, total, err := s.inquiries.List(ctx, filter, page)
	if err != nil {
		return nil, ports.Pagination{}, err
	}
	return inquiries, ports.NewPagination(page, total), nil
}

func (s *InquiryService) GetInquiry(ctx context.Context, id string) (*domain.ContactInquiry, error) {
	return s.inquiries.FindByID(ctx, id)
}

func (s *InquiryService) UpdateInquiry(ctx context.Context, id string, input ports.UpdateInquiryInput) (*domain.ContactInquiry, error) {
	inquiry, err := s.inquiries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		inquiry.Status = *input.Status
	}
	if input.Priority != nil {
		inquiry.Priority = *input.Priority
	}
	if input.AssignedAdminID != nil {
		inquiry.AssignedAdminID = *input.AssignedAdminID
	}
	if input.FollowUpDate != nil {
		inquiry.FollowUpDate = input.FollowUpDate
	}
	inquiry.UpdatedAt = time.Now().UTC()

	if err := s.inquiries.Update(ctx, inquiry); err != nil {
		return nil, err
	}
	return inquiry, nil
}

// ConvertToProject turns an inquiry into a PENDING project and marks the
// inquiry CONVERTED. Both writes happen in one repository transaction; an
// inquiry can only be converted once.
func (s *InquiryService) ConvertToProject(ctx context.Context, inquiryID string, input ports.ConvertInquiryInput) (*domain.Project, error) {
	inquiry, err := s.inquiries.FindByID(ctx, inquiryID)
	if err != nil {
		return nil, err
	}
	if inquiry.Status == domain.InquiryConverted {
		return nil, domain.ErrInquiryAlreadyConverted
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityNormal
	}
	projectType := input.ProjectType
	if projectType == "" {
		projectType = "other"
	}

	now := time.Now().UTC()
	project := &domain.Project{
		Title:       input.ProjectName,
		Description: input.Description,
		ProjectType: projectType,
		Status:      domain.ProjectPending,
		Priority:    priority,
		CustomerID:  inquiry.CustomerID,
		InquiryID:   inquiry.ID,
		Budget:      input.Budget,
		DueDate:     input.DueDate,
		CreatedByID: input.CreatedByID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.inquiries.ConvertToProject(ctx, inquiryID, project)
	if err != nil {
		s.logger.Error().Err(err).Str("inquiry_id", inquiryID).Msg("failed to convert inquiry")
		return nil, err
	}

	s.logger.Info().Str("inquiry_id", inquiryID).Str("project_id", created.ID).Msg("inquiry converted to project")
	return created, nil
}

// splitName divides a free-form name into first/last the way the contact
// form always has: first word, then everything else.
func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func sourceLabel(teamStoreID string) string {
	if teamStoreID != "" {
		return "team_store"
	}
	return "contact_form"
}
