package ports

import (
	"context"
	"time"

	"github.com/burningbushdesign/storefront-api/internal/core/domain"
)

// InquiryFilter narrows inquiry listings.
type InquiryFilter struct {
	Status      domain.InquiryStatus
	Priority    domain.Priority
	TeamStoreID string
}

// InquiryRepository defines inquiry persistence. ConvertToProject performs
// the project insert and the inquiry status flip atomically.
type InquiryRepository interface {
	Create(ctx context.Context, i *domain.ContactInquiry) (*domain.ContactInquiry, error)
	FindByID(ctx context.Context, id string) (*domain.ContactInquiry, error)
	List(ctx context.Context, filter InquiryFilter, page Page) ([]*domain.ContactInquiry, int64, error)
	Update(ctx context.Context, i *domain.ContactInquiry) error
	ConvertToProject(ctx context.Context, inquiryID string, p *domain.Project) (*domain.Project, error)
}

// InquiryDeduper suppresses repeated contact-form submissions.
type InquiryDeduper interface {
	IsDuplicate(ctx context.Context, email, message string) (bool, error)
	Mark(ctx context.Context, email, message string) error
}

// ContactSubmissionInput is a public contact-form (or team-store) submission.
type ContactSubmissionInput struct {
	Name        string
	Email       string
	Phone       string
	ProjectType string
	Message     string
	Timeline    string
	Budget      string
	TeamStoreID string
}

// UpdateInquiryInput carries a partial admin update of an inquiry.
type UpdateInquiryInput struct {
	Status          *domain.InquiryStatus
	Priority        *domain.Priority
	AssignedAdminID *string
	FollowUpDate    *time.Time
}

// ConvertInquiryInput carries the project fields for an inquiry conversion.
type ConvertInquiryInput struct {
	ProjectName string
	Description string
	ProjectType string
	Priority    domain.Priority
	Budget      float64
	DueDate     *time.Time
	// CreatedByID is the admin identity performing the conversion.
	CreatedByID string
}

// InquiryService exposes public intake and the admin inquiry workflow.
type InquiryService interface {
	SubmitContactForm(ctx context.Context, input ContactSubmissionInput) (*domain.ContactInquiry, error)
	ListInquiries(ctx context.Context, filter InquiryFilter, page Page) ([]*domain.ContactInquiry, Pagination, error)
	GetInquiry(ctx context.Context, id string) (*domain.ContactInquiry, error)
	UpdateInquiry(ctx context.Context, id string, input UpdateInquiryInput) (*domain.ContactInquiry, error)
	ConvertToProject(ctx context.Context, inquiryID string, input ConvertInquiryInput) (*domain.Project, error)
}
