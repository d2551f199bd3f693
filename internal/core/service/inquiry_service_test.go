package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/burningbushdesign/storefront-api/internal/core/domain"
	"github.com/burningbushdesign/storefront-api/internal/core/ports"
)

type stubInquiryRepo struct {
	byID      map[string]*domain.ContactInquiry
	created   *domain.ContactInquiry
	converted *domain.Project
}

func (s *stubInquiryRepo) Create(_ context.Context, i *domain.ContactInquiry) (*domain.ContactInquiry, error) {
	i.ID = "i-1"
	s.created = i
	return i, nil
}

func (s *stubInquiryRepo) FindByID(_ context.Context, id string) (*domain.ContactInquiry, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrInquiryNotFound
	}
	return i, nil
}

func (s *stubInquiryRepo) List(_ context.Context, _ ports.InquiryFilter, _ ports.Page) ([]*domain.ContactInquiry, int64, error) {
	return nil, 0, nil
}

func (s *stubInquiryRepo) Update(_ context.Context, _ *domain.ContactInquiry) error {
	return nil
}

func (s *stubInquiryRepo) ConvertToProject(_ context.Context, inquiryID string, p *domain.Project) (*domain.Project, error) {
	i, ok := s.byID[inquiryID]
	if !ok {
		return nil, domain.ErrInquiryNotFound
	}
	if i.Status == domain.InquiryConverted {
		return nil, domain.ErrInquiryAlreadyConverted
	}
	i.Status = domain.InquiryConverted
	p.ID = "p-1"
	s.converted = p
	return p, nil
}

type stubCustomerRepo struct {
	byEmail map[string]*domain.Customer
}

func (s *stubCustomerRepo) FindByEmail(_ context.Context, email string) (*domain.Customer, error) {
	c, ok := s.byEmail[email]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return c, nil
}

func (s *stubCustomerRepo) FindByID(_ context.Context, _ string) (*domain.Customer, error) {
	return nil, domain.ErrCustomerNotFound
}

func (s *stubCustomerRepo) FindOrCreateByEmail(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	if existing, ok := s.byEmail[c.Email]; ok {
		return existing, nil
	}
	c.ID = "c-1"
	s.byEmail[c.Email] = c
	return c, nil
}

func (s *stubCustomerRepo) List(_ context.Context, _ ports.CustomerFilter, _ ports.Page) ([]*domain.Customer, int64, error) {
	return nil, 0, nil
}

type stubDeduper struct {
	duplicate bool
	checkErr  error
	marked    bool
}

func (s *stubDeduper) IsDuplicate(_ context.Context, _, _ string) (bool, error) {
	return s.duplicate, s.checkErr
}

func (s *stubDeduper) Mark(_ context.Context, _, _ string) error {
	s.marked = true
	return nil
}

func newInquiryService(inquiries *stubInquiryRepo, customers *stubCustomerRepo, dedup *stubDeduper) *InquiryService {
	return NewInquiryService(inquiries, customers, dedup, zerolog.Nop())
}

func submission() ports.ContactSubmissionInput {
	return ports.ContactSubmissionInput{
		Name:    "Jordan Rivers",
		Email:   "Jordan@Example.com",
		Message: "Need 50 custom caps for our club.",
	}
}

func TestSubmitContactForm_CreatesCustomerAndInquiry(t *testing.T) {
	inquiries := &stubInquiryRepo{byID: map[string]*domain.ContactInquiry{}}
	customers := &stubCustomerRepo{byEmail: map[string]*domain.Customer{}}
	dedup := &stubDeduper{}

	svc := newInquiryService(inquiries, customers, dedup)
	created, err := svc.SubmitContactForm(context.Background(), submission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.Status != domain.InquiryNew {
		t.Errorf("status = %q, want NEW", created.Status)
	}
	if created.Priority != domain.PriorityNormal {
		t.Errorf("priority = %q, want NORMAL", created.Priority)
	}
	if created.Email != "jordan@example.com" {
		t.Errorf("email = %q, want lowercased", created.Email)
	}
	if created.CustomerID != "c-1" {
		t.Errorf("customer id = %q, want c-1", created.CustomerID)
	}
	customer := customers.byEmail["jordan@example.com"]
	if customer == nil {
		t.Fatal("customer was not created under the lowercased email")
	}
	if customer.FirstName != "Jordan" || customer.LastName != "Rivers" {
		t.Errorf("customer name = %q %q", customer.FirstName, customer.LastName)
	}
	if !dedup.marked {
		t.Error("submission was not marked for dedup")
	}
}

func TestSubmitContactForm_DuplicateDropped(t *testing.T) {
	inquiries := &stubInquiryRepo{byID: map[string]*domain.ContactInquiry{}}
	customers := &stubCustomerRepo{byEmail: map[string]*domain.Customer{}}
	dedup := &stubDeduper{duplicate: true}

	svc := newInquiryService(inquiries, customers, dedup)
	_, err := svc.SubmitContactForm(context.Background(), submission())
	if !errors.Is(err, domain.ErrDuplicateInquiry) {
		t.Fatalf("err = %v, want ErrDuplicateInquiry", err)
	}
	if inquiries.created != nil {
		t.Error("duplicate submission must not create an inquiry")
	}
}

func TestSubmitContactForm_DedupFailureStillAccepts(t *testing.T) {
	inquiries := &stubInquiryRepo{byID: map[string]*domain.ContactInquiry{}}
	customers := &stubCustomerRepo{byEmail: map[string]*domain.Customer{}}
	dedup := &stubDeduper{checkErr: errors.New("redis down")}

	svc := newInquiryService(inquiries, customers, dedup)
	if _, err := svc.SubmitContactForm(context.Background(), submission()); err != nil {
		t.Fatalf("a dedup store failure must not reject the submission: %v", err)
	}
	if inquiries.created == nil {
		t.Error("inquiry was not created")
	}
}

func TestConvertToProject_Defaults(t *testing.T) {
	inquiry := &domain.ContactInquiry{
		ID:         "i-1",
		CustomerID: "c-1",
		Status:     domain.InquiryQuoted,
	}
	inquiries := &stubInquiryRepo{byID: map[string]*domain.ContactInquiry{"i-1": inquiry}}
	customers := &stubCustomerRepo{byEmail: map[string]*domain.Customer{}}

	svc := newInquiryService(inquiries, customers, &stubDeduper{})
	project, err := svc.ConvertToProject(context.Background(), "i-1", ports.ConvertInquiryInput{
		ProjectName: "Club Caps",
		CreatedByID: "a-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if project.Status != domain.ProjectPending {
		t.Errorf("status = %q, want PENDING", project.Status)
	}
	if project.Priority != domain.PriorityNormal {
		t.Errorf("priority = %q, want NORMAL default", project.Priority)
	}
	if project.ProjectType != "other" {
		t.Errorf("project type = %q, want \"other\" default", project.ProjectType)
	}
	if project.CustomerID != "c-1" || project.InquiryID != "i-1" {
		t.Errorf("linkage = customer %q inquiry %q", project.CustomerID, project.InquiryID)
	}
}

func TestConvertToProject_AlreadyConverted(t *testing.T) {
	inquiry := &domain.ContactInquiry{ID: "i-1", Status: domain.InquiryConverted}
	inquiries := &stubInquiryRepo{byID: map[string]*domain.ContactInquiry{"i-1": inquiry}}
	customers := &stubCustomerRepo{byEmail: map[string]*domain.Customer{}}

	svc := newInquiryService(inquiries, customers, &stubDeduper{})
	_, err := svc.ConvertToProject(context.Background(), "i-1", ports.ConvertInquiryInput{ProjectName: "Again"})
	if !errors.Is(err, domain.ErrInquiryAlreadyConverted) {
		t.Fatalf("err = %v, want ErrInquiryAlreadyConverted", err)
	}
	if inquiries.converted != nil {
		t.Error("no project must be created for an already converted inquiry")
	}
}
