package service

import (
	"context"

	"github.com/burningbushdesign/storefront-api/internal/core/domain"
	"github.com/burningbushdesign/storefront-api/internal/core/ports"
)

// CustomerService exposes admin customer listings.
type CustomerService struct {
	customers ports.CustomerRepository
}

func NewCustomerService(customers ports.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

func (s *CustomerService) ListCustomers(ctx context.Context, filter ports.CustomerFilter, page ports.Page) ([]*domain.Customer, ports.Pagination, error) {
	page = page.Normalize()
	customers, total, err := s.customers.List(ctx, filter, page)
	if err != nil {
		return nil, ports.Pagination{}, err
	}
	return customers, ports.NewPagination(page, total), nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	return s.customers.FindByID(ctx, id)
}
