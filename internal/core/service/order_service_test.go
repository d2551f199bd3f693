package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/burningbushdesign/storefront-api/internal/core/domain"
	"github.com/burningbushdesign/storefront-api/internal/core/ports"
)

type stubOrderRepo struct {
	byID    map[string]*domain.Order
	updated *domain.Order
}

func (s *stubOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	o, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (s *stubOrderRepo) List(_ context.Context, _ ports.OrderFilter, _ ports.Page) ([]*domain.Order, int64, error) {
	return nil, 0, nil
}

func (s *stubOrderRepo) Update(_ context.Context, o *domain.Order) error {
	s.updated = o
	s.byID[o.ID] = o
	return nil
}

func pendingOrder() *domain.Order {
	return &domain.Order{
		ID:         "o-1",
		CustomerID: "c-1",
		Status:     domain.OrderPending,
		StatusHistory: []domain.OrderStatusEntry{
			{Status: domain.OrderPending, Timestamp: time.Now().UTC().Add(-time.Hour)},
		},
	}
}

func TestUpdateOrderStatus_ValidTransition(t *testing.T) {
	repo := &stubOrderRepo{byID: map[string]*domain.Order{"o-1": pendingOrder()}}
	svc := NewOrderService(repo, zerolog.Nop())

	order, err := svc.UpdateOrderStatus(context.Background(), "o-1", domain.OrderProcessing, "picking started")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != domain.OrderProcessing {
		t.Errorf("status = %q, want %q", order.Status, domain.OrderProcessing)
	}
	if len(order.StatusHistory) != 2 {
		t.Fatalf("history length = %d, want 2", len(order.StatusHistory))
	}
	last := order.StatusHistory[len(order.StatusHistory)-1]
	if last.Status != domain.OrderProcessing || last.Notes != "picking started" {
		t.Errorf("history entry = %+v", last)
	}
	if repo.updated == nil {
		t.Error("order was not persisted")
	}
}

func TestUpdateOrderStatus_InvalidTransition(t *testing.T) {
	repo := &stubOrderRepo{byID: map[string]*domain.Order{"o-1": pendingOrder()}}
	svc := NewOrderService(repo, zerolog.Nop())

	_, err := svc.UpdateOrderStatus(context.Background(), "o-1", domain.OrderDelivered, "")
	if !errors.Is(err, domain.ErrInvalidOrderTransition) {
		t.Fatalf("err = %v, want ErrInvalidOrderTransition", err)
	}
	if repo.updated != nil {
		t.Error("invalid transition must not be persisted")
	}
}

func TestUpdateOrderStatus_TerminalStateRejectsEverything(t *testing.T) {
	order := pendingOrder()
	order.Status = domain.OrderDelivered
	repo := &stubOrderRepo{byID: map[string]*domain.Order{"o-1": order}}
	svc := NewOrderService(repo, zerolog.Nop())

	for _, next := range []domain.OrderStatus{
		domain.OrderPending, domain.OrderProcessing, domain.OrderShipped, domain.OrderCancelled,
	} {
		if _, err := svc.UpdateOrderStatus(context.Background(), "o-1", next, ""); !errors.Is(err, domain.ErrInvalidOrderTransition) {
			t.Errorf("DELIVERED -> %s: err = %v, want ErrInvalidOrderTransition", next, err)
		}
	}
}

func TestUpdateOrderStatus_UnknownOrder(t *testing.T) {
	repo := &stubOrderRepo{byID: map[string]*domain.Order{}}
	svc := NewOrderService(repo, zerolog.Nop())

	_, err := svc.UpdateOrderStatus(context.Background(), "missing", domain.OrderProcessing, "")
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("err = %v, want ErrOrderNotFound", err)
	}
}
