package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/burningbushdesign/storefront-api/internal/api/metrics"
	"github.com/burningbushdesign/storefront-api/internal/core/domain"
	"github.com/burningbushdesign/storefront-api/internal/core/ports"
)

// OrderService implements the admin order workflow.
type OrderService struct {
	orders ports.OrderRepository
	logger zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, logger: logger}
}

func (s *OrderService) ListOrders(ctx context.Context, filter ports.OrderFilter, page ports.Page) ([]*domain.Order, ports.Pagination, error) {
	page = page.Normalize()
	orders, total, err := s.orders.List(ctx, filter, page)
	if err != nil {
		return nil, ports.Pagination{}, err
	}
	return orders, ports.NewPagination(page, total), nil
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.FindByID(ctx, id)
}

// UpdateOrderStatus validates the transition against the order state machine
// and appends a status-history entry.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus, notes string) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidOrderTransition, order.Status, status)
	}

	now := time.Now().UTC()
	order.Status = status
	order.UpdatedAt = now
	order.StatusHistory = append(order.StatusHistory, domain.OrderStatusEntry{
		Status:    status,
		Timestamp: now,
		Notes:     notes,
	})

	if err := s.orders.Update(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", id).Msg("failed to update order status")
		return nil, err
	}

	metrics.OrderStatusUpdatesTotal.WithLabelValues(string(status)).Inc()
	s.logger.Info().Str("order_id", id).Str("status", string(status)).Msg("order status updated")
	return order, nil
}
