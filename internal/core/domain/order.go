package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// validOrderTransitions defines the allowed state machine transitions.
// DELIVERED and CANCELLED are terminal.
var validOrderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderShipped, OrderCancelled},
	OrderShipped:    {OrderDelivered},
}

var ErrOrderNotFound = errors.New("order not found")
var ErrInvalidOrderTransition = errors.New("invalid order status transition")

// CanTransitionTo reports whether moving from s to next is allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validOrderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderItem is a single product line on an order. Price is captured at
// order time so later catalogue edits do not rewrite history.
type OrderItem struct {
	ProductID   string  `json:"product_id" bson:"product_id"`
	ProductName string  `json:"product_name" bson:"product_name"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	Price       float64 `json:"price" bson:"price"`
	Variant     string  `json:"variant,omitempty" bson:"variant,omitempty"`
}

// OrderStatusEntry records one status change on an order.
type OrderStatusEntry struct {
	Status    OrderStatus `json:"status" bson:"status"`
	Timestamp time.Time   `json:"timestamp" bson:"timestamp"`
	Notes     string      `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Order is the purchase aggregate root.
type Order struct {
	ID            string             `json:"id" bson:"_id,omitempty"`
	CustomerID    string             `json:"customer_id" bson:"customer_id"`
	Customer      *Customer          `json:"customer,omitempty" bson:"-"`
	Items         []OrderItem        `json:"items" bson:"items"`
	Status        OrderStatus        `json:"status" bson:"status"`
	TotalAmount   float64            `json:"total_amount" bson:"total_amount"`
	PaymentStatus string             `json:"payment_status" bson:"payment_status"`
	StatusHistory []OrderStatusEntry `json:"status_history" bson:"status_history"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}
