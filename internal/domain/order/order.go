package order

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested order does not exist.
var ErrNotFound = errors.New("order not found")

// Status is an order's lifecycle state. Transition legality is enforced
// by the backend; the client only triggers transitions.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
)

// Statuses lists every known order status in lifecycle order.
func Statuses() []Status {
	return []Status{
		StatusPending,
		StatusProcessing,
		StatusShipped,
		StatusDelivered,
		StatusCancelled,
	}
}

// Valid reports whether s is a known order status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// OrderItem is the immutable record of one purchased line: the product
// reference, quantity, and the unit price paid.
type OrderItem struct {
	ProductID string          `json:"product"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Order is a submitted purchase. It is owned by the backend; the client
// holds transient read copies and never deletes one — cancellation is a
// status transition.
type Order struct {
	ID            string          `json:"_id"`
	OrderNumber   string          `json:"orderNumber"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	Items         []OrderItem     `json:"items"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Status        Status          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt,omitzero"`
}

// CreateRequest is the order-creation payload sent to the backend.
type CreateRequest struct {
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	Items         []OrderItem     `json:"items"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
}

// API defines the order operations exposed by the backend.
type API interface {
	List(ctx context.Context) ([]Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	ListByCustomer(ctx context.Context, email string) ([]Order, error)
	Create(ctx context.Context, req CreateRequest) (*Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Order, error)
	Cancel(ctx context.Context, id string) error
}
