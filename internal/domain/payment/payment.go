package payment

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested payment does not exist.
var ErrNotFound = errors.New("payment not found")

// Status is a payment's state. Only Pending→Completed is
// client-initiated; Failed and Refunded are backend-originated facts the
// client merely displays.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
	StatusFailed    Status = "Failed"
	StatusRefunded  Status = "Refunded"
)

// Valid reports whether s is a known payment status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed, StatusRefunded:
		return true
	}
	return false
}

// Payment records money received for an order. TransactionID is populated
// by the backend once the payment completes.
type Payment struct {
	ID            string          `json:"_id"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"paymentMethod"`
	Status        Status          `json:"status"`
	TransactionID string          `json:"transactionId,omitempty"`
	CreatedAt     time.Time       `json:"createdAt,omitzero"`
}

// CreateRequest is the payment-creation payload sent to the backend.
type CreateRequest struct {
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"paymentMethod"`
}

// API defines the payment operations exposed by the backend.
type API interface {
	List(ctx context.Context) ([]Payment, error)
	GetByID(ctx context.Context, id string) (*Payment, error)
	ListByOrder(ctx context.Context, orderID string) ([]Payment, error)
	ListByStatus(ctx context.Context, status Status) ([]Payment, error)
	Create(ctx context.Context, req CreateRequest) (*Payment, error)
	Process(ctx context.Context, id string) (*Payment, error)
}
