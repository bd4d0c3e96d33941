package gateway

import (
	"context"
	"net/http"

	"github.com/go-faster/errors"

	"github.com/xenking/storefront/internal/domain/payment"
)

var _ payment.API = (*PaymentService)(nil)

// PaymentService implements payment.API over the /payments routes.
type PaymentService struct {
	client *Client
}

// List returns every payment.
func (s *PaymentService) List(ctx context.Context) ([]payment.Payment, error) {
	var out []payment.Payment
	if err := s.client.get(ctx, &out, nil, "payments"); err != nil {
		return nil, errors.Wrap(err, "list payments")
	}
	return out, nil
}

// GetByID returns a single payment.
func (s *PaymentService) GetByID(ctx context.Context, id string) (*payment.Payment, error) {
	var out payment.Payment
	if err := s.client.get(ctx, &out, nil, "payments", id); err != nil {
		if notFound(err) {
			return nil, payment.ErrNotFound
		}
		return nil, errors.Wrap(err, "get payment")
	}
	return &out, nil
}

// ListByOrder returns the payments recorded against an order.
func (s *PaymentService) ListByOrder(ctx context.Context, orderID string) ([]payment.Payment, error) {
	var out []payment.Payment
	if err := s.client.get(ctx, &out, nil, "payments", "order", orderID); err != nil {
		return nil, errors.Wrap(err, "list order payments")
	}
	return out, nil
}

// ListByStatus returns the payments currently in the given status.
func (s *PaymentService) ListByStatus(ctx context.Context, status payment.Status) ([]payment.Payment, error) {
	var out []payment.Payment
	if err := s.client.get(ctx, &out, nil, "payments", "status", string(status)); err != nil {
		return nil, errors.Wrap(err, "list payments by status")
	}
	return out, nil
}

// Create records a new pending payment and returns the stored copy.
func (s *PaymentService) Create(ctx context.Context, req payment.CreateRequest) (*payment.Payment, error) {
	var out payment.Payment
	if err := s.client.write(ctx, http.MethodPost, paymentCreateToWire(req), &out, "payments"); err != nil {
		return nil, errors.Wrap(err, "create payment")
	}
	return &out, nil
}

// Process marks a pending payment as completed. The backend populates
// the transaction identifier and rejects illegal transitions.
func (s *PaymentService) Process(ctx context.Context, id string) (*payment.Payment, error) {
	var out payment.Payment
	if err := s.client.write(ctx, http.MethodPatch, nil, &out, "payments", id, "process"); err != nil {
		if notFound(err) {
			return nil, payment.ErrNotFound
		}
		return nil, errors.Wrap(err, "process payment")
	}
	return &out, nil
}
