package gateway

import (
	"context"
	"net/http"

	"github.com/go-faster/errors"

	"github.com/xenking/storefront/internal/domain/order"
)

var _ order.API = (*OrderService)(nil)

// OrderService implements order.API over the /orders routes.
type OrderService struct {
	client *Client
}

// List returns every order.
func (s *OrderService) List(ctx context.Context) ([]order.Order, error) {
	var out []order.Order
	if err := s.client.get(ctx, &out, nil, "orders"); err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	return out, nil
}

// GetByID returns a single order.
func (s *OrderService) GetByID(ctx context.Context, id string) (*order.Order, error) {
	var out order.Order
	if err := s.client.get(ctx, &out, nil, "orders", id); err != nil {
		if notFound(err) {
			return nil, order.ErrNotFound
		}
		return nil, errors.Wrap(err, "get order")
	}
	return &out, nil
}

// ListByCustomer returns the orders placed under a customer email.
func (s *OrderService) ListByCustomer(ctx context.Context, email string) ([]order.Order, error) {
	var out []order.Order
	if err := s.client.get(ctx, &out, nil, "orders", "customer", email); err != nil {
		return nil, errors.Wrap(err, "list customer orders")
	}
	return out, nil
}

// Create submits a new order and returns the stored copy, including the
// backend-assigned order number and initial status.
func (s *OrderService) Create(ctx context.Context, req order.CreateRequest) (*order.Order, error) {
	var out order.Order
	if err := s.client.write(ctx, http.MethodPost, orderCreateToWire(req), &out, "orders"); err != nil {
		return nil, errors.Wrap(err, "create order")
	}
	return &out, nil
}

// UpdateStatus requests a status transition. Legality is decided by the
// backend; rejections surface unchanged.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status order.Status) (*order.Order, error) {
	body := struct {
		Status order.Status `json:"status"`
	}{Status: status}

	var out order.Order
	if err := s.client.write(ctx, http.MethodPatch, body, &out, "orders", id, "status"); err != nil {
		if notFound(err) {
			return nil, order.ErrNotFound
		}
		return nil, errors.Wrap(err, "update order status")
	}
	return &out, nil
}

// Cancel cancels an order. The backend models this as a delete on the
// wire, but the order survives with Cancelled status.
func (s *OrderService) Cancel(ctx context.Context, id string) error {
	if err := s.client.write(ctx, http.MethodDelete, nil, nil, "orders", id); err != nil {
		if notFound(err) {
			return order.ErrNotFound
		}
		return errors.Wrap(err, "cancel order")
	}
	return nil
}
