package order

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/storefront/internal/cart"
	"github.com/xenking/storefront/internal/domain/product"
	"github.com/xenking/storefront/internal/session"
)

// --- Mock implementations ---

type mockOrderAPI struct {
	calls     int
	lastReq   CreateRequest
	created   *Order
	createErr error

	updated   *Order
	updateErr error
	lastID    string
	lastSet   Status

	cancelErr error
	cancelled string
}

func (m *mockOrderAPI) List(_ context.Context) ([]Order, error) { return nil, nil }

func (m *mockOrderAPI) GetByID(_ context.Context, _ string) (*Order, error) {
	return nil, ErrNotFound
}

func (m *mockOrderAPI) ListByCustomer(_ context.Context, _ string) ([]Order, error) {
	return nil, nil
}

func (m *mockOrderAPI) Create(_ context.Context, req CreateRequest) (*Order, error) {
	m.calls++
	m.lastReq = req
	if m.createErr != nil {
		return nil, m.createErr
	}
	if m.created != nil {
		return m.created, nil
	}
	return &Order{
		ID:            "o1",
		OrderNumber:   "ORD-0001",
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Items:         req.Items,
		TotalAmount:   req.TotalAmount,
		Status:        StatusPending,
	}, nil
}

func (m *mockOrderAPI) UpdateStatus(_ context.Context, id string, status Status) (*Order, error) {
	m.lastID = id
	m.lastSet = status
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	if m.updated != nil {
		return m.updated, nil
	}
	return &Order{ID: id, Status: status}, nil
}

func (m *mockOrderAPI) Cancel(_ context.Context, id string) error {
	m.cancelled = id
	return m.cancelErr
}

// --- Helpers ---

func newTestSession() *session.Session {
	sess := session.New()
	sess.Login("token-123", session.Identity{
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
		Role:  "customer",
	})
	return sess
}

func newTestProduct(id, name, price string) product.Product {
	return product.Product{
		ID:    id,
		Name:  name,
		Price: decimal.RequireFromString(price),
		Stock: 10,
	}
}

// --- Tests ---

func TestSubmit_EmptyCart(t *testing.T) {
	api := &mockOrderAPI{}
	composer := NewComposer(api, newTestSession())

	_, err := composer.Submit(context.Background(), cart.New())

	require.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, 0, api.calls, "empty cart must never reach the network")
}

func TestSubmit_BuildsRequestFromCartAndSession(t *testing.T) {
	api := &mockOrderAPI{}
	composer := NewComposer(api, newTestSession())

	crt := cart.New()
	widget := newTestProduct("p1", "Widget", "10.00")
	crt.Add(widget)
	crt.Add(widget)
	crt.Add(newTestProduct("p2", "Gadget", "25.00"))

	o, err := composer.Submit(context.Background(), crt)
	require.NoError(t, err)

	assert.Equal(t, 1, api.calls)
	req := api.lastReq
	assert.Equal(t, "Ada Lovelace", req.CustomerName)
	assert.Equal(t, "ada@example.com", req.CustomerEmail)
	assert.True(t, decimal.RequireFromString("45.00").Equal(req.TotalAmount))

	require.Len(t, req.Items, 2)
	assert.Equal(t, "p1", req.Items[0].ProductID)
	assert.Equal(t, 2, req.Items[0].Quantity)
	assert.True(t, decimal.RequireFromString("10.00").Equal(req.Items[0].Price))
	assert.Equal(t, "p2", req.Items[1].ProductID)
	assert.Equal(t, 1, req.Items[1].Quantity)
	assert.True(t, decimal.RequireFromString("25.00").Equal(req.Items[1].Price))

	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, "ORD-0001", o.OrderNumber)
}

func TestSubmit_BackendFailureLeavesCartUntouched(t *testing.T) {
	api := &mockOrderAPI{createErr: errors.New("stock too low")}
	composer := NewComposer(api, newTestSession())

	crt := cart.New()
	crt.Add(newTestProduct("p1", "Widget", "10.00"))

	_, err := composer.Submit(context.Background(), crt)

	require.Error(t, err)
	assert.ErrorContains(t, err, "stock too low")
	assert.Equal(t, 1, crt.Len(), "failed submission must not drain the cart")
}
