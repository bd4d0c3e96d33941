package order

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/xenking/storefront/internal/cart"
	"github.com/xenking/storefront/internal/session"
)

// ErrEmptyCart is returned when an order is submitted with no lines.
// It is raised before any network call.
var ErrEmptyCart = errors.New("nothing to order: cart is empty")

// Composer converts a cart into an order submission. It does not own the
// cart's lifecycle: on success the caller discards the cart, on failure
// the cart is left untouched so the user can retry.
type Composer struct {
	orders  API
	session *session.Session
}

// NewComposer creates a Composer submitting through the given order API
// on behalf of the session's identity.
func NewComposer(orders API, sess *session.Session) *Composer {
	return &Composer{
		orders:  orders,
		session: sess,
	}
}

// Submit builds an order-creation request from the cart and the session
// identity and sends it to the backend. An empty cart is rejected with
// ErrEmptyCart before any I/O.
func (c *Composer) Submit(ctx context.Context, crt *cart.Cart) (*Order, error) {
	if crt.Len() == 0 {
		return nil, ErrEmptyCart
	}

	lines := crt.Lines()
	items := make([]OrderItem, len(lines))
	for i, l := range lines {
		items[i] = OrderItem{
			ProductID: l.Product.ID,
			Quantity:  l.Quantity,
			Price:     l.UnitPrice,
		}
	}

	id := c.session.Identity()
	req := CreateRequest{
		CustomerName:  id.Name,
		CustomerEmail: id.Email,
		Items:         items,
		TotalAmount:   crt.Total(),
	}

	o, err := c.orders.Create(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "create order")
	}
	return o, nil
}
