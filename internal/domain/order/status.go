package order

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
)

// UnknownStatusError indicates a status value outside the known set.
// Unknown values are rejected locally; legality of transitions between
// known statuses stays backend-authoritative.
type UnknownStatusError struct {
	Status Status
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown order status %q", e.Status)
}

// ReloadFunc re-fetches the caller's order view after a successful
// mutation. The full re-fetch keeps displayed state aligned with backend
// truth instead of mutating locally.
type ReloadFunc func(ctx context.Context) error

// StatusController drives admin-side order status changes. The client
// enforces no transition graph: any known status is requestable from any
// other, and the backend decides legality.
type StatusController struct {
	orders API
	reload ReloadFunc
}

// NewStatusController creates a StatusController. reload may be nil when
// the caller has no view to refresh.
func NewStatusController(orders API, reload ReloadFunc) *StatusController {
	return &StatusController{
		orders: orders,
		reload: reload,
	}
}

// SetStatus requests a status change and, on success, triggers the
// reload callback. On failure the previously displayed status remains
// valid: nothing is mutated locally and no reload fires.
func (c *StatusController) SetStatus(ctx context.Context, orderID string, status Status) (*Order, error) {
	if !status.Valid() {
		return nil, &UnknownStatusError{Status: status}
	}

	o, err := c.orders.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return nil, errors.Wrap(err, "update order status")
	}

	if c.reload != nil {
		if err := c.reload(ctx); err != nil {
			return o, errors.Wrap(err, "reload orders")
		}
	}
	return o, nil
}

// Cancel requests order cancellation (a status transition on the backend,
// modeled as a delete on the wire) and triggers the reload callback.
func (c *StatusController) Cancel(ctx context.Context, orderID string) error {
	if err := c.orders.Cancel(ctx, orderID); err != nil {
		return errors.Wrap(err, "cancel order")
	}
	if c.reload != nil {
		if err := c.reload(ctx); err != nil {
			return errors.Wrap(err, "reload orders")
		}
	}
	return nil
}
