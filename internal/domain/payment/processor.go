package payment

import (
	"context"

	"github.com/go-faster/errors"
)

// Sentinel errors raised before any network call.
var (
	ErrMissingID    = errors.New("payment id required")
	ErrNotConfirmed = errors.New("payment processing not confirmed")
)

// ConfirmFunc asks for explicit user confirmation before a payment is
// processed. Returning false aborts the operation without I/O.
type ConfirmFunc func(ctx context.Context, paymentID string) (bool, error)

// ReloadFunc re-fetches the caller's payment view after a successful
// mutation, mirroring the order-side full re-fetch policy.
type ReloadFunc func(ctx context.Context) error

// Processor drives the single client-initiated payment transition,
// Pending→Completed. Eligibility (the payment actually being Pending) is
// not validated client-side: the UI only offers the action for Pending
// rows and the backend rejects illegal transitions.
type Processor struct {
	payments API
	confirm  ConfirmFunc
	reload   ReloadFunc
}

// NewProcessor creates a Processor. confirm and reload may be nil; a nil
// confirm means the caller has already obtained confirmation.
func NewProcessor(payments API, confirm ConfirmFunc, reload ReloadFunc) *Processor {
	return &Processor{
		payments: payments,
		confirm:  confirm,
		reload:   reload,
	}
}

// Process marks a pending payment as completed. The backend populates the
// transaction identifier as a side effect. On success the reload callback
// fires; on failure or declined confirmation nothing is mutated.
func (p *Processor) Process(ctx context.Context, paymentID string) (*Payment, error) {
	if paymentID == "" {
		return nil, ErrMissingID
	}

	if p.confirm != nil {
		ok, err := p.confirm(ctx, paymentID)
		if err != nil {
			return nil, errors.Wrap(err, "confirm payment")
		}
		if !ok {
			return nil, ErrNotConfirmed
		}
	}

	pay, err := p.payments.Process(ctx, paymentID)
	if err != nil {
		return nil, errors.Wrap(err, "process payment")
	}

	if p.reload != nil {
		if err := p.reload(ctx); err != nil {
			return pay, errors.Wrap(err, "reload payments")
		}
	}
	return pay, nil
}
