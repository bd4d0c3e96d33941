// Package analytics reshapes the backend's disparate statistics
// responses into one dashboard snapshot. The five dashboard fetches run
// concurrently and join all-or-nothing: a missing or oddly-shaped field
// degrades to a default, but an outright fetch failure fails the whole
// snapshot so the dashboard never shows inconsistent partial state.
package analytics

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/storefront/internal/domain/order"
	"github.com/xenking/storefront/internal/domain/payment"
	"github.com/xenking/storefront/internal/envelope"
)

// API defines the analytics reads exposed by the backend. Responses are
// surfaced as normalized payloads rather than typed structs: the shapes
// vary by deployment and the aggregator decodes them tolerantly. The
// breakdown reads past the first three are dashboard pass-throughs.
type API interface {
	ProductCount(ctx context.Context) (envelope.Payload, error)
	OrderStats(ctx context.Context) (envelope.Payload, error)
	PaymentSuccessRate(ctx context.Context) (envelope.Payload, error)
	OrderList(ctx context.Context) (envelope.Payload, error)
	PaymentList(ctx context.Context) (envelope.Payload, error)

	ProductsByCategory(ctx context.Context) (envelope.Payload, error)
	InventoryValue(ctx context.Context) (envelope.Payload, error)
	OrdersByStatus(ctx context.Context) (envelope.Payload, error)
	RecentOrders(ctx context.Context) (envelope.Payload, error)
	TopProducts(ctx context.Context) (envelope.Payload, error)
	PaymentsByMethod(ctx context.Context) (envelope.Payload, error)
	RevenueByStatus(ctx context.Context) (envelope.Payload, error)
	DailyRevenue(ctx context.Context, start, end time.Time) (envelope.Payload, error)
}

// OrderStats aggregates order volume and revenue.
type OrderStats struct {
	TotalOrders   int             `json:"totalOrders"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	AvgOrderValue decimal.Decimal `json:"avgOrderValue"`
}

// PaymentStats aggregates payment volume and outcome.
type PaymentStats struct {
	TotalPayments int     `json:"totalPayments"`
	SuccessRate   float64 `json:"successRate"`
}

// Snapshot is the derived dashboard aggregate. It has no independent
// identity: it is recomputed on every load and never cached.
type Snapshot struct {
	TotalProducts int64
	Orders        OrderStats
	Payments      PaymentStats
	OrderList     []order.Order
	PaymentList   []payment.Payment
}

// Aggregator builds dashboard snapshots from the analytics API.
type Aggregator struct {
	api API
}

// NewAggregator creates an Aggregator reading through the given API.
func NewAggregator(api API) *Aggregator {
	return &Aggregator{api: api}
}

// Snapshot runs the five dashboard fetches concurrently and waits for all
// of them. Any fetch error fails the snapshot; shape problems inside a
// successful response default per field instead.
func (a *Aggregator) Snapshot(ctx context.Context) (*Snapshot, error) {
	var (
		productCount envelope.Payload
		orderStats   envelope.Payload
		successRate  envelope.Payload
		orderList    envelope.Payload
		paymentList  envelope.Payload
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		productCount, err = a.api.ProductCount(ctx)
		return errors.Wrap(err, "product count")
	})
	g.Go(func() (err error) {
		orderStats, err = a.api.OrderStats(ctx)
		return errors.Wrap(err, "order stats")
	})
	g.Go(func() (err error) {
		successRate, err = a.api.PaymentSuccessRate(ctx)
		return errors.Wrap(err, "payment success rate")
	})
	g.Go(func() (err error) {
		orderList, err = a.api.OrderList(ctx)
		return errors.Wrap(err, "order list")
	})
	g.Go(func() (err error) {
		paymentList, err = a.api.PaymentList(ctx)
		return errors.Wrap(err, "payment list")
	})
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "fetch dashboard data")
	}

	snap := &Snapshot{
		TotalProducts: decodeCount(productCount),
		Orders:        decodeOrderStats(orderStats),
		Payments:      decodePaymentStats(successRate),
	}
	decodeList(orderList, &snap.OrderList)
	decodeList(paymentList, &snap.PaymentList)
	return snap, nil
}

// decodeCount extracts a product count from a count envelope or a bare
// numeric payload. Absent or malformed values count as 0.
func decodeCount(p envelope.Payload) int64 {
	if p.Kind == envelope.KindCount {
		return p.Count
	}
	if v, ok := p.Number(); ok {
		return int64(v)
	}
	return 0
}

// decodeOrderStats decodes the order stats object, defaulting to zeroes
// when the payload is missing or not an object.
func decodeOrderStats(p envelope.Payload) OrderStats {
	var stats OrderStats
	if p.Kind == envelope.KindCount || p.Raw.Type() != jx.Object {
		return stats
	}
	if err := p.DecodeInto(&stats); err != nil {
		return OrderStats{}
	}
	return stats
}

// decodePaymentStats decodes the payment stats object. The backend
// encodes the success rate either as a number or as a string with a
// trailing percent sign; both normalize to a plain float. Absent ⇒ 0.
func decodePaymentStats(p envelope.Payload) PaymentStats {
	var stats PaymentStats
	if p.Kind == envelope.KindCount || p.Raw.Type() != jx.Object {
		return stats
	}

	d := jx.DecodeBytes(p.Raw)
	_ = d.Obj(func(d *jx.Decoder, key string) error {
		raw, err := d.Raw()
		if err != nil {
			return err
		}
		field := envelope.Payload{Kind: envelope.KindRaw, Raw: raw}
		switch key {
		case "successRate":
			if v, ok := field.Number(); ok {
				stats.SuccessRate = v
			}
		case "totalPayments":
			if v, ok := field.Number(); ok {
				stats.TotalPayments = int(v)
			}
		}
		return nil
	})
	return stats
}

// decodeList decodes an array payload into out, leaving out empty when
// the payload is null, missing, or not an array.
func decodeList[T any](p envelope.Payload, out *[]T) {
	if p.Kind == envelope.KindCount || p.Raw.Type() != jx.Array {
		*out = []T{}
		return
	}
	if err := p.DecodeInto(out); err != nil || *out == nil {
		*out = []T{}
	}
}
