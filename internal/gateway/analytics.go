package gateway

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/xenking/storefront/internal/analytics"
	"github.com/xenking/storefront/internal/envelope"
)

var _ analytics.API = (*AnalyticsService)(nil)

// AnalyticsService implements analytics.API over the /analytics routes.
// Responses stay as normalized payloads: shapes vary by deployment, and
// the aggregator owns the tolerant decoding.
type AnalyticsService struct {
	client *Client
}

// ProductCount returns the catalog size.
func (s *AnalyticsService) ProductCount(ctx context.Context) (envelope.Payload, error) {
	return s.client.do(ctx, http.MethodGet, nil, nil, "analytics", "products", "count")
}

// OrderStats returns aggregate order volume and revenue.
func (s *AnalyticsService) OrderStats(ctx context.Context) (envelope.Payload, error) {
	return s.client.do(ctx, http.MethodGet, nil, nil, "analytics", "orders", "stats")
}

// PaymentSuccessRate returns the payment outcome aggregate.
func (s *AnalyticsService) PaymentSuccessRate(ctx context.Context) (envelope.Payload, error) {
	return s.client.do(ctx, http.MethodGet, nil, nil, "analytics", "payments", "success-rate")
}

// OrderList returns the full order list for the dashboard. Unlike the
// typed order listing this tolerates non-array bodies, which the
// aggregator defaults to empty.
func (s *AnalyticsService) OrderList(ctx context.Context) (envelope.Payload, error) {
	return s.client.do(ctx, http.MethodGet, nil, nil, "orders")
}

// PaymentList returns the full payment list for the dashboard.
func (s *AnalyticsService) PaymentList(ctx context.Context) (envelope.Payload, error) {
	return s.client.do(ctx, http.MethodGet, nil, nil, "payments")
}

// ProductsByCategory returns the per-category product breakdown.
func (s *AnalyticsService) ProductsByCategory(ctx context.Context) (envelope.Payload, error) {
	return s.client.do(ctx, http.MethodGet, nil, nil, "analytics", "products", "by-category")
}

// InventoryValue returns the total catalog inventory value.
func (s *AnalyticsService) InventoryValue(ctx context.Context) (envelope.Payload, error) {
	return s.client.do(ctx, http.MethodGet, nil, nil, "analytics", "products", "value")
}

// OrdersByStatus returns the per-status order breakdown.
func (s *AnalyticsService) OrdersByStatus(ctx context.Context) (envelope.Payload, error) {
	return s.client.do(ctx, http.MethodGet, nil, nil, "analytics", "orders", "by-status")
}

// RecentOrders returns the most recent orders.
func (s *AnalyticsService) RecentOrders(ctx context.Context) (envelope.Payload, error) {
	return s.client.do(ctx, http.MethodGet, nil, nil, "analytics", "orders", "recent")
}

// TopProducts returns the best-selling products.
func (s *AnalyticsService) TopProducts(ctx context.Context) (envelope.Payload, error) {
	return s.client.do(ctx, http.MethodGet, nil, nil, "analytics", "orders", "top-products")
}

// PaymentsByMethod returns the per-method payment breakdown.
func (s *AnalyticsService) PaymentsByMethod(ctx context.Context) (envelope.Payload, error) {
	return s.client.do(ctx, http.MethodGet, nil, nil, "analytics", "payments", "by-method")
}

// RevenueByStatus returns revenue grouped by payment status.
func (s *AnalyticsService) RevenueByStatus(ctx context.Context) (envelope.Payload, error) {
	return s.client.do(ctx, http.MethodGet, nil, nil, "analytics", "payments", "revenue")
}

// DailyRevenue returns revenue per day for the given date range.
func (s *AnalyticsService) DailyRevenue(ctx context.Context, start, end time.Time) (envelope.Payload, error) {
	q := url.Values{}
	q.Set("startDate", start.Format(time.DateOnly))
	q.Set("endDate", end.Format(time.DateOnly))
	return s.client.do(ctx, http.MethodGet, q, nil, "analytics", "payments", "daily")
}
