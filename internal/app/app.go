// Package app wires the storefront client: session, transport chain,
// gateway, and the controllers built on top of them.
package app

import (
	"net/http"

	sdkapp "github.com/go-faster/sdk/app"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/xenking/storefront/internal/analytics"
	"github.com/xenking/storefront/internal/domain/order"
	"github.com/xenking/storefront/internal/domain/payment"
	"github.com/xenking/storefront/internal/domain/product"
	"github.com/xenking/storefront/internal/gateway"
	"github.com/xenking/storefront/internal/session"
	"github.com/xenking/storefront/pkg/httpclient"
)

// App bundles the client's long-lived collaborators. Controllers that
// need per-view callbacks (reload, confirmation) are built on demand via
// the helper methods so the callbacks stay explicit.
type App struct {
	Session   *session.Session
	Catalog   product.API
	Orders    order.API
	Payments  payment.API
	Composer  *order.Composer
	Dashboard *analytics.Aggregator
}

// New builds the dependency graph: session state feeds the transport's
// bearer middleware, the instrumented transport feeds the gateway, and
// the gateway's services feed the domain controllers.
func New(m *sdkapp.Telemetry, cfg *Config) (*App, error) {
	sess := session.New()
	if cfg.Token != "" {
		sess.Login(cfg.Token, session.Identity{
			Name:  cfg.Customer.Name,
			Email: cfg.Customer.Email,
			Role:  cfg.Customer.Role,
		})
	}

	transport := httpclient.Wrap(
		otelhttp.NewTransport(http.DefaultTransport,
			otelhttp.WithTracerProvider(m.TracerProvider()),
			otelhttp.WithMeterProvider(m.MeterProvider()),
		),
		httpclient.RequestID(),
		httpclient.BearerAuth(sess.Token),
		httpclient.LogRequests(),
	)

	client, err := gateway.New(gateway.Config{
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.HTTP.Timeout,
		Transport: transport,
	})
	if err != nil {
		return nil, err
	}

	return &App{
		Session:   sess,
		Catalog:   client.Catalog(),
		Orders:    client.Orders(),
		Payments:  client.Payments(),
		Composer:  order.NewComposer(client.Orders(), sess),
		Dashboard: analytics.NewAggregator(client.Analytics()),
	}, nil
}

// OrderStatusController builds a status controller that refreshes the
// caller's order view after each successful change.
func (a *App) OrderStatusController(reload order.ReloadFunc) *order.StatusController {
	return order.NewStatusController(a.Orders, reload)
}

// PaymentProcessor builds a payment processor gated by the given
// confirmation hook, refreshing the caller's payment view on success.
func (a *App) PaymentProcessor(confirm payment.ConfirmFunc, reload payment.ReloadFunc) *payment.Processor {
	return payment.NewProcessor(a.Payments, confirm, reload)
}
