// Package gateway implements the domain API interfaces over the
// backend's REST endpoints. One core client handles request building,
// credential-carrying transport, and envelope normalization; a thin
// service per endpoint group maps routes to typed operations.
//
// The gateway does not retry and does not cache. Every failure surfaces
// to the caller: transport errors wrapped, backend rejections as
// *APIError carrying the backend's message when present.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-faster/errors"

	"github.com/xenking/storefront/internal/envelope"
)

// maxBodySize caps how much of a response body is read. 8 MiB is far
// beyond any real payload from this backend.
const maxBodySize = 8 << 20

// defaultTimeout bounds a single request when the caller's context
// carries no deadline of its own.
const defaultTimeout = 30 * time.Second

// APIError is a backend rejection: a non-2xx response, with the
// backend-provided message when the body carried one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request failed: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("request failed: status %d", e.StatusCode)
}

// Config holds the gateway's connection settings.
type Config struct {
	// BaseURL is the backend root, e.g. "http://localhost:4000/api".
	BaseURL string
	// Timeout bounds each request. Zero means defaultTimeout.
	Timeout time.Duration
	// Transport is the HTTP transport, typically a middleware chain from
	// pkg/httpclient. Nil means http.DefaultTransport.
	Transport http.RoundTripper
}

// Client is the typed set of remote operations, grouped per entity.
type Client struct {
	baseURL *url.URL
	http    *http.Client

	catalog   *CatalogService
	orders    *OrderService
	payments  *PaymentService
	analytics *AnalyticsService
}

// New creates a Client for the given backend.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}
	base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parse base URL")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		baseURL: base,
		http: &http.Client{
			Transport: cfg.Transport,
			Timeout:   timeout,
		},
	}
	c.catalog = &CatalogService{client: c}
	c.orders = &OrderService{client: c}
	c.payments = &PaymentService{client: c}
	c.analytics = &AnalyticsService{client: c}
	return c, nil
}

// Catalog returns the product operations.
func (c *Client) Catalog() *CatalogService { return c.catalog }

// Orders returns the order operations.
func (c *Client) Orders() *OrderService { return c.orders }

// Payments returns the payment operations.
func (c *Client) Payments() *PaymentService { return c.payments }

// Analytics returns the analytics operations.
func (c *Client) Analytics() *AnalyticsService { return c.analytics }

// do issues one request and returns the normalized payload. Transport
// failures, non-2xx statuses, and malformed bodies all come back as
// errors; the envelope normalizer itself never swallows one.
func (c *Client) do(ctx context.Context, method string, query url.Values, body any, segments ...string) (envelope.Payload, error) {
	u := c.baseURL.JoinPath(segments...)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var rdr io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return envelope.Payload{}, errors.Wrap(err, "encode request body")
		}
		rdr = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), rdr)
	if err != nil {
		return envelope.Payload{}, errors.Wrap(err, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return envelope.Payload{}, errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return envelope.Payload{}, errors.Wrap(err, "read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return envelope.Payload{}, &APIError{
			StatusCode: resp.StatusCode,
			Message:    envelope.Message(data),
		}
	}

	// Some delete endpoints answer 2xx with an empty body.
	if len(bytes.TrimSpace(data)) == 0 {
		return envelope.Payload{Kind: envelope.KindRaw}, nil
	}
	return envelope.Decode(data)
}

// get issues a GET and decodes the payload into out.
func (c *Client) get(ctx context.Context, out any, query url.Values, segments ...string) error {
	p, err := c.do(ctx, http.MethodGet, query, nil, segments...)
	if err != nil {
		return err
	}
	return p.DecodeInto(out)
}

// write issues a mutating request and decodes the confirmation payload
// into out when out is non-nil.
func (c *Client) write(ctx context.Context, method string, body, out any, segments ...string) error {
	p, err := c.do(ctx, method, nil, body, segments...)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return p.DecodeInto(out)
}

// notFound reports whether err is a backend 404, letting services map it
// to their domain sentinel.
func notFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
