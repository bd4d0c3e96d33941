package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-faster/errors"

	"github.com/xenking/storefront/internal/domain/product"
)

var _ product.API = (*CatalogService)(nil)

// CatalogService implements product.API over the /products routes.
type CatalogService struct {
	client *Client
}

// List returns the catalog, optionally filtered by category and sorted.
func (s *CatalogService) List(ctx context.Context, opts product.ListOptions) ([]product.Product, error) {
	q := url.Values{}
	if opts.Category != "" {
		q.Set("category", opts.Category)
	}
	if opts.SortBy != "" {
		q.Set("sortBy", opts.SortBy)
	}
	if opts.Order != "" {
		q.Set("order", string(opts.Order))
	}

	var out []product.Product
	if err := s.client.get(ctx, &out, q, "products"); err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	return out, nil
}

// Search returns products matching a free-text query.
func (s *CatalogService) Search(ctx context.Context, query string) ([]product.Product, error) {
	q := url.Values{"q": []string{query}}

	var out []product.Product
	if err := s.client.get(ctx, &out, q, "products", "search"); err != nil {
		return nil, errors.Wrap(err, "search products")
	}
	return out, nil
}

// LowStock returns products whose stock is at or below the threshold.
func (s *CatalogService) LowStock(ctx context.Context, threshold int) ([]product.Product, error) {
	q := url.Values{"threshold": []string{strconv.Itoa(threshold)}}

	var out []product.Product
	if err := s.client.get(ctx, &out, q, "products", "low-stock"); err != nil {
		return nil, errors.Wrap(err, "list low-stock products")
	}
	return out, nil
}

// GetByID returns a single product.
func (s *CatalogService) GetByID(ctx context.Context, id string) (*product.Product, error) {
	var out product.Product
	if err := s.client.get(ctx, &out, nil, "products", id); err != nil {
		if notFound(err) {
			return nil, product.ErrNotFound
		}
		return nil, errors.Wrap(err, "get product")
	}
	return &out, nil
}

// Create adds a product to the catalog and returns the stored copy.
func (s *CatalogService) Create(ctx context.Context, p product.Product) (*product.Product, error) {
	var out product.Product
	if err := s.client.write(ctx, http.MethodPost, productToWire(p), &out, "products"); err != nil {
		return nil, errors.Wrap(err, "create product")
	}
	return &out, nil
}

// Update replaces a product's fields and returns the stored copy.
func (s *CatalogService) Update(ctx context.Context, id string, p product.Product) (*product.Product, error) {
	var out product.Product
	if err := s.client.write(ctx, http.MethodPut, productToWire(p), &out, "products", id); err != nil {
		if notFound(err) {
			return nil, product.ErrNotFound
		}
		return nil, errors.Wrap(err, "update product")
	}
	return &out, nil
}

// Delete removes a product from the catalog.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if err := s.client.write(ctx, http.MethodDelete, nil, nil, "products", id); err != nil {
		if notFound(err) {
			return product.ErrNotFound
		}
		return errors.Wrap(err, "delete product")
	}
	return nil
}
