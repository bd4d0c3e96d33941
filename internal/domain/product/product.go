package product

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("product not found")

// Product represents a catalog item available for purchase. From the
// client's perspective it is immutable except through the admin
// create/update operations.
type Product struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"createdAt,omitzero"`
}

// InStock reports whether the product can currently be added to a cart.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// SortOrder is the direction of a catalog listing sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ListOptions narrows and orders a catalog listing. Zero values mean
// no filter and backend-default ordering.
type ListOptions struct {
	Category string
	SortBy   string
	Order    SortOrder
}

// API defines the catalog operations exposed by the backend.
type API interface {
	List(ctx context.Context, opts ListOptions) ([]Product, error)
	Search(ctx context.Context, query string) ([]Product, error)
	LowStock(ctx context.Context, threshold int) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, p Product) (*Product, error)
	Update(ctx context.Context, id string, p Product) (*Product, error)
	Delete(ctx context.Context, id string) error
}
