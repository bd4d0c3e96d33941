// Package cart maintains the in-memory selection of catalog items for an
// order-creation session. A cart is created empty per session, discarded
// after submission, and never persisted. It performs no I/O.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/xenking/storefront/internal/domain/product"
)

// Line is one product-quantity-price tuple inside an unsubmitted order.
// UnitPrice is snapshotted when the product is first added; later catalog
// price changes do not affect it.
type Line struct {
	Product   product.Product
	Quantity  int
	UnitPrice decimal.Decimal
}

// Subtotal is the line's unit price multiplied by its quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is an ordered collection of lines with at most one line per
// product. Line order is irrelevant to the total but preserved for
// display.
type Cart struct {
	lines []Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add puts a product into the cart. An existing line for the same product
// gains one unit of quantity and keeps its snapshotted price; otherwise a
// new line is appended with quantity 1 and the product's current price.
func (c *Cart) Add(p product.Product) {
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{
		Product:   p,
		Quantity:  1,
		UnitPrice: p.Price,
	})
}

// Remove deletes the line for the given product. Removing an absent
// product is a no-op.
func (c *Cart) Remove(productID string) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces a line's quantity. Quantities below 1 are ignored:
// Remove is the only way to zero out a line. Unknown products are ignored.
func (c *Cart) SetQuantity(productID string, qty int) {
	if qty < 1 {
		return
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity = qty
			return
		}
	}
}

// Total recomputes the cart total from current lines on every call.
// There is no cached accumulator to drift.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Lines returns a copy of the cart's lines in display order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Clear discards all lines, returning the cart to its initial state.
func (c *Cart) Clear() {
	c.lines = nil
}
