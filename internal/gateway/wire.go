package gateway

import (
	"github.com/xenking/storefront/internal/domain/order"
	"github.com/xenking/storefront/internal/domain/payment"
	"github.com/xenking/storefront/internal/domain/product"
)

// Wire types for outbound payloads. Monetary amounts travel as plain
// JSON numbers, so decimals are converted at this boundary; inbound
// decoding goes straight into the domain types, whose decimal fields
// accept numbers as-is.

type productWire struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
}

func productToWire(p product.Product) productWire {
	return productWire{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Category:    p.Category,
		Stock:       p.Stock,
	}
}

type orderItemWire struct {
	Product  string  `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type orderCreateWire struct {
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	Items         []orderItemWire `json:"items"`
	TotalAmount   float64         `json:"totalAmount"`
}

func orderCreateToWire(req order.CreateRequest) orderCreateWire {
	items := make([]orderItemWire, len(req.Items))
	for i, item := range req.Items {
		items[i] = orderItemWire{
			Product:  item.ProductID,
			Quantity: item.Quantity,
			Price:    item.Price.InexactFloat64(),
		}
	}
	return orderCreateWire{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Items:         items,
		TotalAmount:   req.TotalAmount.InexactFloat64(),
	}
}

type paymentCreateWire struct {
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"paymentMethod"`
}

func paymentCreateToWire(req payment.CreateRequest) paymentCreateWire {
	return paymentCreateWire{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Amount:        req.Amount.InexactFloat64(),
		Method:        req.Method,
	}
}
