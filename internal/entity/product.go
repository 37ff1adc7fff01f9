package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultLowStockThreshold is the on-hand quantity at or below which a product is low on stock.
const DefaultLowStockThreshold = 10

// Product represents the products table
type Product struct {
	ID        string          `db:"id"`
	Name      string          `db:"name"`
	Price     decimal.Decimal `db:"price"`
	Quantity  int             `db:"quantity"`
	CreatedAt time.Time       `db:"created_at"`
}

func (p *Product) IsOutOfStock() bool {
	return p.Quantity <= 0
}

// IsLowStock reports whether the product is at or below threshold. Out of stock counts as low.
func (p *Product) IsLowStock(threshold int) bool {
	return p.Quantity <= threshold
}

func (p *Product) PriceFloat() float64 {
	return p.Price.InexactFloat64()
}
