package models

import "github.com/shopspring/decimal"

// Product represents one row of the products reference file.
//
// Column order:
//  1. ID
//  2. Name
//  3. Price (es-ES decimal in the file, e.g. "1.234,56")
//
// SoldQuantity starts at zero and is only changed through AddSold.
type Product struct {
	ID           int
	Name         string
	Price        decimal.Decimal
	SoldQuantity int
}

// AddSold accumulates quantity into SoldQuantity.
func (p *Product) AddSold(quantity int) {
	p.SoldQuantity += quantity
}

// Revenue is SoldQuantity × Price.
func (p *Product) Revenue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.SoldQuantity)))
}
