package models

import "github.com/shopspring/decimal"

// ProductSummary is the name-keyed rollup of every product id sharing Name.
type ProductSummary struct {
	Name              string
	TotalQuantitySold int
	TotalRevenue      decimal.Decimal
}

// AddProduct folds the sold quantity and revenue of p into the summary.
func (s *ProductSummary) AddProduct(p *Product) {
	s.TotalQuantitySold += p.SoldQuantity
	s.TotalRevenue = s.TotalRevenue.Add(p.Revenue())
}

// AveragePrice is TotalRevenue / TotalQuantitySold, or zero when nothing was sold.
func (s ProductSummary) AveragePrice() decimal.Decimal {
	if s.TotalQuantitySold <= 0 {
		return decimal.Zero
	}
	return s.TotalRevenue.Div(decimal.NewFromInt(int64(s.TotalQuantitySold)))
}
