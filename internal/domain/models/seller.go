package models

import "github.com/shopspring/decimal"

// Seller represents one row of the sellers reference file plus the revenue
// accumulated for it during an aggregation pass.
//
// Column order:
//  1. DocumentType
//  2. DocumentNumber
//  3. FirstName
//  4. LastName
//
// DocumentNumber is the seller identity. TotalSales starts at zero and is only
// changed through AddSale.
type Seller struct {
	DocumentType   string
	DocumentNumber string
	FirstName      string
	LastName       string
	TotalSales     decimal.Decimal
}

// FullName joins first and last name with a single space, without trimming.
func (s *Seller) FullName() string {
	return s.FirstName + " " + s.LastName
}

// AddSale accumulates amount into TotalSales.
func (s *Seller) AddSale(amount decimal.Decimal) {
	s.TotalSales = s.TotalSales.Add(amount)
}
