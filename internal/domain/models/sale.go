package models

// Sale is a single line of a per-seller sales file. Many sales may reference
// the same seller or product; a Sale is never mutated after parsing.
//
// Column order:
//  1. SellerDocumentNumber
//  2. ProductID
//  3. Quantity
type Sale struct {
	SellerDocumentNumber string
	ProductID            int
	Quantity             int
}
