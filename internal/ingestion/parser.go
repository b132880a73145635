package ingestion

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/guttosm/salesreport/internal/domain/models"
)

// Field counts per record kind. Records with any other count are skipped.
const (
	sellerFields  = 4
	productFields = 3
	saleFields    = 3
)

var (
	// ErrFieldCount is returned when a record does not have the expected number of fields.
	ErrFieldCount = errors.New("unexpected field count")
	// ErrInvalidNumber is returned for integer columns (ids, quantities) that do not parse.
	ErrInvalidNumber = errors.New("invalid integer")
	// ErrInvalidPrice is returned when a unit price is not a non-negative es-ES decimal.
	ErrInvalidPrice = errors.New("invalid price")
	// ErrInvalidQuantity is returned for sale quantities that are not positive.
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// esDecimal accepts "1234,56", "1.234,56" and "1234". Grouping dots, when
// present, must split the integer part in groups of three.
var esDecimal = regexp.MustCompile(`^(\d{1,3}(\.\d{3})+|\d+)(,\d+)?$`)

// ParsePrice converts an es-ES formatted decimal ("1.234,56") into a decimal value.
// Signs, dot decimals and thousands groups of the wrong size are rejected.
func ParsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if !esDecimal.MatchString(s) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidPrice, err)
	}
	return d, nil
}

// ParseSeller maps a 4-field record to a Seller with TotalSales = 0.
//
// Column order:
//
//	0 documentType
//	1 documentNumber
//	2 firstName
//	3 lastName
func ParseSeller(rec []string) (models.Seller, error) {
	if len(rec) != sellerFields {
		return models.Seller{}, fmt.Errorf("%w: expected %d got %d", ErrFieldCount, sellerFields, len(rec))
	}
	return models.Seller{
		DocumentType:   strings.TrimSpace(rec[0]),
		DocumentNumber: strings.TrimSpace(rec[1]),
		FirstName:      strings.TrimSpace(rec[2]),
		LastName:       strings.TrimSpace(rec[3]),
	}, nil
}

// ParseProduct maps a 3-field record to a Product with SoldQuantity = 0.
//
// Column order:
//
//	0 productId  (integer)
//	1 productName
//	2 unitPrice  (es-ES decimal, see ParsePrice)
func ParseProduct(rec []string) (models.Product, error) {
	var p models.Product
	if len(rec) != productFields {
		return p, fmt.Errorf("%w: expected %d got %d", ErrFieldCount, productFields, len(rec))
	}

	id, err := strconv.Atoi(strings.TrimSpace(rec[0]))
	if err != nil {
		return p, fmt.Errorf("%w: product id %q", ErrInvalidNumber, rec[0])
	}
	p.ID = id
	p.Name = strings.TrimSpace(rec[1])

	price, err := ParsePrice(rec[2])
	if err != nil {
		return p, err
	}
	p.Price = price

	return p, nil
}

// ParseSale maps a 3-field record to a Sale.
//
// Column order:
//
//	0 sellerDocumentNumber
//	1 productId (integer)
//	2 quantity  (integer, > 0)
func ParseSale(rec []string) (models.Sale, error) {
	var s models.Sale
	if len(rec) != saleFields {
		return s, fmt.Errorf("%w: expected %d got %d", ErrFieldCount, saleFields, len(rec))
	}

	s.SellerDocumentNumber = strings.TrimSpace(rec[0])

	id, err := strconv.Atoi(strings.TrimSpace(rec[1]))
	if err != nil {
		return s, fmt.Errorf("%w: product id %q", ErrInvalidNumber, rec[1])
	}
	s.ProductID = id

	qty, err := strconv.Atoi(strings.TrimSpace(rec[2]))
	if err != nil {
		return s, fmt.Errorf("%w: quantity %q", ErrInvalidNumber, rec[2])
	}
	if qty <= 0 {
		return s, fmt.Errorf("%w: %d", ErrInvalidQuantity, qty)
	}
	s.Quantity = qty

	return s, nil
}
