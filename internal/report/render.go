package report

import (
	"slices"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/guttosm/salesreport/internal/domain/models"
)

// amountPlaces is the number of decimals of every amount in a report.
const amountPlaces = 2

// SellerRow is one line of the sellers report.
type SellerRow struct {
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number"`
	FullName       string `json:"full_name"`
	TotalSales     string `json:"total_sales"`
}

// ProductRow is one line of the products report.
type ProductRow struct {
	Name         string `json:"product_name"`
	QuantitySold int    `json:"quantity_sold"`
	AveragePrice string `json:"average_price"`
}

// FormatAmount renders d with two decimals, '.' as decimal point and no grouping.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(amountPlaces)
}

// SellerRows sorts sellers by TotalSales descending and renders one row per
// seller, zero totals included. Equal totals keep their input order.
// The input slice is not reordered.
func SellerRows(sellers []*models.Seller) []SellerRow {
	sorted := slices.Clone(sellers)
	slices.SortStableFunc(sorted, func(a, b *models.Seller) int {
		return b.TotalSales.Cmp(a.TotalSales)
	})

	rows := make([]SellerRow, 0, len(sorted))
	for _, s := range sorted {
		rows = append(rows, SellerRow{
			DocumentType:   s.DocumentType,
			DocumentNumber: s.DocumentNumber,
			FullName:       s.FullName(),
			TotalSales:     FormatAmount(s.TotalSales),
		})
	}
	return rows
}

// ProductRows drops summaries with nothing sold, sorts the rest by
// TotalQuantitySold descending (ties keep input order) and renders them.
func ProductRows(summaries []models.ProductSummary) []ProductRow {
	sold := make([]models.ProductSummary, 0, len(summaries))
	for _, s := range summaries {
		if s.TotalQuantitySold > 0 {
			sold = append(sold, s)
		}
	}
	slices.SortStableFunc(sold, func(a, b models.ProductSummary) int {
		return b.TotalQuantitySold - a.TotalQuantitySold
	})

	rows := make([]ProductRow, 0, len(sold))
	for _, s := range sold {
		rows = append(rows, ProductRow{
			Name:         s.Name,
			QuantitySold: s.TotalQuantitySold,
			AveragePrice: FormatAmount(s.AveragePrice()),
		})
	}
	return rows
}

func (r SellerRow) record() []string {
	return []string{r.DocumentType, r.DocumentNumber, r.FullName, r.TotalSales}
}

func (r ProductRow) record() []string {
	return []string{r.Name, strconv.Itoa(r.QuantitySold), r.AveragePrice}
}
