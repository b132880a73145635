package report

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/guttosm/salesreport/internal/domain/models"
)

func TestFormatAmount(t *testing.T) {
	cases := map[string]string{
		"0":        "0.00",
		"300":      "300.00",
		"1234.5":   "1234.50",
		"133.3333": "133.33",
		"0.005":    "0.01",
	}
	for in, want := range cases {
		if got := FormatAmount(decimal.RequireFromString(in)); got != want {
			t.Fatalf("FormatAmount(%s)=%q want %q", in, got, want)
		}
	}
}

func TestSellerRows_SortedDescStable(t *testing.T) {
	mk := func(doc, total string) *models.Seller {
		return &models.Seller{DocumentType: "CC", DocumentNumber: doc, FirstName: "N" + doc, LastName: "L", TotalSales: decimal.RequireFromString(total)}
	}
	in := []*models.Seller{mk("1", "10"), mk("2", "0"), mk("3", "50"), mk("4", "10"), mk("5", "0")}

	rows := SellerRows(in)
	want := []string{"3", "1", "4", "2", "5"}
	if len(rows) != len(want) {
		t.Fatalf("rows=%d want %d", len(rows), len(want))
	}
	for i, doc := range want {
		if rows[i].DocumentNumber != doc {
			t.Fatalf("row %d doc=%s want %s (%+v)", i, rows[i].DocumentNumber, doc, rows)
		}
	}
	if rows[0].FullName != "N3 L" || rows[0].TotalSales != "50.00" || rows[4].TotalSales != "0.00" {
		t.Fatalf("unexpected rendering: %+v", rows)
	}
	if in[0].DocumentNumber != "1" {
		t.Fatalf("input was reordered")
	}
}

func TestProductRows_FiltersUnsoldAndSorts(t *testing.T) {
	mk := func(name string, qty int, revenue string) models.ProductSummary {
		return models.ProductSummary{Name: name, TotalQuantitySold: qty, TotalRevenue: decimal.RequireFromString(revenue)}
	}
	rows := ProductRows([]models.ProductSummary{
		mk("Mouse", 2, "10"),
		mk("Cable", 0, "0"),
		mk("Laptop", 3, "400"),
		mk("Teclado", 2, "90"),
	})

	want := []ProductRow{
		{Name: "Laptop", QuantitySold: 3, AveragePrice: "133.33"},
		{Name: "Mouse", QuantitySold: 2, AveragePrice: "5.00"},
		{Name: "Teclado", QuantitySold: 2, AveragePrice: "45.00"},
	}
	if len(rows) != len(want) {
		t.Fatalf("rows=%+v", rows)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Fatalf("row %d=%+v want %+v", i, rows[i], want[i])
		}
	}
}

func TestProductRows_Empty(t *testing.T) {
	if rows := ProductRows(nil); len(rows) != 0 {
		t.Fatalf("expected no rows, got %+v", rows)
	}
}
