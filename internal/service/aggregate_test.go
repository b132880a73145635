package service

import (
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/guttosm/salesreport/internal/domain/models"
)

func TestAggregate_TableDriven(t *testing.T) {
	cases := []struct {
		name      string
		sales     []models.Sale
		wantTotal map[string]string
		wantSold  map[int]int
		wantStats models.AggregateStats
	}{
		{
			name:      "resolves and accumulates",
			sales:     []models.Sale{sale("1", 10, 2), sale("1", 20, 20)},
			wantTotal: map[string]string{"1": "300", "2": "0"},
			wantSold:  map[int]int{10: 2, 20: 20},
			wantStats: models.AggregateStats{Applied: 2, QuantityApplied: 22},
		},
		{
			name:      "unknown product dropped",
			sales:     []models.Sale{sale("2", 99, 5), sale("2", 10, 1)},
			wantTotal: map[string]string{"1": "0", "2": "100"},
			wantSold:  map[int]int{10: 1, 20: 0},
			wantStats: models.AggregateStats{Applied: 1, QuantityApplied: 1, DroppedUnknownProduct: 1},
		},
		{
			name:      "unknown seller counted first",
			sales:     []models.Sale{sale("9", 10, 1), sale("9", 99, 1)},
			wantTotal: map[string]string{"1": "0", "2": "0"},
			wantSold:  map[int]int{10: 0, 20: 0},
			wantStats: models.AggregateStats{DroppedUnknownSeller: 2},
		},
		{
			name:      "no sales",
			wantTotal: map[string]string{"1": "0", "2": "0"},
			wantSold:  map[int]int{10: 0, 20: 0},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCatalog(
				[]models.Seller{seller("1", "Ana", "López"), seller("2", "Luis", "Pérez")},
				[]models.Product{product(10, "Laptop", "100"), product(20, "Mouse", "5")},
			)

			st := Aggregate(c, tc.sales)
			if st != tc.wantStats {
				t.Fatalf("stats=%+v want %+v", st, tc.wantStats)
			}
			for doc, want := range tc.wantTotal {
				s, _ := c.Seller(doc)
				if !s.TotalSales.Equal(decimal.RequireFromString(want)) {
					t.Fatalf("seller %s total=%s want %s", doc, s.TotalSales, want)
				}
			}
			for id, want := range tc.wantSold {
				p, _ := c.Product(id)
				if p.SoldQuantity != want {
					t.Fatalf("product %d sold=%d want %d", id, p.SoldQuantity, want)
				}
			}
		})
	}
}

func TestAggregate_OrderIndependentAndConserving(t *testing.T) {
	sellers := []models.Seller{seller("1", "A", "A"), seller("2", "B", "B"), seller("3", "C", "C")}
	products := []models.Product{product(1, "P1", "0.10"), product(2, "P2", "19.99"), product(3, "P3", "1234.567")}

	r := rand.New(rand.NewPCG(1, 2))
	var sales []models.Sale
	total := 0
	for range 500 {
		s := models.Sale{
			SellerDocumentNumber: []string{"1", "2", "3"}[r.IntN(3)],
			ProductID:            r.IntN(3) + 1,
			Quantity:             r.IntN(10) + 1,
		}
		total += s.Quantity
		sales = append(sales, s)
	}

	run := func(in []models.Sale) (*Catalog, models.AggregateStats) {
		c := NewCatalog(sellers, products)
		return c, Aggregate(c, in)
	}

	c1, st1 := run(sales)
	shuffled := append([]models.Sale(nil), sales...)
	r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	c2, st2 := run(shuffled)

	if st1 != st2 || st1.QuantityApplied != total {
		t.Fatalf("stats differ or quantity not conserved: %+v %+v total=%d", st1, st2, total)
	}

	sold := 0
	for i, p := range c1.Products() {
		if p.SoldQuantity != c2.Products()[i].SoldQuantity {
			t.Fatalf("product %d differs", p.ID)
		}
		sold += p.SoldQuantity
	}
	if sold != total {
		t.Fatalf("sold=%d want %d", sold, total)
	}

	revenue := decimal.Zero
	for _, p := range c1.Products() {
		revenue = revenue.Add(p.Revenue())
	}
	sellerTotal := decimal.Zero
	for i, s := range c1.Sellers() {
		if !s.TotalSales.Equal(c2.Sellers()[i].TotalSales) {
			t.Fatalf("seller %s differs: %s vs %s", s.DocumentNumber, s.TotalSales, c2.Sellers()[i].TotalSales)
		}
		sellerTotal = sellerTotal.Add(s.TotalSales)
	}
	if !revenue.Equal(sellerTotal) {
		t.Fatalf("seller totals %s != product revenue %s", sellerTotal, revenue)
	}
}
