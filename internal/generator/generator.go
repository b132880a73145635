package generator

import (
	"math/rand/v2"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/guttosm/salesreport/internal/domain/models"
)

// Sample values the generator draws from.
var (
	DocumentTypes = []string{"CC", "CE", "TI", "PP"}
	FirstNames    = []string{"Juan", "María", "Carlos", "Ana", "Pedro", "Laura"}
	LastNames     = []string{"García", "Rodríguez", "Martínez", "López", "González", "Pérez"}
	ProductNames  = []string{"Laptop", "Smartphone", "Tablet", "Smartwatch", "Auriculares", "Cámara"}
)

const (
	documentBase  = 1_000_000_000
	documentRange = 1_000_000_000
	minPrice      = 10.0
	maxPrice      = 1000.0
	maxQuantity   = 10
)

// Counts sizes a generated data set.
type Counts struct {
	Sellers        int
	Products       int
	SalesPerSeller int
}

// SellerSales are the sales of one seller file.
type SellerSales struct {
	DocumentNumber string
	Sales          []models.Sale
}

// Data is one generated data set.
type Data struct {
	Sellers  []models.Seller
	Products []models.Product
	Sales    []SellerSales
}

// Generator draws fake sellers, products and sales from an injected source,
// so a fixed seed always yields the same data.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator seeded with seed.
func New(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewWithRand returns a Generator drawing from rng.
func NewWithRand(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

func (g *Generator) pick(values []string) string {
	return values[g.rng.IntN(len(values))]
}

// Sellers generates n sellers with distinct document numbers in
// [1000000000, 2000000000).
func (g *Generator) Sellers(n int) []models.Seller {
	seen := make(map[int]struct{}, n)
	out := make([]models.Seller, 0, n)
	for len(out) < n {
		doc := documentBase + g.rng.IntN(documentRange)
		if _, dup := seen[doc]; dup {
			continue
		}
		seen[doc] = struct{}{}
		out = append(out, models.Seller{
			DocumentType:   g.pick(DocumentTypes),
			DocumentNumber: strconv.Itoa(doc),
			FirstName:      g.pick(FirstNames),
			LastName:       g.pick(LastNames),
		})
	}
	return out
}

// Products generates products with ids 1..n and prices in [10, 1000)
// rounded to two decimals. Names repeat, ids never do.
func (g *Generator) Products(n int) []models.Product {
	out := make([]models.Product, 0, n)
	for i := 1; i <= n; i++ {
		price := minPrice + (maxPrice-minPrice)*g.rng.Float64()
		out = append(out, models.Product{
			ID:    i,
			Name:  g.pick(ProductNames),
			Price: decimal.NewFromFloat(price).Round(2),
		})
	}
	return out
}

// Sales generates n sales for documentNumber over productIDs, each with a
// quantity in [1, 10]. No sales are generated when productIDs is empty.
func (g *Generator) Sales(documentNumber string, productIDs []int, n int) []models.Sale {
	if len(productIDs) == 0 {
		return nil
	}
	out := make([]models.Sale, 0, n)
	for range n {
		out = append(out, models.Sale{
			SellerDocumentNumber: documentNumber,
			ProductID:            productIDs[g.rng.IntN(len(productIDs))],
			Quantity:             g.rng.IntN(maxQuantity) + 1,
		})
	}
	return out
}

// Generate builds a complete data set: products first, then sellers, then
// the sales of each seller in seller order.
func (g *Generator) Generate(c Counts) Data {
	var d Data
	d.Products = g.Products(c.Products)
	d.Sellers = g.Sellers(c.Sellers)

	ids := make([]int, len(d.Products))
	for i, p := range d.Products {
		ids[i] = p.ID
	}
	for _, s := range d.Sellers {
		d.Sales = append(d.Sales, SellerSales{
			DocumentNumber: s.DocumentNumber,
			Sales:          g.Sales(s.DocumentNumber, ids, c.SalesPerSeller),
		})
	}
	return d
}
