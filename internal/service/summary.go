package service

import "github.com/guttosm/salesreport/internal/domain/models"

// Summarize groups products by name, in order of first appearance.
// Products with zero sales still produce (or join) a summary; filtering
// happens at render time.
func Summarize(products []*models.Product) []models.ProductSummary {
	index := make(map[string]int)
	var out []models.ProductSummary

	for _, p := range products {
		i, ok := index[p.Name]
		if !ok {
			i = len(out)
			index[p.Name] = i
			out = append(out, models.ProductSummary{Name: p.Name})
		}
		out[i].AddProduct(p)
	}

	return out
}
