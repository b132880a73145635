package dto

import (
	"github.com/guttosm/salesreport/internal/domain/models"
	"github.com/guttosm/salesreport/internal/report"
)

// RunStats describes the pass a report was built from.
type RunStats struct {
	Load      models.LoadStats      `json:"load"`
	Aggregate models.AggregateStats `json:"aggregate"`
}

// SellersReportResponse is returned by GET /api/v1/reports/sellers.
// Rows are sorted by total sales, highest first.
type SellersReportResponse struct {
	Rows  []report.SellerRow `json:"rows"`
	Stats RunStats           `json:"stats"`
}

// ProductsReportResponse is returned by GET /api/v1/reports/products.
// Only product names with at least one unit sold are listed.
type ProductsReportResponse struct {
	Rows  []report.ProductRow `json:"rows"`
	Stats RunStats            `json:"stats"`
}

// NewRunStats extracts the stats of res.
func NewRunStats(res *models.Result) RunStats {
	return RunStats{Load: res.Load, Aggregate: res.Aggregate}
}
