package api

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/guttosm/salesreport/internal/domain/models"
	"github.com/guttosm/salesreport/internal/service"
)

type mockReportService struct {
	res   *models.Result
	err   error
	calls int
}

func (m *mockReportService) Build(_ context.Context) (*models.Result, error) {
	m.calls++
	return m.res, m.err
}

var _ service.ReportService = (*mockReportService)(nil)

type assertErr struct{}

func (assertErr) Error() string { return "err" }

// sampleResult has two sellers (the second one sold more) and three product
// names, one of which sold nothing.
func sampleResult() *models.Result {
	return &models.Result{
		Sellers: []*models.Seller{
			{DocumentType: "CC", DocumentNumber: "111", FirstName: "Ana", LastName: "Lopez", TotalSales: decimal.NewFromInt(300)},
			{DocumentType: "CE", DocumentNumber: "222", FirstName: "Juan", LastName: "Pérez", TotalSales: decimal.NewFromInt(400)},
		},
		Summaries: []models.ProductSummary{
			{Name: "Tablet", TotalQuantitySold: 0},
			{Name: "Laptop", TotalQuantitySold: 3, TotalRevenue: decimal.NewFromInt(400)},
			{Name: "Cámara", TotalQuantitySold: 5, TotalRevenue: decimal.NewFromInt(500)},
		},
		Aggregate: models.AggregateStats{Applied: 4, QuantityApplied: 8, DroppedUnknownProduct: 1},
	}
}
