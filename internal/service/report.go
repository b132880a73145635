package service

import (
	"context"
	"fmt"

	"github.com/guttosm/salesreport/internal/domain/models"
	"github.com/guttosm/salesreport/internal/logger"
)

// DatasetLoader provides the raw input of a run.
type DatasetLoader interface {
	Load(ctx context.Context) (*models.Dataset, error)
}

// ReportService runs one aggregation pass over freshly loaded data.
// This decouples the CLI and HTTP handlers from file access.
type ReportService interface {
	Build(ctx context.Context) (*models.Result, error)
}

type reportService struct {
	loader DatasetLoader
}

func NewReportService(loader DatasetLoader) ReportService {
	return &reportService{loader: loader}
}

// Build loads the dataset, aggregates sales into a new catalog and
// summarizes products. Every call starts from zero totals.
func (s *reportService) Build(ctx context.Context) (*models.Result, error) {
	ds, err := s.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	catalog := NewCatalog(ds.Sellers, ds.Products)
	agg := Aggregate(catalog, ds.Sales)

	res := &models.Result{
		Sellers:   catalog.Sellers(),
		Products:  catalog.Products(),
		Summaries: Summarize(catalog.Products()),
		Load:      ds.Stats,
		Aggregate: agg,
	}

	logger.L().Info().
		Int("applied", agg.Applied).
		Int("quantity", agg.QuantityApplied).
		Int("dropped_unknown_seller", agg.DroppedUnknownSeller).
		Int("dropped_unknown_product", agg.DroppedUnknownProduct).
		Int("summaries", len(res.Summaries)).
		Msg("aggregation done")

	return res, nil
}
