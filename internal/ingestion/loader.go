package ingestion

import (
	"context"
	"fmt"
	"os"

	"github.com/guttosm/salesreport/internal/domain/models"
	"github.com/guttosm/salesreport/internal/logger"
)

// Options locates the input files of one run.
type Options struct {
	SellersPath  string
	ProductsPath string
	SalesDir     string
	SalesPrefix  string
	SalesSuffix  string
	Parallel     int
}

// FileLoader loads a Dataset from flat files.
type FileLoader struct {
	opts Options
}

// NewFileLoader returns a loader reading the files described by opts.
func NewFileLoader(opts Options) *FileLoader {
	return &FileLoader{opts: opts}
}

// Load reads sellers, products and every sales file.
//
// Fails when either reference file is missing or unreadable, or when a sales
// file cannot be read. Malformed lines are skipped and only show up in the
// returned stats.
func (l *FileLoader) Load(ctx context.Context) (*models.Dataset, error) {
	var ds models.Dataset
	var err error

	ds.Sellers, ds.Stats.Sellers, err = ReadSellers(ctx, l.opts.SellersPath)
	if err != nil {
		return nil, err
	}
	ds.Products, ds.Stats.Products, err = ReadProducts(ctx, l.opts.ProductsPath)
	if err != nil {
		return nil, err
	}
	ds.Sales, ds.Stats.Sales, err = ReadSalesDir(ctx, l.opts.SalesDir, l.opts.SalesPrefix, l.opts.SalesSuffix, l.opts.Parallel)
	if err != nil {
		return nil, err
	}

	logger.L().Info().
		Int("sellers", len(ds.Sellers)).
		Int("products", len(ds.Products)).
		Int("sales", len(ds.Sales)).
		Int("sales_files", ds.Stats.Sales.Files).
		Int("skipped", ds.Stats.Sellers.Skipped+ds.Stats.Products.Skipped+ds.Stats.Sales.Skipped).
		Msg("dataset loaded")

	return &ds, nil
}

// Ping reports whether both reference files are present.
func (l *FileLoader) Ping() error {
	for _, p := range []string{l.opts.SellersPath, l.opts.ProductsPath} {
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("reference file %s: %w", p, err)
		}
	}
	return nil
}
