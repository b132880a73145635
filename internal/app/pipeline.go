package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/guttosm/salesreport/config"
	"github.com/guttosm/salesreport/internal/domain/models"
	"github.com/guttosm/salesreport/internal/generator"
	"github.com/guttosm/salesreport/internal/ingestion"
	"github.com/guttosm/salesreport/internal/logger"
	"github.com/guttosm/salesreport/internal/report"
	"github.com/guttosm/salesreport/internal/service"
)

// Summary describes a finished report run.
type Summary struct {
	RunID       string
	SellerRows  int
	ProductRows int
	Result      *models.Result
}

// RunReport executes the batch pipeline once:
// load → aggregate → summarize → render → write.
//
// Behavior:
//   - A missing or unreadable reference file aborts the run before any report is written.
//   - The sellers report is written before the products report; a failure on
//     the products report is returned but leaves the sellers report in place.
//   - When configured, both reports are also exported as one XLSX workbook.
func RunReport(ctx context.Context, cfg config.Config) (*Summary, error) {
	return runReport(ctx, cfg, service.NewReportService(ingestion.NewFileLoader(LoaderOptions(cfg))))
}

func runReport(ctx context.Context, cfg config.Config, svc service.ReportService) (*Summary, error) {
	runID := uuid.NewString()
	lg := logger.Component("pipeline").With().Str("run_id", runID).Logger()
	start := time.Now()

	lg.Info().Str("data_dir", cfg.Files.DataDir).Str("reports_dir", cfg.Files.ReportsDir).Msg("report run start")

	res, err := svc.Build(ctx)
	if err != nil {
		return nil, err
	}

	sum := &Summary{RunID: runID, Result: res}

	sellerRows := report.SellerRows(res.Sellers)
	if err := report.WriteSellersFile(cfg.Files.SellersReportPath(), sellerRows); err != nil {
		return sum, fmt.Errorf("sellers report: %w", err)
	}
	sum.SellerRows = len(sellerRows)
	lg.Info().Str("file", cfg.Files.SellersReportPath()).Int("rows", sum.SellerRows).Msg("sellers report written")

	productRows := report.ProductRows(res.Summaries)
	if err := report.WriteProductsFile(cfg.Files.ProductsReportPath(), productRows); err != nil {
		return sum, fmt.Errorf("products report: %w", err)
	}
	sum.ProductRows = len(productRows)
	lg.Info().Str("file", cfg.Files.ProductsReportPath()).Int("rows", sum.ProductRows).Msg("products report written")

	if path := cfg.Files.XlsxReportPath(); path != "" {
		if err := report.WriteWorkbookFile(path, sellerRows, productRows); err != nil {
			return sum, fmt.Errorf("workbook: %w", err)
		}
		lg.Info().Str("file", path).Msg("workbook written")
	}

	lg.Info().
		Int("sales_applied", res.Aggregate.Applied).
		Int("sales_dropped", res.Aggregate.Dropped()).
		Dur("elapsed", time.Since(start)).
		Msg("report run done")

	return sum, nil
}

// RunGenerate writes a fresh fake data set into the configured data
// directory. A zero seed is replaced by the current time; the seed used is
// returned so the run can be reproduced.
func RunGenerate(cfg config.Config) (uint64, error) {
	seed := cfg.Generator.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	g := generator.New(seed)
	data := g.Generate(generator.Counts{
		Sellers:        cfg.Generator.Sellers,
		Products:       cfg.Generator.Products,
		SalesPerSeller: cfg.Generator.SalesPerSeller,
	})

	layout := generator.Layout{
		SellersPath:  cfg.Files.SellersPath(),
		ProductsPath: cfg.Files.ProductsPath(),
		SalesDir:     cfg.Files.DataDir,
		SalesPrefix:  cfg.Files.SalesPrefix,
		SalesSuffix:  cfg.Files.SalesSuffix,
	}
	if err := generator.WriteAll(layout, data); err != nil {
		return seed, err
	}

	lg := logger.Component("generator")
	lg.Info().Uint64("seed", seed).Str("dir", cfg.Files.DataDir).Msg("data generated")
	return seed, nil
}
