package app

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/salesreport/config"
	"github.com/guttosm/salesreport/internal/api"
	"github.com/guttosm/salesreport/internal/ingestion"
	"github.com/guttosm/salesreport/internal/scheduler"
	"github.com/guttosm/salesreport/internal/service"
)

// LoaderOptions maps the file layout of cfg to ingestion options.
func LoaderOptions(cfg config.Config) ingestion.Options {
	return ingestion.Options{
		SellersPath:  cfg.Files.SellersPath(),
		ProductsPath: cfg.Files.ProductsPath(),
		SalesDir:     cfg.Files.DataDir,
		SalesPrefix:  cfg.Files.SalesPrefix,
		SalesSuffix:  cfg.Files.SalesSuffix,
		Parallel:     cfg.Files.ReadParallel,
	}
}

// InitializeApp sets up the API dependencies and returns a configured Gin
// router.
//
// Responsibilities:
//   - Builds the file loader over the configured data directory.
//   - Wraps it in the ReportService used by the HTTP handlers.
//   - Configures the router with the report routes.
//   - Registers health and readiness endpoints (ready when the reference files are present).
//   - When sched is not nil, /readyz also reports the scheduled report runs.
func InitializeApp(cfg config.Config, sched *scheduler.ReportScheduler) *gin.Engine {
	loader := ingestion.NewFileLoader(LoaderOptions(cfg))
	svc := service.NewReportService(loader)

	router := api.NewRouter(api.NewHandler(svc))
	health := api.NewHealthHandler(loader.Ping)
	if sched != nil {
		health.WithStatus("schedule", func() any { return sched.Status() })
	}
	health.Register(router)

	return router
}
