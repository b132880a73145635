package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/salesreport/config"
	"github.com/guttosm/salesreport/internal/app"
	"github.com/guttosm/salesreport/internal/logger"
	"github.com/guttosm/salesreport/internal/scheduler"
)

// options are the command line flags. Zero values leave the configuration untouched.
type options struct {
	mode           string
	dataDir        string
	reportsDir     string
	port           string
	parallel       int
	seed           uint64
	sellers        int
	products       int
	salesPerSeller int
}

// parseFlags parses args into options. Defaults for port and directories
// come from cfg so --help shows the effective values.
func parseFlags(args []string, cfg config.Config, out io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("salesreport", flag.ContinueOnError)
	fs.SetOutput(out)

	fs.StringVar(&o.mode, "mode", "report", "Mode: generate, report, all (generate then report) or api")
	fs.StringVar(&o.dataDir, "dir", cfg.Files.DataDir, "Directory with the reference and sales files")
	fs.StringVar(&o.reportsDir, "reports", cfg.Files.ReportsDir, "Directory the reports are written to")
	fs.StringVar(&o.port, "port", cfg.Server.Port, "Port for API mode")
	fs.IntVar(&o.parallel, "parallel", cfg.Files.ReadParallel, "How many sales files to read concurrently (0=NumCPU)")
	fs.Uint64Var(&o.seed, "seed", cfg.Generator.Seed, "Generator seed (0=time based)")
	fs.IntVar(&o.sellers, "sellers", cfg.Generator.Sellers, "Sellers to generate")
	fs.IntVar(&o.products, "products", cfg.Generator.Products, "Products to generate")
	fs.IntVar(&o.salesPerSeller, "sales", cfg.Generator.SalesPerSeller, "Sales lines per seller to generate")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	return o, nil
}

// apply returns cfg overridden by the flag values.
func (o options) apply(cfg config.Config) config.Config {
	cfg.Files.DataDir = o.dataDir
	cfg.Files.ReportsDir = o.reportsDir
	cfg.Server.Port = o.port
	if o.parallel >= 0 {
		cfg.Files.ReadParallel = o.parallel
	}
	cfg.Generator.Seed = o.seed
	if o.sellers >= 0 {
		cfg.Generator.Sellers = o.sellers
	}
	if o.products >= 0 {
		cfg.Generator.Products = o.products
	}
	if o.salesPerSeller >= 0 {
		cfg.Generator.SalesPerSeller = o.salesPerSeller
	}
	return cfg
}

// startServer starts the HTTP server in a separate goroutine.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown blocks until ctx is done (SIGINT/SIGTERM in main), then
// shuts the server down with a 10 second budget.
func gracefulShutdown(ctx context.Context, server *http.Server) error {
	<-ctx.Done()
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.L().Info().Msg("server exited gracefully")
	return nil
}

// run executes one mode. Errors are fatal for the process.
func run(ctx context.Context, mode string, cfg config.Config) error {
	switch mode {
	case "generate":
		_, err := app.RunGenerate(cfg)
		return err

	case "report":
		_, err := app.RunReport(ctx, cfg)
		return err

	case "all":
		if _, err := app.RunGenerate(cfg); err != nil {
			return err
		}
		_, err := app.RunReport(ctx, cfg)
		return err

	case "api":
		sched := scheduler.NewReportScheduler(cfg.Server.ReportSchedule, func(ctx context.Context) error {
			_, err := app.RunReport(ctx, cfg)
			return err
		})
		if err := sched.Start(ctx); err != nil {
			return err
		}
		server := startServer(app.InitializeApp(cfg, sched), cfg.Server.Port)
		return gracefulShutdown(ctx, server)

	default:
		return errUnknownMode
	}
}

var errUnknownMode = errors.New("unknown mode")

// main is the entry point of salesreport.
//
// Modes (selected via --mode flag):
//   - generate: writes fake sellers, products and per-seller sales files into --dir.
//   - report:   aggregates the files of --dir and writes both reports into --reports.
//   - all:      generate followed by report.
//   - api:      serves the reports as JSON over HTTP; with REPORT_SCHEDULE set the
//     report files are also rewritten on that schedule.
func main() {
	config.LoadConfig()
	logger.Init()

	opts, err := parseFlags(os.Args[1:], config.AppConfig, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}
	cfg := opts.apply(config.AppConfig)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.L().Info().Str("mode", opts.mode).Msg("starting")
	if err := run(ctx, opts.mode, cfg); err != nil {
		logger.L().Fatal().Err(err).Str("mode", opts.mode).Msg("run failed")
	}
	logger.L().Info().Str("mode", opts.mode).Msg("completed successfully")
}
