package config

import (
	"log"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	REPORT_SCHEDULE=
//	DATA_DIR=data
//	REPORTS_DIR=reportes
//	SELLERS_FILE=vendedores.txt
//	PRODUCTS_FILE=productos.txt
//	SALES_FILE_PREFIX=Vendedor_
//	SALES_FILE_SUFFIX=.txt
//	SELLERS_REPORT=reporte_vendedores.csv
//	PRODUCTS_REPORT=reporte_productos.csv
//	XLSX_REPORT=
//	READ_PARALLEL=0
//	GEN_SELLERS=5
//	GEN_PRODUCTS=100
//	GEN_SALES_PER_SELLER=10
//	GEN_SEED=0
type Config struct {
	Server    ServerConfig    // HTTP server configuration
	Files     FilesConfig     // Input/output file layout
	Generator GeneratorConfig // Fake data generation
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port           string // The TCP port the HTTP server will listen on (e.g., "8080")
	ReportSchedule string // Interval ("10m") or cron expression to rewrite the reports while serving; empty = off
}

// FilesConfig describes where input files are read from and reports written to.
//
// Fields:
//   - DataDir: directory holding the reference files and the sales files.
//   - ReportsDir: directory the reports are written to.
//   - SellersFile / ProductsFile: reference file names inside DataDir.
//   - SalesPrefix / SalesSuffix: a sales file is named SalesPrefix + documentNumber + SalesSuffix.
//   - SellersReport / ProductsReport: report file names inside ReportsDir.
//   - XlsxReport: optional workbook with both reports inside ReportsDir (empty = disabled).
//   - ReadParallel: how many sales files are read at once (0 = NumCPU).
type FilesConfig struct {
	DataDir        string
	ReportsDir     string
	SellersFile    string
	ProductsFile   string
	SalesPrefix    string
	SalesSuffix    string
	SellersReport  string
	ProductsReport string
	XlsxReport     string
	ReadParallel   int
}

// SellersPath is the full path of the sellers reference file.
func (f FilesConfig) SellersPath() string { return filepath.Join(f.DataDir, f.SellersFile) }

// ProductsPath is the full path of the products reference file.
func (f FilesConfig) ProductsPath() string { return filepath.Join(f.DataDir, f.ProductsFile) }

// SellersReportPath is the full path of the sellers report.
func (f FilesConfig) SellersReportPath() string {
	return filepath.Join(f.ReportsDir, f.SellersReport)
}

// ProductsReportPath is the full path of the products report.
func (f FilesConfig) ProductsReportPath() string {
	return filepath.Join(f.ReportsDir, f.ProductsReport)
}

// XlsxReportPath is the full path of the workbook export, or "" when disabled.
func (f FilesConfig) XlsxReportPath() string {
	if f.XlsxReport == "" {
		return ""
	}
	return filepath.Join(f.ReportsDir, f.XlsxReport)
}

// GeneratorConfig sizes the generated data set. Seed 0 means "derive from the clock".
type GeneratorConfig struct {
	Sellers        int
	Products       int
	SalesPerSeller int
	Seed           uint64
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are empty, validateConfig() terminates the app.
func LoadConfig() {
	setDefaults()

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:           viper.GetString("SERVER_PORT"),
			ReportSchedule: viper.GetString("REPORT_SCHEDULE"),
		},
		Files: FilesConfig{
			DataDir:        viper.GetString("DATA_DIR"),
			ReportsDir:     viper.GetString("REPORTS_DIR"),
			SellersFile:    viper.GetString("SELLERS_FILE"),
			ProductsFile:   viper.GetString("PRODUCTS_FILE"),
			SalesPrefix:    viper.GetString("SALES_FILE_PREFIX"),
			SalesSuffix:    viper.GetString("SALES_FILE_SUFFIX"),
			SellersReport:  viper.GetString("SELLERS_REPORT"),
			ProductsReport: viper.GetString("PRODUCTS_REPORT"),
			XlsxReport:     viper.GetString("XLSX_REPORT"),
			ReadParallel:   viper.GetInt("READ_PARALLEL"),
		},
		Generator: GeneratorConfig{
			Sellers:        viper.GetInt("GEN_SELLERS"),
			Products:       viper.GetInt("GEN_PRODUCTS"),
			SalesPerSeller: viper.GetInt("GEN_SALES_PER_SELLER"),
			Seed:           viper.GetUint64("GEN_SEED"),
		},
	}

	validateConfig()
}

func setDefaults() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("REPORT_SCHEDULE", "")

	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("REPORTS_DIR", "reportes")
	viper.SetDefault("SELLERS_FILE", "vendedores.txt")
	viper.SetDefault("PRODUCTS_FILE", "productos.txt")
	viper.SetDefault("SALES_FILE_PREFIX", "Vendedor_")
	viper.SetDefault("SALES_FILE_SUFFIX", ".txt")
	viper.SetDefault("SELLERS_REPORT", "reporte_vendedores.csv")
	viper.SetDefault("PRODUCTS_REPORT", "reporte_productos.csv")
	viper.SetDefault("XLSX_REPORT", "")
	viper.SetDefault("READ_PARALLEL", 0)

	viper.SetDefault("GEN_SELLERS", 5)
	viper.SetDefault("GEN_PRODUCTS", 100)
	viper.SetDefault("GEN_SALES_PER_SELLER", 10)
	viper.SetDefault("GEN_SEED", 0)
}

// missingKeys lists the critical settings of cfg that are empty or out of range.
func missingKeys(cfg Config) []string {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if cfg.Files.DataDir == "" {
		missing = append(missing, "DATA_DIR")
	}
	if cfg.Files.ReportsDir == "" {
		missing = append(missing, "REPORTS_DIR")
	}
	if cfg.Files.SellersFile == "" {
		missing = append(missing, "SELLERS_FILE")
	}
	if cfg.Files.ProductsFile == "" {
		missing = append(missing, "PRODUCTS_FILE")
	}
	if cfg.Files.SalesPrefix == "" && cfg.Files.SalesSuffix == "" {
		missing = append(missing, "SALES_FILE_PREFIX|SALES_FILE_SUFFIX")
	}
	if cfg.Files.SellersReport == "" {
		missing = append(missing, "SELLERS_REPORT")
	}
	if cfg.Files.ProductsReport == "" {
		missing = append(missing, "PRODUCTS_REPORT")
	}
	if cfg.Files.ReadParallel < 0 {
		missing = append(missing, "READ_PARALLEL")
	}
	if cfg.Generator.Sellers < 0 || cfg.Generator.Products < 0 || cfg.Generator.SalesPerSeller < 0 {
		missing = append(missing, "GEN_*")
	}

	return missing
}

// validateConfig terminates the application when critical settings are missing.
func validateConfig() {
	if missing := missingKeys(AppConfig); len(missing) > 0 {
		log.Fatalf("missing or invalid configuration: %v\n", missing)
	}
}
