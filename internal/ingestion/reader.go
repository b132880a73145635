package ingestion

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/salesreport/internal/domain/models"
	"github.com/guttosm/salesreport/internal/logger"
	"github.com/guttosm/salesreport/internal/storage"
)

// ctxCheckEvery is how many lines are read between context checks.
const ctxCheckEvery = 256

// readRecords opens path, discards the first line without looking at it and
// hands every following line, split on ';', to fn together with its line
// number. Quotes carry no meaning; every line is independent of the others.
func readRecords(ctx context.Context, path string, fn func(line int, rec []string)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := ctx.Err(); err != nil {
		return err
	}

	return storage.ScanLines(f, func(line int, rec []string) error {
		if line%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		// Header: always skipped, never validated.
		if line == 1 {
			return nil
		}
		fn(line, rec)
		return nil
	})
}

// readAll parses every data line of path with parse. Lines that fail to parse
// are counted and skipped; only I/O failures are returned.
func readAll[T any](ctx context.Context, path, kind string, parse func([]string) (T, error)) ([]T, models.FileStats, error) {
	stats := models.FileStats{Files: 1}
	base := filepath.Base(path)
	var out []T

	err := readRecords(ctx, path, func(line int, rec []string) {
		v, err := parse(rec)
		if err != nil {
			stats.Skipped++
			ev := logger.L().Debug()
			if errors.Is(err, ErrInvalidPrice) {
				ev = logger.L().Warn().Str("product", field(rec, 1))
			}
			ev.Str("kind", kind).Str("file", base).Int("line", line).Err(err).Msg("line skipped")
			return
		}
		stats.Parsed++
		out = append(out, v)
	})
	if err != nil {
		return nil, stats, fmt.Errorf("%s file %s: %w", kind, path, err)
	}
	return out, stats, nil
}

func field(rec []string, i int) string {
	if i < len(rec) {
		return strings.TrimSpace(rec[i])
	}
	return ""
}

// ReadSellers reads the sellers reference file.
func ReadSellers(ctx context.Context, path string) ([]models.Seller, models.FileStats, error) {
	return readAll(ctx, path, "sellers", ParseSeller)
}

// ReadProducts reads the products reference file. Products whose price does
// not parse are skipped with a warning naming the product.
func ReadProducts(ctx context.Context, path string) ([]models.Product, models.FileStats, error) {
	return readAll(ctx, path, "products", ParseProduct)
}

// ReadSalesFile reads one per-seller sales file.
func ReadSalesFile(ctx context.Context, path string) ([]models.Sale, models.FileStats, error) {
	return readAll(ctx, path, "sales", ParseSale)
}

// SalesFiles lists the files in dir named prefix + <digits> + suffix, in
// lexical order. A missing directory yields no files and no error.
func SalesFiles(dir, prefix, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("list sales dir %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || len(name) <= len(prefix)+len(suffix) {
			continue
		}
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, suffix) {
			continue
		}
		if isDigits(name[len(prefix) : len(name)-len(suffix)]) {
			files = append(files, filepath.Join(dir, name))
		}
	}
	return files, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// ReadSalesDir reads every sales file of dir.
//
// Behavior:
//   - Files are read concurrently, at most parallel at a time (0 = NumCPU).
//   - Each file fills its own slice; slices are concatenated in file-name
//     order so the returned sales do not depend on scheduling.
//   - A file that cannot be opened or read cancels the rest and is returned.
//   - A missing or empty directory returns no sales and no error.
func ReadSalesDir(ctx context.Context, dir, prefix, suffix string, parallel int) ([]models.Sale, models.FileStats, error) {
	var total models.FileStats

	files, err := SalesFiles(dir, prefix, suffix)
	if err != nil {
		return nil, total, err
	}
	if len(files) == 0 {
		logger.L().Info().Str("dir", dir).Msg("no sales files found")
		return nil, total, nil
	}

	if parallel <= 0 {
		parallel = runtime.NumCPU()
	}

	results := make([][]models.Sale, len(files))
	stats := make([]models.FileStats, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, f := range files {
		g.Go(func() error {
			start := time.Now()
			sales, st, err := ReadSalesFile(gctx, f)
			if err != nil {
				logger.L().Error().Str("file", filepath.Base(f)).Err(err).Msg("sales file failed")
				return err
			}
			results[i] = sales
			stats[i] = st
			logger.L().Debug().
				Int("idx", i+1).
				Int("total", len(files)).
				Str("file", filepath.Base(f)).
				Int("rows", st.Parsed).
				Int("skipped", st.Skipped).
				Dur("elapsed", time.Since(start)).
				Msg("sales file done")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, total, err
	}

	var out []models.Sale
	for i := range files {
		out = append(out, results[i]...)
		total.Add(stats[i])
	}
	return out, total, nil
}
