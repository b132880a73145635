package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/guttosm/salesreport/internal/storage"
)

// Sheet names of the workbook export.
const (
	SellersSheet  = "Vendedores"
	ProductsSheet = "Productos"
)

// WriteWorkbook writes both reports as an XLSX workbook with one sheet each.
// Header and row order match the delimited reports.
func WriteWorkbook(w io.Writer, sellers []SellerRow, products []ProductRow) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SellersSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(ProductsSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	if err := setRows(f, SellersSheet, SellersHeader, len(sellers), func(i int) []any {
		r := sellers[i]
		return []any{r.DocumentType, r.DocumentNumber, r.FullName, r.TotalSales}
	}); err != nil {
		return err
	}
	if err := setRows(f, ProductsSheet, ProductsHeader, len(products), func(i int) []any {
		r := products[i]
		return []any{r.Name, r.QuantitySold, r.AveragePrice}
	}); err != nil {
		return err
	}

	return f.Write(w)
}

func setRows(f *excelize.File, sheet string, header []string, n int, row func(int) []any) error {
	values := make([]any, len(header))
	for i, h := range header {
		values[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &values); err != nil {
		return fmt.Errorf("%s header: %w", sheet, err)
	}

	for i := 0; i < n; i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		rec := row(i)
		if err := f.SetSheetRow(sheet, cell, &rec); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// WriteWorkbookFile writes the workbook to path.
func WriteWorkbookFile(path string, sellers []SellerRow, products []ProductRow) error {
	return storage.WriteFile(path, func(w io.Writer) error {
		return WriteWorkbook(w, sellers, products)
	})
}
