package report

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestWriteWorkbook(t *testing.T) {
	sellers := []SellerRow{
		{DocumentType: "CC", DocumentNumber: "1", FullName: "Ana López", TotalSales: "300.00"},
		{DocumentType: "TI", DocumentNumber: "2", FullName: "Luis Pérez", TotalSales: "0.00"},
	}
	products := []ProductRow{{Name: "Laptop", QuantitySold: 3, AveragePrice: "133.33"}}

	var buf bytes.Buffer
	if err := WriteWorkbook(&buf, sellers, products); err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(SellersSheet)
	if err != nil {
		t.Fatalf("sellers sheet: %v", err)
	}
	if len(rows) != 3 || rows[0][1] != "NúmeroDocumento" || rows[1][2] != "Ana López" || rows[2][3] != "0.00" {
		t.Fatalf("unexpected sellers sheet: %v", rows)
	}

	rows, err = f.GetRows(ProductsSheet)
	if err != nil {
		t.Fatalf("products sheet: %v", err)
	}
	if len(rows) != 2 || rows[1][0] != "Laptop" || rows[1][1] != "3" || rows[1][2] != "133.33" {
		t.Fatalf("unexpected products sheet: %v", rows)
	}
}

func TestWriteWorkbookFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reportes", "reportes.xlsx")
	if err := WriteWorkbookFile(path, nil, nil); err != nil {
		t.Fatalf("WriteWorkbookFile: %v", err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = f.Close() }()
	if got := f.GetSheetList(); len(got) != 2 || got[0] != SellersSheet || got[1] != ProductsSheet {
		t.Fatalf("sheets=%v", got)
	}
}
