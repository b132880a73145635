package report

import (
	"io"

	"github.com/guttosm/salesreport/internal/storage"
)

// Fixed header rows of the two reports.
var (
	SellersHeader  = []string{"TipoDocumento", "NúmeroDocumento", "NombreCompleto", "TotalVentas"}
	ProductsHeader = []string{"NombreProducto", "CantidadVendida", "PrecioPromedio"}
)

// WriteSellers writes the header and one line per row.
func WriteSellers(w io.Writer, rows []SellerRow) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.record())
	}
	return storage.WriteRecords(w, SellersHeader, records)
}

// WriteProducts writes the header and one line per row.
func WriteProducts(w io.Writer, rows []ProductRow) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.record())
	}
	return storage.WriteRecords(w, ProductsHeader, records)
}

// WriteSellersFile writes the sellers report to path.
func WriteSellersFile(path string, rows []SellerRow) error {
	return storage.WriteFile(path, func(w io.Writer) error {
		return WriteSellers(w, rows)
	})
}

// WriteProductsFile writes the products report to path.
func WriteProductsFile(path string, rows []ProductRow) error {
	return storage.WriteFile(path, func(w io.Writer) error {
		return WriteProducts(w, rows)
	})
}
