package generator

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/shopspring/decimal"

	"github.com/guttosm/salesreport/internal/domain/models"
	"github.com/guttosm/salesreport/internal/logger"
	"github.com/guttosm/salesreport/internal/storage"
)

// Header rows of the generated input files. Readers skip them unseen.
var (
	SellersHeader  = []string{"TipoDocumento", "NúmeroDocumento", "NombresVendedor", "ApellidosVendedor"}
	ProductsHeader = []string{"IDProducto", "NombreProducto", "PrecioPorUnidadProducto"}
	SalesHeader    = []string{"NúmeroDocumentoVendedor", "IDProducto", "CantidadProductoVendido"}
)

var pricePrinter = message.NewPrinter(language.Spanish)

// FormatPrice renders a price the way the products file stores it: Spanish
// convention, ',' as decimal separator, two decimals.
func FormatPrice(d decimal.Decimal) string {
	return pricePrinter.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

// WriteSellers writes the sellers reference file content.
func WriteSellers(w io.Writer, sellers []models.Seller) error {
	records := make([][]string, 0, len(sellers))
	for _, s := range sellers {
		records = append(records, []string{s.DocumentType, s.DocumentNumber, s.FirstName, s.LastName})
	}
	return storage.WriteRecords(w, SellersHeader, records)
}

// WriteProducts writes the products reference file content.
func WriteProducts(w io.Writer, products []models.Product) error {
	records := make([][]string, 0, len(products))
	for _, p := range products {
		records = append(records, []string{strconv.Itoa(p.ID), p.Name, FormatPrice(p.Price)})
	}
	return storage.WriteRecords(w, ProductsHeader, records)
}

// WriteSales writes one per-seller sales file content.
func WriteSales(w io.Writer, sales []models.Sale) error {
	records := make([][]string, 0, len(sales))
	for _, s := range sales {
		records = append(records, []string{s.SellerDocumentNumber, strconv.Itoa(s.ProductID), strconv.Itoa(s.Quantity)})
	}
	return storage.WriteRecords(w, SalesHeader, records)
}

// Layout names the files of a generated data set.
type Layout struct {
	SellersPath  string
	ProductsPath string
	SalesDir     string
	SalesPrefix  string
	SalesSuffix  string
}

// SalesPath is the file holding the sales of documentNumber.
func (l Layout) SalesPath(documentNumber string) string {
	return filepath.Join(l.SalesDir, l.SalesPrefix+documentNumber+l.SalesSuffix)
}

// WriteAll writes the reference files and one sales file per seller.
func WriteAll(l Layout, d Data) error {
	if err := storage.WriteFile(l.ProductsPath, func(w io.Writer) error {
		return WriteProducts(w, d.Products)
	}); err != nil {
		return fmt.Errorf("write products: %w", err)
	}

	if err := storage.WriteFile(l.SellersPath, func(w io.Writer) error {
		return WriteSellers(w, d.Sellers)
	}); err != nil {
		return fmt.Errorf("write sellers: %w", err)
	}

	for _, ss := range d.Sales {
		path := l.SalesPath(ss.DocumentNumber)
		if err := storage.WriteFile(path, func(w io.Writer) error {
			return WriteSales(w, ss.Sales)
		}); err != nil {
			return fmt.Errorf("write sales %s: %w", ss.DocumentNumber, err)
		}
	}

	logger.L().Info().
		Int("sellers", len(d.Sellers)).
		Int("products", len(d.Products)).
		Int("sales_files", len(d.Sales)).
		Str("dir", l.SalesDir).
		Msg("input files written")
	return nil
}
