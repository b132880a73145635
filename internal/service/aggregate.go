package service

import (
	"github.com/shopspring/decimal"

	"github.com/guttosm/salesreport/internal/domain/models"
	"github.com/guttosm/salesreport/internal/logger"
)

// Aggregate folds sales into the catalog totals.
//
// For every sale the seller is resolved by document number and the product by
// id. When both resolve, the seller gains price × quantity and the product
// gains quantity. Otherwise the sale changes nothing and is only counted.
//
// Totals are exact decimals, so the order of sales does not affect them.
func Aggregate(c *Catalog, sales []models.Sale) models.AggregateStats {
	var st models.AggregateStats

	for _, sale := range sales {
		seller, ok := c.Seller(sale.SellerDocumentNumber)
		if !ok {
			st.DroppedUnknownSeller++
			logger.L().Debug().Str("seller", sale.SellerDocumentNumber).Int("product_id", sale.ProductID).Msg("sale dropped: unknown seller")
			continue
		}
		product, ok := c.Product(sale.ProductID)
		if !ok {
			st.DroppedUnknownProduct++
			logger.L().Debug().Str("seller", sale.SellerDocumentNumber).Int("product_id", sale.ProductID).Msg("sale dropped: unknown product")
			continue
		}

		seller.AddSale(product.Price.Mul(decimal.NewFromInt(int64(sale.Quantity))))
		product.AddSold(sale.Quantity)

		st.Applied++
		st.QuantityApplied += sale.Quantity
	}

	return st
}
