package service

import "github.com/guttosm/salesreport/internal/domain/models"

// Catalog holds the reference data of one run: sellers by document number and
// products by id.
//
// Duplicate keys are resolved last-write-wins: the later record replaces the
// earlier one but keeps the position where the key was first seen, so
// iteration order is the reference-file order of distinct keys.
type Catalog struct {
	sellers      map[string]*models.Seller
	products     map[int]*models.Product
	sellerOrder  []*models.Seller
	productOrder []*models.Product
}

// NewCatalog copies sellers and products into a new catalog. The inputs are
// not retained.
func NewCatalog(sellers []models.Seller, products []models.Product) *Catalog {
	c := &Catalog{
		sellers:  make(map[string]*models.Seller, len(sellers)),
		products: make(map[int]*models.Product, len(products)),
	}

	for i := range sellers {
		s := sellers[i]
		if prev, ok := c.sellers[s.DocumentNumber]; ok {
			*prev = s
			continue
		}
		ptr := &s
		c.sellers[s.DocumentNumber] = ptr
		c.sellerOrder = append(c.sellerOrder, ptr)
	}

	for i := range products {
		p := products[i]
		if prev, ok := c.products[p.ID]; ok {
			*prev = p
			continue
		}
		ptr := &p
		c.products[p.ID] = ptr
		c.productOrder = append(c.productOrder, ptr)
	}

	return c
}

// Seller looks up a seller by exact document number.
func (c *Catalog) Seller(documentNumber string) (*models.Seller, bool) {
	s, ok := c.sellers[documentNumber]
	return s, ok
}

// Product looks up a product by id.
func (c *Catalog) Product(id int) (*models.Product, bool) {
	p, ok := c.products[id]
	return p, ok
}

// Sellers returns the catalog sellers in reference order.
func (c *Catalog) Sellers() []*models.Seller {
	return c.sellerOrder
}

// Products returns the catalog products in reference order.
func (c *Catalog) Products() []*models.Product {
	return c.productOrder
}
