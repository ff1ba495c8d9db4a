// Package catalog holds the ordered product collection and resolves
// products by identifier for the detail and confirmation pages.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abokichi/storefront/models"
	lru "github.com/hashicorp/golang-lru/v2"
)

// ErrNoProducts is returned when resolution is attempted against an
// empty catalog.
var ErrNoProducts = errors.New("catalog: no products")

const lookupCacheSize = 128

// Catalog is the read-only, ordered product collection. Its iteration
// order is the default (unsorted, unfiltered) display order.
type Catalog struct {
	products []models.Product
	lookups  *lru.Cache[int, int]
}

// New validates the supplied products and builds the catalog. Duplicate
// identifiers are rejected.
func New(products []models.Product) (*Catalog, error) {
	seen := make(map[int]struct{}, len(products))
	for _, p := range products {
		if err := ValidateProduct(p); err != nil {
			return nil, err
		}
		if _, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	lookups, err := lru.New[int, int](lookupCacheSize)
	if err != nil {
		return nil, fmt.Errorf("build lookup cache: %w", err)
	}

	return &Catalog{
		products: products,
		lookups:  lookups,
	}, nil
}

// ValidateProduct ensures a supplied record carries the required fields.
func ValidateProduct(p models.Product) error {
	if p.ID <= 0 {
		return fmt.Errorf("product missing positive id")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("product %d missing name", p.ID)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("product %d has negative price", p.ID)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("product %d rating %v outside [0,5]", p.ID, p.Rating)
	}
	return nil
}

// All returns the products in display order. Callers treat the slice as
// read-only.
func (c *Catalog) All() []models.Product {
	return c.products
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// First returns the first product in display order.
func (c *Catalog) First() (models.Product, bool) {
	if len(c.products) == 0 {
		return models.Product{}, false
	}
	return c.products[0], true
}

// ByID returns the product with the exact identifier.
func (c *Catalog) ByID(id int) (models.Product, bool) {
	if idx, ok := c.lookups.Get(id); ok {
		return c.products[idx], true
	}
	for idx, p := range c.products {
		if p.ID == id {
			c.lookups.Add(id, idx)
			return p, true
		}
	}
	return models.Product{}, false
}

// Resolve applies the detail-page fallback chain: an id of 0 means none
// was supplied and yields the first product, as does a resolution miss.
// Only an empty catalog fails.
func (c *Catalog) Resolve(id int) (models.Product, error) {
	if id != 0 {
		if p, ok := c.ByID(id); ok {
			return p, nil
		}
	}
	first, ok := c.First()
	if !ok {
		return models.Product{}, ErrNoProducts
	}
	return first, nil
}
