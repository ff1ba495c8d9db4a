// Package models defines data structures for the storefront.
package models

import "github.com/shopspring/decimal"

// Product represents one catalog item. The catalog supplies products in
// display order; that order is the default (unsorted, unfiltered) view.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	OldPrice    decimal.Decimal `json:"oldPrice,omitempty"`
	Rating      float64         `json:"rating,omitempty"`
	Reviews     int             `json:"reviews,omitempty"`
	Category    string          `json:"category,omitempty"`
	Type        string          `json:"type,omitempty"`
	Image       string          `json:"image"`
	Description string          `json:"description,omitempty"`
}

// HasOldPrice reports whether the product carries a struck-through
// original price. A zero value means none was supplied.
func (p Product) HasOldPrice() bool {
	return !p.OldPrice.IsZero()
}
