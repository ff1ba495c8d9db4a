// Package confirm composes the order confirmation page and completes
// the simulated checkout by clearing the cart.
package confirm

import (
	"github.com/abokichi/storefront/cart"
	"github.com/abokichi/storefront/catalog"
	"github.com/abokichi/storefront/surface"
)

// fallbackLabel stands in when the ordered product cannot be resolved.
const fallbackLabel = "your items"

// placedOnFormat renders the order timestamp in the confirmation line.
const placedOnFormat = "January 2, 2006 at 3:04 PM"

// Surfaces lists the confirmation mount points. Nil fields are skipped.
type Surfaces struct {
	ProductName surface.Surface
	Summary     surface.Lines
}

// Compose renders the confirmation for the product id from the
// navigation context (0 when absent). The cart counter is reset
// unconditionally, whether or not the product resolves. When a
// persisted order exists, a "Placed on" line is appended to the
// summary; when none does, nothing is.
func Compose(cat *catalog.Catalog, cartStore *cart.Store, id int, s Surfaces) {
	name := fallbackLabel
	if id != 0 {
		if product, ok := cat.ByID(id); ok {
			name = product.Name
		}
	}
	if s.ProductName != nil {
		s.ProductName.SetText(name)
	}

	// Arriving on the confirmation page completes the simulated
	// checkout.
	cartStore.SetCount(0)

	if order, ok := cartStore.LastOrder(); ok && s.Summary != nil {
		s.Summary.AppendLine("Placed on " + order.PlacedAt.Format(placedOnFormat))
	}
}
