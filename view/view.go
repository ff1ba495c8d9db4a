// Package view implements the catalog view-state pipeline: filtering by
// facet selections, sorting by a selected key, and the curated layout
// arrangement. All functions are pure and never mutate their input.
package view

import (
	"sort"

	"github.com/abokichi/storefront/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Selection holds the active facet selections. An empty slice in either
// dimension means "no constraint on that dimension".
type Selection struct {
	Categories []string
	Types      []string
}

// IsEmpty reports whether no facet is selected in either dimension.
func (s Selection) IsEmpty() bool {
	return len(s.Categories) == 0 && len(s.Types) == 0
}

// SortMode selects the ordering applied to the filtered sequence.
type SortMode string

// Supported sort modes. Anything unrecognized falls back to alphabetical.
const (
	SortPriceLow     SortMode = "price-low"
	SortPriceHigh    SortMode = "price-high"
	SortRating       SortMode = "rating"
	SortAlphabetical SortMode = "alphabetical"
)

// ParseSortMode maps a raw control value to a SortMode, defaulting to
// alphabetical for empty or unrecognized values.
func ParseSortMode(raw string) SortMode {
	switch SortMode(raw) {
	case SortPriceLow, SortPriceHigh, SortRating, SortAlphabetical:
		return SortMode(raw)
	default:
		return SortAlphabetical
	}
}

// Filter keeps a product iff it matches the selection in both dimensions.
// With nothing selected the identity filter applies and the input is
// returned unchanged.
func Filter(items []models.Product, sel Selection) []models.Product {
	if sel.IsEmpty() {
		return items
	}

	filtered := make([]models.Product, 0, len(items))
	for _, product := range items {
		categoryMatch := len(sel.Categories) == 0 || contains(sel.Categories, product.Category)
		typeMatch := len(sel.Types) == 0 || contains(sel.Types, product.Type)
		if categoryMatch && typeMatch {
			filtered = append(filtered, product)
		}
	}
	return filtered
}

// Sort returns a new sequence ordered by the given mode. The sort is
// stable: products with equal keys keep their relative input order.
func Sort(items []models.Product, mode SortMode) []models.Product {
	sorted := make([]models.Product, len(items))
	copy(sorted, items)

	switch mode {
	case SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price.LessThan(sorted[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[j].Price.LessThan(sorted[i].Price)
		})
	case SortRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating > sorted[j].Rating
		})
	default:
		collator := collate.New(language.English)
		sort.SliceStable(sorted, func(i, j int) bool {
			return collator.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	}
	return sorted
}

// Compute runs the full sortable-listing pipeline: filter, then sort.
// The returned sequence is what the grid renderer consumes; its length
// is the post-filter cardinality shown in the count display.
func Compute(items []models.Product, sel Selection, mode SortMode) []models.Product {
	return Sort(Filter(items, sel), mode)
}

// ComputeCurated runs the curated-layout pipeline: filter, then the
// no-repeat arrangement. Curated layout and sorting are mutually
// exclusive; when a sort control exists, Compute is used instead.
func ComputeCurated(items []models.Product, sel Selection) []models.Product {
	return Arrange(Filter(items, sel))
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
