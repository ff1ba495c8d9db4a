package view

import (
	"strings"

	"github.com/abokichi/storefront/models"
)

// Image tags the curated arrangement recognizes. Products whose image
// reference carries none of these tags never enter the arrangement.
var arrangeTags = []string{"okazu-set", "chili-miso", "instant-miso", "matcha"}

// Row 2 rotates the tag order so no tag lands in the same column twice.
var arrangeRowTwo = []string{"instant-miso", "matcha", "okazu-set", "chili-miso"}

// Arrange builds the curated 8-slot grid for a fixed 4-column layout:
// row 1 takes the first member of each tag group in tag order, row 2
// takes the rotated order preferring each group's second member and
// falling back to repeating its first. Empty groups are skipped.
func Arrange(items []models.Product) []models.Product {
	groups := make(map[string][]models.Product, len(arrangeTags))
	for _, tag := range arrangeTags {
		for _, product := range items {
			if strings.Contains(product.Image, tag) {
				groups[tag] = append(groups[tag], product)
			}
		}
	}

	arranged := make([]models.Product, 0, 2*len(arrangeTags))
	for _, tag := range arrangeTags {
		if group := groups[tag]; len(group) > 0 {
			arranged = append(arranged, group[0])
		}
	}
	for _, tag := range arrangeRowTwo {
		group := groups[tag]
		switch {
		case len(group) > 1:
			arranged = append(arranged, group[1])
		case len(group) > 0:
			arranged = append(arranged, group[0])
		}
	}
	return arranged
}
