package view

import (
	"math"
	"strings"
)

// The storefront draws the half indicator with the same outline glyph it
// uses for empty stars.
const (
	starFull  = "★"
	starHalf  = "☆"
	starEmpty = "☆"
)

// Stars maps a rating to a fixed-width 5-glyph star string: floor(r)
// filled stars, one half indicator when the fraction reaches 0.5 and
// fewer than 5 stars are filled, then empty stars up to length 5.
func Stars(rating float64) string {
	fullStars := int(math.Floor(rating))
	if fullStars < 0 {
		fullStars = 0
	}
	if fullStars > 5 {
		fullStars = 5
	}

	var b strings.Builder
	length := 0
	for i := 0; i < fullStars; i++ {
		b.WriteString(starFull)
		length++
	}
	if math.Mod(rating, 1) >= 0.5 && fullStars < 5 {
		b.WriteString(starHalf)
		length++
	}
	for length < 5 {
		b.WriteString(starEmpty)
		length++
	}
	return b.String()
}
