package view

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestStars(t *testing.T) {
	tests := []struct {
		name     string
		rating   float64
		expected string
	}{
		{name: "zero", rating: 0, expected: "☆☆☆☆☆"},
		{name: "below half", rating: 0.4, expected: "☆☆☆☆☆"},
		{name: "half", rating: 0.5, expected: "☆☆☆☆☆"},
		{name: "one and a half", rating: 1.5, expected: "★☆☆☆☆"},
		{name: "two", rating: 2, expected: "★★☆☆☆"},
		{name: "four point seven", rating: 4.7, expected: "★★★★☆"},
		{name: "four point four", rating: 4.4, expected: "★★★★☆"},
		{name: "five", rating: 5, expected: "★★★★★"},
		{name: "above five keeps five filled", rating: 5.9, expected: "★★★★★"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stars(tt.rating); got != tt.expected {
				t.Errorf("Stars(%v) = %q, want %q", tt.rating, got, tt.expected)
			}
		})
	}
}

func TestStarsFixedWidthAndOrdering(t *testing.T) {
	for r := 0.0; r <= 5.0; r += 0.1 {
		got := Stars(r)
		if utf8.RuneCountInString(got) != 5 {
			t.Fatalf("Stars(%v) = %q, want 5 glyphs", r, got)
		}
		// Filled glyphs must all precede outline glyphs.
		if first := strings.Index(got, starEmpty); first >= 0 && strings.Contains(got[first:], starFull) {
			t.Fatalf("Stars(%v) = %q, filled glyph after outline glyph", r, got)
		}
	}
}
