package model

import "strings"

// PlaceholderISBN stands in for any ISBN that failed validation.
const PlaceholderISBN = "0000000000000"

// NormalizeISBN strips the ="..." quoting some spreadsheet exports wrap
// around ISBN columns and validates the remainder. Anything that is not
// exactly 13 digits becomes the all-zero placeholder.
func NormalizeISBN(raw string) string {
	cleaned := strings.Trim(raw, `="`)
	if len(cleaned) != 13 {
		return PlaceholderISBN
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return PlaceholderISBN
		}
	}
	return cleaned
}

// RatingToStars renders a 0-5 rating as a five-star gauge. Out-of-range
// values render as unrated.
func RatingToStars(rating int) string {
	if rating < 0 || rating > 5 {
		return "☆☆☆☆☆"
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
