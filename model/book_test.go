package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want Status
	}{
		{"reading", StatusReading},
		{"currently-reading", StatusReading},
		{"finished", StatusFinished},
		{"read", StatusFinished},
		{"to-read", StatusToRead},
		{"", StatusToRead},
		{"no-such-shelf", StatusToRead},
		{" read ", StatusFinished},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseStatus(tt.raw), "ParseStatus(%q)", tt.raw)
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusReading.Valid())
	assert.True(t, StatusFinished.Valid())
	assert.True(t, StatusToRead.Valid())
	assert.False(t, Status("currently-reading").Valid())
	assert.False(t, Status("").Valid())
}

func TestIsReading(t *testing.T) {
	assert.True(t, (&Book{Status: StatusReading}).IsReading())
	assert.False(t, (&Book{Status: StatusFinished}).IsReading())
	assert.False(t, (&Book{Status: StatusToRead}).IsReading())
}

func TestMatches(t *testing.T) {
	book := &Book{Title: "The Left Hand of Darkness", Author: "Ursula K. Le Guin"}

	assert.True(t, book.Matches("left hand"))
	assert.True(t, book.Matches("LE GUIN"))
	assert.True(t, book.Matches(""))
	assert.False(t, book.Matches("herbert"))
}

func TestNormalizeISBN(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"1234567890123", "1234567890123"},
		{"abc", PlaceholderISBN},
		{`="9780000000002"`, "9780000000002"},
		{"", PlaceholderISBN},
		{"12345678901234", PlaceholderISBN},
		{"123456789012", PlaceholderISBN},
		{"123456789012x", PlaceholderISBN},
		{PlaceholderISBN, PlaceholderISBN},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeISBN(tt.raw), "NormalizeISBN(%q)", tt.raw)
	}
}

func TestRatingToStars(t *testing.T) {
	assert.Equal(t, "☆☆☆☆☆", RatingToStars(0))
	assert.Equal(t, "★★★☆☆", RatingToStars(3))
	assert.Equal(t, "★★★★★", RatingToStars(5))
	assert.Equal(t, "☆☆☆☆☆", RatingToStars(6))
	assert.Equal(t, "☆☆☆☆☆", RatingToStars(-1))
}

func TestParseSortKey(t *testing.T) {
	key, err := ParseSortKey("author")
	require.NoError(t, err)
	assert.Equal(t, SortByAuthor, key)

	_, err = ParseSortKey("isbn")
	assert.Error(t, err)
	_, err = ParseSortKey("")
	assert.Error(t, err)
}

func TestSortValueBlanksZeroes(t *testing.T) {
	book := &Book{Rating: 0, YearPublished: 0}
	assert.Equal(t, "", SortByRating.SortValue(book))
	assert.Equal(t, "", SortByYear.SortValue(book))

	book = &Book{Rating: 4, YearPublished: 1965}
	assert.Equal(t, "4", SortByRating.SortValue(book))
	assert.Equal(t, "1965", SortByYear.SortValue(book))
}
