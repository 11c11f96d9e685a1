package model

import (
	"strconv"

	"github.com/pkg/errors"
)

// SortKey names one sortable book attribute. The set is closed: sorting
// always goes through an explicit accessor, never a field lookup by name.
type SortKey string

const (
	SortByAuthor    SortKey = "author"
	SortByTitle     SortKey = "title"
	SortByRating    SortKey = "rating"
	SortByPublisher SortKey = "publisher"
	SortByYear      SortKey = "year_published"
	SortByDateRead  SortKey = "date_read"
	SortByDateAdded SortKey = "date_added"
	SortByTags      SortKey = "tags"
	SortByISBN      SortKey = "isbn13"
	SortByReview    SortKey = "review"
)

// sortAccessors stringifies each attribute the way the list orders it:
// case-sensitive lexicographic, with zero numerics as the empty string so
// unrated and year-unknown books group together.
var sortAccessors = map[SortKey]func(*Book) string{
	SortByAuthor:    func(b *Book) string { return b.Author },
	SortByTitle:     func(b *Book) string { return b.Title },
	SortByPublisher: func(b *Book) string { return b.Publisher },
	SortByDateRead:  func(b *Book) string { return b.DateRead },
	SortByDateAdded: func(b *Book) string { return b.DateAdded },
	SortByTags:      func(b *Book) string { return b.Tags },
	SortByISBN:      func(b *Book) string { return b.ISBN13 },
	SortByReview:    func(b *Book) string { return b.Review },
	SortByRating: func(b *Book) string {
		if b.Rating == 0 {
			return ""
		}
		return strconv.Itoa(b.Rating)
	},
	SortByYear: func(b *Book) string {
		if b.YearPublished == 0 {
			return ""
		}
		return strconv.Itoa(b.YearPublished)
	},
}

// ParseSortKey validates a raw attribute name against the closed set.
func ParseSortKey(raw string) (SortKey, error) {
	key := SortKey(raw)
	if _, ok := sortAccessors[key]; !ok {
		return "", errors.Errorf("unknown sort attribute: %q", raw)
	}
	return key, nil
}

// SortValue returns the string the collection orders by for this key.
func (k SortKey) SortValue(b *Book) string {
	accessor, ok := sortAccessors[k]
	if !ok {
		return ""
	}
	return accessor(b)
}

// SortKeys lists the sortable attributes in display-column order.
func SortKeys() []SortKey {
	return []SortKey{
		SortByAuthor, SortByTitle, SortByRating, SortByPublisher,
		SortByYear, SortByDateRead, SortByDateAdded, SortByTags,
		SortByISBN, SortByReview,
	}
}
