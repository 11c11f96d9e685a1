package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomelist/tomelist/model"
)

func seededStore() *Store {
	s := NewStore("unused.csv")
	s.SetBooks(testBooks())
	return s
}

func TestNextID(t *testing.T) {
	s := NewStore("unused.csv")
	assert.Equal(t, 1, s.NextID(), "empty collection starts at 1")

	s.SetBooks(testBooks()) // ids 1, 2, 5
	assert.Equal(t, 6, s.NextID(), "one past the highest existing id")
}

func TestAddAssignsNextID(t *testing.T) {
	s := seededStore()
	added := s.Add(&model.Book{Title: "New", Author: "Someone", Status: model.StatusToRead})

	assert.Equal(t, 6, added.ID)
	assert.Same(t, added, s.Find(6))
	assert.True(t, s.Dirty())
}

func TestUpdate(t *testing.T) {
	s := seededStore()
	updated := *s.Find(2)
	updated.Rating = 4

	require.NoError(t, s.Update(&updated))
	assert.Equal(t, 4, s.Find(2).Rating)

	err := s.Update(&model.Book{ID: 99})
	assert.True(t, errors.Is(err, ErrBookNotFound))
}

func TestRemove(t *testing.T) {
	s := seededStore()
	require.NoError(t, s.Remove(2))
	assert.Nil(t, s.Find(2))
	assert.Equal(t, 2, s.Len())

	err := s.Remove(2)
	assert.True(t, errors.Is(err, ErrBookNotFound))
}

func TestFind(t *testing.T) {
	s := seededStore()
	require.NotNil(t, s.Find(5))
	assert.Equal(t, "Piranesi", s.Find(5).Title)
	assert.Nil(t, s.Find(99))
}

func TestSearch(t *testing.T) {
	s := seededStore()

	assert.Len(t, s.Search("gibson"), 1)
	assert.Len(t, s.Search("DUNE"), 1)
	assert.Len(t, s.Search(""), 3)
	assert.Empty(t, s.Search("tolkien"))
}

func readingPrefixLen(books []*model.Book) int {
	n := 0
	for _, b := range books {
		if !b.IsReading() {
			break
		}
		n++
	}
	return n
}

func TestSortPartitionsReadingFirst(t *testing.T) {
	s := seededStore()

	for _, key := range model.SortKeys() {
		books := s.Sort(key, false)
		require.Len(t, books, 3)

		prefix := readingPrefixLen(books)
		assert.Equal(t, 1, prefix, "key %s: the one reading book leads", key)
		for _, b := range books[prefix:] {
			assert.False(t, b.IsReading(), "key %s: no reading book after the partition", key)
		}
	}
}

func TestSortOrdersWithinGroups(t *testing.T) {
	s := seededStore()

	books := s.Sort(model.SortByAuthor, false)
	// Gibson (reading) first, then Clarke < Herbert.
	assert.Equal(t, []int{2, 5, 1}, ids(books))

	books = s.Sort(model.SortByAuthor, true)
	assert.Equal(t, []int{2, 1, 5}, ids(books))
}

func TestSortIsIdempotent(t *testing.T) {
	s := seededStore()
	first := ids(s.Sort(model.SortByTitle, false))
	second := ids(s.Sort(model.SortByTitle, false))
	assert.Equal(t, first, second)
}

func TestSortIsStable(t *testing.T) {
	s := NewStore("unused.csv")
	s.SetBooks([]*model.Book{
		{ID: 1, Title: "Same", Author: "Same", Status: model.StatusToRead},
		{ID: 2, Title: "Same", Author: "Same", Status: model.StatusToRead},
		{ID: 3, Title: "Same", Author: "Same", Status: model.StatusToRead},
	})

	assert.Equal(t, []int{1, 2, 3}, ids(s.Sort(model.SortByTitle, false)))
	assert.Equal(t, []int{1, 2, 3}, ids(s.Sort(model.SortByTitle, true)))
}

func TestSortByTogglesDirection(t *testing.T) {
	s := seededStore()

	// A fresh key sorts ascending; repeating it flips the direction;
	// switching keys resets to ascending.
	assert.Equal(t, []int{2, 1, 5}, ids(s.SortBy(model.SortByTitle)))
	assert.Equal(t, []int{2, 5, 1}, ids(s.SortBy(model.SortByTitle)))
	assert.Equal(t, []int{2, 1, 5}, ids(s.SortBy(model.SortByTitle)))
	assert.Equal(t, []int{2, 1, 5}, ids(s.SortBy(model.SortByDateAdded)))
}

func ids(books []*model.Book) []int {
	out := make([]int, 0, len(books))
	for _, b := range books {
		out = append(out, b.ID)
	}
	return out
}
