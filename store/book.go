package store

import (
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/tomelist/tomelist/log"
	"github.com/tomelist/tomelist/model"
)

// ErrBookNotFound is returned by Update and Remove when no record
// carries the requested identifier.
var ErrBookNotFound = errors.New("book not found")

// NextID is the identifier the next added book will receive: one past
// the highest existing identifier, or 1 for an empty collection.
// Identifiers are never reassigned.
func (s *Store) NextID() int {
	next := 1
	for _, b := range s.books {
		if b.ID >= next {
			next = b.ID + 1
		}
	}
	return next
}

// Add assigns the next free identifier to the draft and appends it.
func (s *Store) Add(book *model.Book) *model.Book {
	book.ID = s.NextID()
	s.books = append(s.books, book)
	s.dirty = true
	log.Debug("book added", zap.Int("id", book.ID), zap.String("title", book.Title))
	return book
}

// Update replaces the record carrying the same identifier. The caller
// keeps ID and DateAdded from the original record.
func (s *Store) Update(book *model.Book) error {
	for i, b := range s.books {
		if b.ID == book.ID {
			s.books[i] = book
			s.dirty = true
			log.Debug("book updated", zap.Int("id", book.ID), zap.String("title", book.Title))
			return nil
		}
	}
	return errors.Wrapf(ErrBookNotFound, "id %d", book.ID)
}

// Remove deletes the record with the given identifier.
func (s *Store) Remove(id int) error {
	for i, b := range s.books {
		if b.ID == id {
			s.books = append(s.books[:i], s.books[i+1:]...)
			s.dirty = true
			log.Debug("book removed", zap.Int("id", id), zap.String("title", b.Title))
			return nil
		}
	}
	return errors.Wrapf(ErrBookNotFound, "id %d", id)
}

// Find returns the record with the given identifier, or nil.
func (s *Store) Find(id int) *model.Book {
	for _, b := range s.books {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// List returns the collection in its current order.
func (s *Store) List() []*model.Book {
	return append([]*model.Book(nil), s.books...)
}

// Search returns the books whose title or author contains term,
// case-insensitively.
func (s *Store) Search(term string) []*model.Book {
	matched := make([]*model.Book, 0, len(s.books))
	for _, b := range s.books {
		if b.Matches(term) {
			matched = append(matched, b)
		}
	}
	return matched
}

// Sort returns the whole collection ordered by key, with the standing
// partition rule: books on the reading shelf always come first, sorted
// among themselves, followed by everything else sorted among itself.
// The key and direction become the new standing sort state.
func (s *Store) Sort(key model.SortKey, desc bool) []*model.Book {
	s.sortBy, s.sortDesc = key, desc

	reading := make([]*model.Book, 0, len(s.books))
	rest := make([]*model.Book, 0, len(s.books))
	for _, b := range s.books {
		if b.IsReading() {
			reading = append(reading, b)
		} else {
			rest = append(rest, b)
		}
	}
	sortGroup(reading, key, desc)
	sortGroup(rest, key, desc)
	return append(reading, rest...)
}

// SortBy re-sorts by key, flipping direction when the same key is asked
// for twice in a row and resetting to ascending otherwise.
func (s *Store) SortBy(key model.SortKey) []*model.Book {
	desc := false
	if key == s.sortBy {
		desc = !s.sortDesc
	}
	return s.Sort(key, desc)
}

func sortGroup(books []*model.Book, key model.SortKey, desc bool) {
	sort.SliceStable(books, func(i, j int) bool {
		a, b := key.SortValue(books[i]), key.SortValue(books[j])
		if desc {
			return a > b
		}
		return a < b
	})
}
