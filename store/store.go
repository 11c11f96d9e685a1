package store // import "github.com/tomelist/tomelist/store"

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/tomelist/tomelist/importer"
	"github.com/tomelist/tomelist/log"
	"github.com/tomelist/tomelist/model"
)

// Header is the canonical column order of the persisted library file.
// The identifier comes first; the derived reading flag is never stored.
var Header = []string{
	"id", "title", "author", "status", "rating", "publisher",
	"year_published", "date_read", "date_added", "tags", "review", "isbn13",
}

// Store owns the in-memory collection and its backing file for the
// lifetime of one run. Single-threaded: the process is the only writer
// of the file while it runs.
type Store struct {
	path     string
	books    []*model.Book
	sortBy   model.SortKey
	sortDesc bool
	dirty    bool
}

func NewStore(path string) *Store {
	return &Store{
		path:   path,
		sortBy: model.SortByAuthor,
	}
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Len() int {
	return len(s.books)
}

// Dirty reports whether the collection has unsaved mutations.
func (s *Store) Dirty() bool {
	return s.dirty
}

// Load replaces the in-memory collection with the contents of the
// backing file. The file is always written by Save in canonical form,
// so no header normalization happens here. A missing file is an empty
// library, not an error.
func (s *Store) Load() error {
	res, err := importer.Load(s.path, false)
	if err != nil {
		return errors.Wrap(err, "unable to load library")
	}
	s.books = res.Books
	s.dirty = false
	log.Debug("library loaded", zap.String("path", s.path), zap.Int("books", len(s.books)))
	return nil
}

// SetBooks seeds the collection, typically from an initial import.
func (s *Store) SetBooks(books []*model.Book) {
	s.books = books
	s.dirty = true
}

// Save overwrites the backing file with the whole collection, going
// through a uniquely named temp file and an atomic rename so an
// interrupted write can never corrupt the library. Saving an empty
// collection is a no-op: a blank session must not wipe a populated file.
func (s *Store) Save() error {
	if len(s.books) == 0 {
		log.Warn("refusing to save an empty collection", zap.String("path", s.path))
		return nil
	}

	tmp := fmt.Sprintf("%s.%s.tmp", s.path, uuid.NewString())
	f, err := os.Create(tmp)
	if err != nil {
		return errors.Wrapf(err, "unable to create temp file %s", tmp)
	}

	w := csv.NewWriter(f)
	writeErr := w.Write(Header)
	for _, b := range s.books {
		if writeErr != nil {
			break
		}
		writeErr = w.Write(record(b))
	}
	w.Flush()
	if writeErr == nil {
		writeErr = w.Error()
	}
	if writeErr != nil {
		f.Close()
		os.Remove(tmp)
		return errors.Wrapf(writeErr, "unable to write library to %s", tmp)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return errors.Wrapf(err, "unable to close temp file %s", tmp)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return errors.Wrapf(err, "unable to replace %s", s.path)
	}
	s.dirty = false
	log.Info("library saved", zap.String("path", s.path), zap.Int("books", len(s.books)))
	return nil
}

func record(b *model.Book) []string {
	return []string{
		strconv.Itoa(b.ID),
		b.Title,
		b.Author,
		string(b.Status),
		strconv.Itoa(b.Rating),
		b.Publisher,
		strconv.Itoa(b.YearPublished),
		b.DateRead,
		b.DateAdded,
		b.Tags,
		b.Review,
		b.ISBN13,
	}
}
