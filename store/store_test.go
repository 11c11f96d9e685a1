package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tomelist/tomelist/log"
	"github.com/tomelist/tomelist/model"
)

func init() {
	log.Logger = zap.NewNop()
}

func testBooks() []*model.Book {
	return []*model.Book{
		{
			ID: 1, Title: "Dune", Author: "Frank Herbert",
			Status: model.StatusFinished, Rating: 5, Publisher: "Ace",
			YearPublished: 1965, DateRead: "2020/01/15", DateAdded: "2020/01/01",
			Tags: "sci-fi,classic", Review: "Epic.\nSlow start though.",
			ISBN13: "9780441172719",
		},
		{
			ID: 2, Title: "Neuromancer, Special Edition", Author: "William Gibson",
			Status: model.StatusReading, DateAdded: "2020/02/01",
			Tags: "cyberpunk", ISBN13: model.PlaceholderISBN,
		},
		{
			ID: 5, Title: "Piranesi", Author: "Susanna Clarke",
			Status: model.StatusToRead, DateAdded: "2021/03/09",
			ISBN13: "9781635575637",
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.csv")

	s := NewStore(path)
	s.SetBooks(testBooks())
	require.NoError(t, s.Save())
	assert.False(t, s.Dirty())

	loaded := NewStore(path)
	require.NoError(t, loaded.Load())
	assert.Equal(t, testBooks(), loaded.List())
}

func TestSaveIsAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "library.csv")

	s := NewStore(path)
	s.SetBooks(testBooks())
	require.NoError(t, s.Save())
	require.NoError(t, s.Save())

	// No temp files left behind, only the library itself.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "library.csv", entries[0].Name())
}

func TestSaveEmptyCollectionIsNoOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.csv")
	original := []byte("id,title,author\n1,Dune,Frank Herbert\n")
	require.NoError(t, os.WriteFile(path, original, 0644))

	s := NewStore(path)
	require.NoError(t, s.Save())

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, after, "empty save must not touch a populated file")
}

func TestLoadMissingFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "library.csv"))
	require.NoError(t, s.Load())
	assert.Zero(t, s.Len())
}
