package model // import "github.com/tomelist/tomelist/model"

import "strings"

// Status is the exclusive shelf a book currently occupies. A book sits
// on exactly one shelf at a time.
type Status string

const (
	StatusReading  Status = "reading"
	StatusFinished Status = "finished"
	StatusToRead   Status = "to-read"
)

// ParseStatus maps a raw shelf value onto the closed enum, accepting the
// spreadsheet-export aliases ("currently-reading", "read"). Anything
// unrecognized lands on the to-read shelf.
func ParseStatus(raw string) Status {
	switch strings.TrimSpace(raw) {
	case string(StatusReading), "currently-reading":
		return StatusReading
	case string(StatusFinished), "read":
		return StatusFinished
	}
	return StatusToRead
}

// Valid reports whether s is one of the known shelf values.
func (s Status) Valid() bool {
	switch s {
	case StatusReading, StatusFinished, StatusToRead:
		return true
	}
	return false
}

// Book is one library entry. The reading flag is derived from Status and
// never stored.
type Book struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	Status        Status `json:"status"`
	Rating        int    `json:"rating"`
	Publisher     string `json:"publisher"`
	YearPublished int    `json:"year_published"`
	DateRead      string `json:"date_read"`
	DateAdded     string `json:"date_added"`
	Tags          string `json:"tags"`
	Review        string `json:"review"`
	ISBN13        string `json:"isbn13"`
}

// IsReading reports whether the book is on the reading shelf.
func (b *Book) IsReading() bool {
	return b.Status == StatusReading
}

// Matches reports whether term appears in the title or author,
// case-insensitively. An empty term matches everything.
func (b *Book) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.Title), term) ||
		strings.Contains(strings.ToLower(b.Author), term)
}
