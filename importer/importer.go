// Package importer turns comma-separated book lists into records. It
// handles both the one-time ingestion of an external export, whose
// headers need normalizing, and the canonical library file, whose
// headers are always written by this program.
package importer

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/tomelist/tomelist/log"
	"github.com/tomelist/tomelist/model"
)

// SkipReason explains why an import row was dropped.
type SkipReason string

const (
	SkipMissingID   SkipReason = "missing id"
	SkipBadID       SkipReason = "bad id"
	SkipDuplicateID SkipReason = "duplicate id"
)

// SkippedRow records one dropped row. Line is 1-based and counts the
// header row, so it matches what an editor shows.
type SkippedRow struct {
	Line   int
	Reason SkipReason
}

// Result holds the books that made it in and the rows that did not.
type Result struct {
	Books   []*model.Book
	Skipped []SkippedRow
}

// externalAliases remaps normalized export headers onto the canonical
// column names. Applied on initial import only; the canonical file is
// always written with canonical names.
var externalAliases = map[string]string{
	"book_id":         "id",
	"my_rating":       "rating",
	"bookshelves":     "tags",
	"my_review":       "review",
	"exclusive_shelf": "status",
}

// Exists reports whether a file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Load reads a book list from path. A missing file is an empty library,
// not an error; the caller distinguishes the two with Exists.
func Load(path string, initialImport bool) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug("no book file to load", zap.String("path", path))
			return &Result{}, nil
		}
		return nil, errors.Wrapf(err, "unable to open %s", path)
	}
	defer f.Close()

	res, err := Read(f, initialImport)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse %s", path)
	}
	return res, nil
}

// Read parses a book list from r. Row-level trouble never fails the
// whole load: rows without a usable identifier are reported in
// Result.Skipped and everything else is coerced with defaults.
func Read(r io.Reader, initialImport bool) (*Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows
	cr.LazyQuotes = true    // exports quote ISBNs as ="9780..."

	header, err := cr.Read()
	if err == io.EOF {
		return &Result{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to read header row")
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		if initialImport {
			name = NormalizeHeader(name)
			if canonical, ok := externalAliases[name]; ok {
				name = canonical
			}
		}
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}

	res := &Result{}
	seen := make(map[int]bool)
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "unable to read row at line %d", line)
		}

		field := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}

		idRaw := strings.TrimSpace(field("id"))
		if idRaw == "" {
			res.Skipped = append(res.Skipped, SkippedRow{Line: line, Reason: SkipMissingID})
			continue
		}
		id, err := strconv.Atoi(idRaw)
		if err != nil {
			res.Skipped = append(res.Skipped, SkippedRow{Line: line, Reason: SkipBadID})
			continue
		}
		if seen[id] {
			// First occurrence wins.
			res.Skipped = append(res.Skipped, SkippedRow{Line: line, Reason: SkipDuplicateID})
			continue
		}
		seen[id] = true

		res.Books = append(res.Books, &model.Book{
			ID:            id,
			Title:         field("title"),
			Author:        field("author"),
			Status:        model.ParseStatus(field("status")),
			Rating:        parseRating(field("rating")),
			Publisher:     field("publisher"),
			YearPublished: parseYear(field("year_published")),
			DateRead:      field("date_read"),
			DateAdded:     field("date_added"),
			Tags:          field("tags"),
			Review:        strings.ReplaceAll(field("review"), "<br/>", "\n"),
			ISBN13:        model.NormalizeISBN(field("isbn13")),
		})
	}
	return res, nil
}

// NormalizeHeader lower-cases a column name and squashes spaces and
// hyphens to underscores, so "Book Id" and "book-id" both land on
// "book_id".
func NormalizeHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "_")
	return strings.ReplaceAll(name, "-", "_")
}

// parseRating tolerates "3.0"-style values. Anything unparseable or out
// of [0,5] flattens to unrated.
func parseRating(raw string) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	rating := int(f)
	if rating < 0 || rating > 5 {
		return 0
	}
	return rating
}

// parseYear treats blank, unparseable and negative values as unknown.
func parseYear(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 {
		return 0
	}
	return int(f)
}
