package validator // import "github.com/tomelist/tomelist/validator"

import (
	"github.com/pkg/errors"

	"github.com/tomelist/tomelist/model"
)

// ValidateDraft checks a manually entered record before it reaches the
// collection. A rejection leaves the collection untouched; the message
// is meant to be shown to the user as-is.
func ValidateDraft(book *model.Book) error {
	if book == nil {
		return errors.New("book is nil")
	}
	if book.Title == "" {
		return errors.New("title is required")
	}
	if book.Author == "" {
		return errors.New("author is required")
	}
	if book.Rating < 0 || book.Rating > 5 {
		return errors.New("rating must be between 0 and 5")
	}
	if book.YearPublished < 0 {
		return errors.New("year published cannot be negative")
	}
	if !book.Status.Valid() {
		return errors.Errorf("unknown status: %q (want reading, finished or to-read)", book.Status)
	}
	return nil
}
