package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tomelist/tomelist/config"
	"github.com/tomelist/tomelist/importer"
	"github.com/tomelist/tomelist/log"
	"github.com/tomelist/tomelist/model"
	"github.com/tomelist/tomelist/store"
	"github.com/tomelist/tomelist/validator"
)

var (
	listSort   string
	listDesc   bool
	listSearch string

	importForce bool

	bookTitle     string
	bookAuthor    string
	bookStatus    string
	bookRating    int
	bookPublisher string
	bookYear      int
	bookDateRead  string
	bookTags      string
	bookReview    string
	bookISBN      string

	rmYes    bool
	showJSON bool

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List the library",
		RunE:  runList,
	}

	importCmd = &cobra.Command{
		Use:   "import PATH",
		Short: "Import a spreadsheet export into a fresh library",
		Args:  cobra.ExactArgs(1),
		RunE:  runImport,
	}

	addCmd = &cobra.Command{
		Use:   "add",
		Short: "Add a book",
		RunE:  runAdd,
	}

	editCmd = &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a book; only the given fields change",
		Args:  cobra.ExactArgs(1),
		RunE:  runEdit,
	}

	rmCmd = &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a book",
		Args:  cobra.ExactArgs(1),
		RunE:  runRemove,
	}

	showCmd = &cobra.Command{
		Use:   "show ID",
		Short: "Show one book",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
)

func init() {
	listCmd.Flags().StringVarP(&listSort, "sort", "s", string(model.SortByAuthor),
		fmt.Sprintf("sort attribute %v", model.SortKeys()))
	listCmd.Flags().BoolVar(&listDesc, "desc", false, "sort descending")
	listCmd.Flags().StringVar(&listSearch, "search", "", "filter by title or author")
	// The bare root command lists too.
	rootCmd.Flags().AddFlagSet(listCmd.Flags())

	importCmd.Flags().BoolVar(&importForce, "force", false, "replace an existing library")

	for _, cmd := range []*cobra.Command{addCmd, editCmd} {
		cmd.Flags().StringVar(&bookTitle, "title", "", "book title")
		cmd.Flags().StringVar(&bookAuthor, "author", "", "book author")
		cmd.Flags().StringVar(&bookStatus, "status", string(model.StatusToRead), "reading, finished or to-read")
		cmd.Flags().IntVar(&bookRating, "rating", 0, "rating 0-5")
		cmd.Flags().StringVar(&bookPublisher, "publisher", "", "publisher")
		cmd.Flags().IntVar(&bookYear, "year", 0, "year published")
		cmd.Flags().StringVar(&bookDateRead, "date-read", "", "date read (YYYY/MM/DD)")
		cmd.Flags().StringVar(&bookTags, "tags", "", "comma-separated tags")
		cmd.Flags().StringVar(&bookReview, "review", "", "review text")
		cmd.Flags().StringVar(&bookISBN, "isbn", "", "13-digit ISBN")
	}

	rmCmd.Flags().BoolVarP(&rmYes, "yes", "y", false, "skip the confirmation prompt")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "print the record as JSON")
}

func openStore() (*store.Store, error) {
	s := store.NewStore(config.Opts.LibraryPath())
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Errorf("invalid book id: %q", raw)
	}
	return id, nil
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	if s.Len() == 0 {
		fmt.Printf("Library %s is empty. Run 'tomelist import PATH' to get started.\n", s.Path())
		return nil
	}

	key, err := model.ParseSortKey(listSort)
	if err != nil {
		return err
	}
	books := s.Sort(key, listDesc)
	if listSearch != "" {
		matched := make([]*model.Book, 0, len(books))
		for _, b := range books {
			if b.Matches(listSearch) {
				matched = append(matched, b)
			}
		}
		books = matched
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tSTATUS\tRATING\tYEAR\tREAD\tADDED\tTAGS\tISBN13")
	for _, b := range books {
		year := ""
		if b.YearPublished != 0 {
			year = strconv.Itoa(b.YearPublished)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			b.ID, b.Title, b.Author, b.Status, model.RatingToStars(b.Rating),
			year, b.DateRead, b.DateAdded, b.Tags, b.ISBN13)
	}
	return w.Flush()
}

func runImport(cmd *cobra.Command, args []string) error {
	target := config.Opts.LibraryPath()
	if importer.Exists(target) && !importForce {
		return errors.Errorf("library %s already exists, use --force to replace it", target)
	}
	if !importer.Exists(args[0]) {
		return errors.Errorf("import file not found: %s", args[0])
	}

	res, err := importer.Load(args[0], true)
	if err != nil {
		return err
	}

	s := store.NewStore(target)
	s.SetBooks(res.Books)
	if err := s.Save(); err != nil {
		return err
	}

	fmt.Printf("Imported %d books from %s into %s\n", len(res.Books), args[0], target)
	for _, skip := range res.Skipped {
		fmt.Printf("  line %d skipped: %s\n", skip.Line, skip.Reason)
	}
	log.Info("import finished",
		zap.String("from", args[0]),
		zap.Int("imported", len(res.Books)),
		zap.Int("skipped", len(res.Skipped)))
	return nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	book := &model.Book{
		Title:         bookTitle,
		Author:        bookAuthor,
		Status:        model.Status(strings.TrimSpace(bookStatus)),
		Rating:        bookRating,
		Publisher:     bookPublisher,
		YearPublished: bookYear,
		DateRead:      bookDateRead,
		DateAdded:     time.Now().Format(config.Opts.DateFormat),
		Tags:          bookTags,
		Review:        bookReview,
		ISBN13:        model.NormalizeISBN(bookISBN),
	}
	if err := validator.ValidateDraft(book); err != nil {
		return err
	}

	s.Add(book)
	if err := s.Save(); err != nil {
		return err
	}
	fmt.Printf("Added %q (id %d)\n", book.Title, book.ID)
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	s, err := openStore()
	if err != nil {
		return err
	}
	current := s.Find(id)
	if current == nil {
		return errors.Wrapf(store.ErrBookNotFound, "id %d", id)
	}

	// Identifier and date added survive every edit.
	updated := *current
	flags := cmd.Flags()
	if flags.Changed("title") {
		updated.Title = bookTitle
	}
	if flags.Changed("author") {
		updated.Author = bookAuthor
	}
	if flags.Changed("status") {
		updated.Status = model.Status(strings.TrimSpace(bookStatus))
	}
	if flags.Changed("rating") {
		updated.Rating = bookRating
	}
	if flags.Changed("publisher") {
		updated.Publisher = bookPublisher
	}
	if flags.Changed("year") {
		updated.YearPublished = bookYear
	}
	if flags.Changed("date-read") {
		updated.DateRead = bookDateRead
	}
	if flags.Changed("tags") {
		updated.Tags = bookTags
	}
	if flags.Changed("review") {
		updated.Review = bookReview
	}
	if flags.Changed("isbn") {
		updated.ISBN13 = model.NormalizeISBN(bookISBN)
	}

	if err := validator.ValidateDraft(&updated); err != nil {
		return err
	}
	if err := s.Update(&updated); err != nil {
		return err
	}
	if err := s.Save(); err != nil {
		return err
	}
	fmt.Printf("Updated %q (id %d)\n", updated.Title, updated.ID)
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	s, err := openStore()
	if err != nil {
		return err
	}
	book := s.Find(id)
	if book == nil {
		return errors.Wrapf(store.ErrBookNotFound, "id %d", id)
	}

	if !rmYes {
		fmt.Printf("Delete %q by %s? [y/N] ", book.Title, book.Author)
		reply, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if answer := strings.ToLower(strings.TrimSpace(reply)); answer != "y" && answer != "yes" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := s.Remove(id); err != nil {
		return err
	}
	if err := s.Save(); err != nil {
		return err
	}
	fmt.Printf("Deleted %q (id %d)\n", book.Title, id)
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	s, err := openStore()
	if err != nil {
		return err
	}
	book := s.Find(id)
	if book == nil {
		return errors.Wrapf(store.ErrBookNotFound, "id %d", id)
	}

	if showJSON {
		out, err := json.MarshalIndent(book, "", "  ")
		if err != nil {
			return errors.Wrap(err, "unable to encode book")
		}
		fmt.Println(string(out))
		return nil
	}

	year := ""
	if book.YearPublished != 0 {
		year = strconv.Itoa(book.YearPublished)
	}
	fmt.Printf("%q by %s (id %d)\n", book.Title, book.Author, book.ID)
	fmt.Printf("  status:    %s\n", book.Status)
	fmt.Printf("  rating:    %s\n", model.RatingToStars(book.Rating))
	fmt.Printf("  publisher: %s\n", book.Publisher)
	fmt.Printf("  year:      %s\n", year)
	fmt.Printf("  read:      %s\n", book.DateRead)
	fmt.Printf("  added:     %s\n", book.DateAdded)
	fmt.Printf("  tags:      %s\n", book.Tags)
	fmt.Printf("  isbn13:    %s\n", book.ISBN13)
	if book.Review != "" {
		fmt.Printf("  review:\n    %s\n", strings.ReplaceAll(book.Review, "\n", "\n    "))
	}
	return nil
}
