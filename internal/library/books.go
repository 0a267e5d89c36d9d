package library

import (
	"time"

	"github.com/bookhive/bookhive/internal/database/authors"
	"github.com/bookhive/bookhive/internal/database/books"
	"github.com/bookhive/bookhive/internal/database/genres"
	"github.com/bookhive/bookhive/internal/entities"
	"github.com/bookhive/bookhive/internal/errs"
	"github.com/bookhive/bookhive/internal/validation"
)

// Scope selects whose books a listing covers.
type Scope int

const (
	// ScopeAll lists the whole catalogue.
	ScopeAll Scope = iota
	// ScopeOwned restricts the listing to the actor's uploads.
	ScopeOwned
)

// BookPayload carries candidate book fields. GenreIDs replaces the book's
// genre set wholesale on create and update.
type BookPayload struct {
	Title         string
	Description   string
	CoverImage    string
	PublishedDate *time.Time
	AuthorID      uint
	BookType      entities.BookType
	FileFormat    entities.FileFormat
	GenreIDs      []uint
}

// BookService manages the book catalogue: CRUD with ownership, filtered
// listings and owner-scoped bulk deletion.
type BookService struct {
	books   *books.Repository
	authors *authors.Repository
	genres  *genres.Repository
}

// NewBookService creates a new BookService.
func NewBookService(booksRepo *books.Repository, authorsRepo *authors.Repository, genresRepo *genres.Repository) *BookService {
	return &BookService{books: booksRepo, authors: authorsRepo, genres: genresRepo}
}

func (s *BookService) validate(p *BookPayload) error {
	v := validation.New()
	v.Required("title", p.Title)
	v.MaxLen("title", p.Title, 127)

	if p.AuthorID == 0 {
		v.Add("author_id", "is required")
	} else if ok, err := s.authors.Exists(p.AuthorID); err != nil {
		return err
	} else if !ok {
		v.Add("author_id", "does not exist")
	}

	if p.BookType == "" {
		p.BookType = entities.BookTypeEBook
	}
	types := make([]string, len(entities.BookTypes))
	for i, t := range entities.BookTypes {
		types[i] = string(t)
	}
	v.OneOf("book_type", string(p.BookType), types)

	formats := make([]string, len(entities.FileFormats))
	for i, f := range entities.FileFormats {
		formats[i] = string(f)
	}
	v.Required("file_format", string(p.FileFormat))
	v.OneOf("file_format", string(p.FileFormat), formats)

	return v.Err()
}

// resolveGenres loads the payload's genre selection. An unknown ID is a
// validation failure, not a storage one.
func (s *BookService) resolveGenres(ids []uint) ([]entities.Genre, error) {
	list, err := s.genres.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(list) != len(ids) {
		return nil, &errs.ValidationError{Fields: []errs.FieldError{
			{Field: "genre_ids", Message: "contains an unknown genre"},
		}}
	}
	return list, nil
}

// Create uploads a book owned by the actor.
func (s *BookService) Create(p BookPayload, actor uint) (*entities.Book, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := s.validate(&p); err != nil {
		return nil, err
	}
	genreList, err := s.resolveGenres(p.GenreIDs)
	if err != nil {
		return nil, err
	}

	book := &entities.Book{
		Title:         p.Title,
		Description:   p.Description,
		CoverImage:    p.CoverImage,
		PublishedDate: p.PublishedDate,
		AuthorID:      p.AuthorID,
		UploadByID:    actor,
		BookType:      p.BookType,
		FileFormat:    p.FileFormat,
		Genres:        genreList,
	}
	if err := s.books.Create(book); err != nil {
		return nil, err
	}
	return s.books.GetByID(book.ID)
}

// Get retrieves a book with author, genres, chapters and reviews.
func (s *BookService) Get(id uint) (*entities.Book, error) {
	return s.books.GetByID(id)
}

// List returns books matching the filters, newest first. ScopeOwned requires
// an authenticated actor and narrows the listing to their uploads.
func (s *BookService) List(filters books.Filters, scope Scope, actor uint) ([]entities.Book, error) {
	owner := uint(0)
	if scope == ScopeOwned {
		if err := requireActor(actor); err != nil {
			return nil, err
		}
		owner = actor
	}
	return s.books.List(filters, owner)
}

// ListByType returns the actor's books of one type, newest first.
func (s *BookService) ListByType(actor uint, bookType entities.BookType) ([]entities.Book, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	return s.books.ListByType(actor, bookType)
}

// Update replaces a book's fields and genre set. Only the uploader may do
// this.
func (s *BookService) Update(id uint, p BookPayload, actor uint) (*entities.Book, error) {
	book, err := s.books.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := requireBookOwner(actor, book); err != nil {
		return nil, err
	}
	if err := s.validate(&p); err != nil {
		return nil, err
	}
	genreList, err := s.resolveGenres(p.GenreIDs)
	if err != nil {
		return nil, err
	}

	book.Title = p.Title
	book.Description = p.Description
	book.CoverImage = p.CoverImage
	book.PublishedDate = p.PublishedDate
	book.AuthorID = p.AuthorID
	book.BookType = p.BookType
	book.FileFormat = p.FileFormat
	book.Genres = genreList
	book.Chapters = nil
	book.Reviews = nil
	if err := s.books.Update(book); err != nil {
		return nil, err
	}
	return s.books.GetByID(id)
}

// Delete removes a book and everything attached to it. Only the uploader may
// do this.
func (s *BookService) Delete(id uint, actor uint) error {
	book, err := s.books.GetByID(id)
	if err != nil {
		return err
	}
	if err := requireBookOwner(actor, book); err != nil {
		return err
	}
	return s.books.Delete(id)
}

// BulkDelete removes every book of the actor matching the filters. The
// second result reports whether that was the actor's entire collection, so
// callers can warn before an unrestricted delete-all.
func (s *BookService) BulkDelete(filters books.Filters, actor uint) (int64, bool, error) {
	if err := requireActor(actor); err != nil {
		return 0, false, err
	}
	return s.books.BulkDelete(filters, actor)
}
